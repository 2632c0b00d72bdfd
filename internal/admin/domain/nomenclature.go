package domain

import "time"

// NomenclatureType enumerates the kinds of reference data the system keeps.
type NomenclatureType string

const (
	TypeTemperatureUnit NomenclatureType = "TemperatureUnit"
	TypeDataType        NomenclatureType = "DataType"
	TypeCheckItemType   NomenclatureType = "Type"
	TypeCheckItemGroup  NomenclatureType = "Group"
	TypeConcept         NomenclatureType = "Concept"
	TypeCategory        NomenclatureType = "Category"
)

// NomenclatureTypes lists every valid type, in catalog order. Served by the
// public types endpoint to populate select boxes.
func NomenclatureTypes() []NomenclatureType {
	return []NomenclatureType{
		TypeTemperatureUnit,
		TypeDataType,
		TypeCheckItemType,
		TypeCheckItemGroup,
		TypeConcept,
		TypeCategory,
	}
}

// IsValid reports whether t is one of the known nomenclature types.
func (t NomenclatureType) IsValid() bool {
	for _, known := range NomenclatureTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Nomenclature is one reference-data entry. Pattern only applies to DataType
// entries, Level only to Type entries.
type Nomenclature struct {
	ID          string
	Name        string
	Type        NomenclatureType
	Pattern     string
	Description string
	Level       *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasLevel reports whether entries of this nomenclature's type carry a level.
func (n Nomenclature) HasLevel() bool { return n.Type == TypeCheckItemType }

// HasPattern reports whether entries of this nomenclature's type carry a
// validation pattern.
func (n Nomenclature) HasPattern() bool { return n.Type == TypeDataType }
