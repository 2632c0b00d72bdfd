package service

import (
	"context"
	"errors"
	"strings"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/pkg/idx"
)

var ErrUnknownNomenclatureType = errors.New("unknown_nomenclature_type")

// NomenclatureService manages reference-data entries.
type NomenclatureService struct {
	Store store.Store
}

// Types returns the fixed catalog of nomenclature types.
func (s *NomenclatureService) Types() []domain.NomenclatureType {
	return domain.NomenclatureTypes()
}

func (s *NomenclatureService) Get(ctx context.Context, id string) (domain.Nomenclature, error) {
	return s.Store.Nomenclatures().GetNomenclatureByID(ctx, id)
}

func (s *NomenclatureService) List(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.Nomenclature, error) {
	return s.Store.Nomenclatures().ListNomenclatures(ctx, filters, page)
}

func (s *NomenclatureService) ListByType(ctx context.Context, typ domain.NomenclatureType, page domain.Paging) ([]domain.Nomenclature, error) {
	if !typ.IsValid() {
		return nil, ErrUnknownNomenclatureType
	}
	return s.Store.Nomenclatures().ListNomenclaturesByType(ctx, typ, page)
}

func (s *NomenclatureService) Create(ctx context.Context, n domain.Nomenclature) (domain.Nomenclature, error) {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return domain.Nomenclature{}, ErrInvalidInput
	}
	if !n.Type.IsValid() {
		return domain.Nomenclature{}, ErrUnknownNomenclatureType
	}

	n.ID = idx.New().String()
	if err := s.Store.Nomenclatures().CreateNomenclature(ctx, n); err != nil {
		return domain.Nomenclature{}, err
	}
	return n, nil
}

func (s *NomenclatureService) Update(ctx context.Context, n domain.Nomenclature) error {
	if n.ID == "" || strings.TrimSpace(n.Name) == "" {
		return ErrInvalidInput
	}
	if !n.Type.IsValid() {
		return ErrUnknownNomenclatureType
	}
	return s.Store.Nomenclatures().UpdateNomenclature(ctx, n)
}

func (s *NomenclatureService) Delete(ctx context.Context, id string) error {
	return s.Store.Nomenclatures().DeleteNomenclature(ctx, id)
}
