package domain

// Scope constants. Scopes are flat strings carried in token claims; the
// guard checks exact membership, there is no wildcard expansion.
const (
	ScopeUsersRead    = "users:read"
	ScopeUsersWrite   = "users:write"
	ScopeUsersDelete  = "users:delete"
	ScopeNomenclRead  = "nomenclature:read"
	ScopeNomenclWrite = "nomenclature:write"
	ScopeNomenclDel   = "nomenclature:delete"
	ScopePubRead      = "publication-project:read"
	ScopePubWrite     = "publication-project:write"
	ScopePubCommit    = "publication-project:commit"
)

// ScopeDescription pairs a scope name with its human-readable purpose.
type ScopeDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScopeCatalog lists every scope the system recognises, in display order.
// Served verbatim by the public scopes endpoint so admin frontends can
// build permission pickers without hardcoding the list.
func ScopeCatalog() []ScopeDescription {
	return []ScopeDescription{
		{ScopeUsersRead, "Read information about users."},
		{ScopeUsersWrite, "Create and update users."},
		{ScopeUsersDelete, "Delete users."},
		{ScopeNomenclRead, "Read nomenclature entries."},
		{ScopeNomenclWrite, "Create and update nomenclature entries."},
		{ScopeNomenclDel, "Delete nomenclature entries."},
		{ScopePubRead, "Read publication projects."},
		{ScopePubWrite, "Create and update publication projects."},
		{ScopePubCommit, "Commit publication projects."},
	}
}

// KnownScope reports whether name is in the catalog.
func KnownScope(name string) bool {
	for _, s := range ScopeCatalog() {
		if s.Name == name {
			return true
		}
	}
	return false
}
