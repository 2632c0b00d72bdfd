package store

import (
	"context"
	"errors"

	"github.com/nextx/admin-api/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories are exposed as methods to keep concerns
// tidy and individually mockable.
type Store interface {
	Users() Users
	Nomenclatures() Nomenclatures
	Categories() Categories

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during the password grant.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns users matching the filters, windowed by page.
	// Filters on unknown fields are ignored.
	ListUsers(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser applies the non-nil patch fields and bumps updated_at.
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id string, newHash string) error

	// DeleteUser removes the user record.
	DeleteUser(ctx context.Context, id string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Nomenclatures interface {
	// GetNomenclatureByID returns an entry by id.
	GetNomenclatureByID(ctx context.Context, id string) (domain.Nomenclature, error)

	// ListNomenclatures returns entries matching the filters, windowed by page.
	ListNomenclatures(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.Nomenclature, error)

	// ListNomenclaturesByType returns every entry of one type.
	ListNomenclaturesByType(ctx context.Context, typ domain.NomenclatureType, page domain.Paging) ([]domain.Nomenclature, error)

	// CreateNomenclature inserts a new entry.
	CreateNomenclature(ctx context.Context, n domain.Nomenclature) error

	// UpdateNomenclature replaces the mutable fields of an entry by its ID.
	UpdateNomenclature(ctx context.Context, n domain.Nomenclature) error

	// DeleteNomenclature removes the entry.
	DeleteNomenclature(ctx context.Context, id string) error
}

type Categories interface {
	// GetCategoryByID returns a category by id.
	GetCategoryByID(ctx context.Context, id string) (domain.Category, error)

	// ListCategories returns categories matching the filters, windowed by page.
	ListCategories(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.Category, error)

	// CreateCategory inserts a new category.
	CreateCategory(ctx context.Context, c domain.Category) error

	// UpdateCategory replaces the mutable fields of a category by its ID.
	UpdateCategory(ctx context.Context, c domain.Category) error

	// DeleteCategory removes the category.
	DeleteCategory(ctx context.Context, id string) error
}
