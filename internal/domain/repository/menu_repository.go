package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
)

// MenuRepository defines the interface for menu catalog data operations
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByCode(ctx context.Context, code string) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all items sorted by category then name.
	List(ctx context.Context, params *MenuFilterParams) ([]entity.MenuItem, error)
	// Upsert creates the item or updates the existing row with the same
	// code. Used by the seed endpoint.
	Upsert(ctx context.Context, item *entity.MenuItem) (created bool, err error)
	Count(ctx context.Context) (int64, error)
}

// MenuFilterParams contains filtering parameters for menu queries
type MenuFilterParams struct {
	Category      *enum.MenuCategory
	AvailableOnly bool
	Search        string
}
