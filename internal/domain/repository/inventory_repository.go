package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
)

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, error)
	// Upsert creates the item or updates the existing row with the same
	// name. Used by the seed endpoint.
	Upsert(ctx context.Context, item *entity.InventoryItem) (created bool, err error)
	// CountLowStock counts active items at or below their reorder threshold.
	CountLowStock(ctx context.Context) (int64, error)
}

// InventoryFilterParams contains filtering parameters for inventory queries
type InventoryFilterParams struct {
	Category     string
	ActiveOnly   bool
	LowStockOnly bool
	Search       string
}
