package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations.
// Create persists the sale together with its item snapshots in one
// call; there is no partial-write state visible to callers.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns sales newest-first.
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListAll returns every sale newest-first, for CSV export.
	ListAll(ctx context.Context) ([]entity.Sale, error)
	TotalAmount(ctx context.Context) (int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	StaffUserID   *uuid.UUID
	PaymentMethod *enum.PaymentMethod
	PaymentSource *enum.PaymentSource
	StartDate     *time.Time
	EndDate       *time.Time
}
