package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns expenses newest-first.
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, error)
	TotalAmount(ctx context.Context) (int64, error)
}

// ExpenseFilterParams contains filtering parameters for expense queries
type ExpenseFilterParams struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns bills by due date, unpaid first.
	List(ctx context.Context, unpaidOnly bool) ([]entity.Bill, error)
}
