package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/pkg/apperror"
	"github.com/samlamare/cafechill-api/pkg/csvutil"
)

// ExpenseService handles finance back-office expense and bill tracking
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	billRepo    repository.BillRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, billRepo repository.BillRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		billRepo:    billRepo,
	}
}

// ListExpenses returns expenses newest-first
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, error) {
	return s.expenseRepo.List(ctx, params)
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Title         string
	Category      string
	Amount        float64 // rupees
	Date          time.Time
	RelatedBillID *uuid.UUID
	Notes         string
}

// CreateExpense records a cost. The date defaults to today so quick
// entries from the counter need only a title and an amount.
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Title is required")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &entity.Expense{
		Title:         input.Title,
		Amount:        int64(input.Amount * 100),
		Date:          date,
		RelatedBillID: input.RelatedBillID,
		Notes:         input.Notes,
	}
	if input.Category != "" {
		expense.Category = input.Category
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	Title    *string
	Category *string
	Amount   *float64 // rupees
	Date     *time.Time
	Notes    *string
}

// UpdateExpense updates a recorded expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Title != nil && *input.Title != "" {
		expense.Title = *input.Title
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Amount must be positive")
		}
		expense.Amount = int64(*input.Amount * 100)
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Notes != nil {
		expense.Notes = *input.Notes
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes a recorded expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ExportCSV renders all expenses as a CSV document
func (s *ExpenseService) ExportCSV(ctx context.Context) ([]byte, error) {
	expenses, err := s.expenseRepo.List(ctx, &repository.ExpenseFilterParams{})
	if err != nil {
		return nil, err
	}

	header := []string{"Title", "Category", "Amount", "Date", "Notes"}
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Title,
			e.Category,
			csvutil.FormatAmount(e.Amount),
			e.Date.Format("2006-01-02"),
			e.Notes,
		})
	}

	return csvutil.Marshal(header, rows)
}

// ListBills returns bills with unpaid ones first
func (s *ExpenseService) ListBills(ctx context.Context, unpaidOnly bool) ([]entity.Bill, error) {
	return s.billRepo.List(ctx, unpaidOnly)
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	Title       string
	Category    enum.BillCategory
	Amount      float64 // rupees
	DueDate     *time.Time
	ReferenceID string
	Notes       string
}

// CreateBill records a recurring obligation
func (s *ExpenseService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Title is required")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	category := input.Category
	if category == "" {
		category = enum.BillCategoryOther
	}
	if !category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid bill category")
	}

	bill := &entity.Bill{
		Title:       input.Title,
		Category:    category,
		Amount:      int64(input.Amount * 100),
		DueDate:     input.DueDate,
		ReferenceID: input.ReferenceID,
		Notes:       input.Notes,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// MarkBillPaid marks a bill as paid and records the matching expense so
// the dashboard's cost totals pick it up without double entry
func (s *ExpenseService) MarkBillPaid(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.IsPaid {
		return bill, nil
	}

	now := time.Now()
	bill.IsPaid = true
	bill.PaidDate = &now
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		Title:         bill.Title,
		Category:      bill.Category.String(),
		Amount:        bill.Amount,
		Date:          now,
		RelatedBillID: &bill.ID,
		Notes:         bill.Notes,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return bill, nil
}

// DeleteBill removes a bill
func (s *ExpenseService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}
	return s.billRepo.Delete(ctx, id)
}
