package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
)

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) TotalAmount(ctx context.Context) (int64, error) {
	var total int64
	for _, e := range r.expenses {
		total += e.Amount
	}
	return total, nil
}

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return r.bills[id], nil
}

func (r *fakeBillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	return nil
}

func (r *fakeBillRepo) List(ctx context.Context, unpaidOnly bool) ([]entity.Bill, error) {
	out := make([]entity.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		if unpaidOnly && b.IsPaid {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func TestCreateExpenseDefaultsDate(t *testing.T) {
	expenses := &fakeExpenseRepo{}
	svc := NewExpenseService(expenses, newFakeBillRepo())

	expense, err := svc.CreateExpense(context.Background(), &CreateExpenseInput{
		Title:  "New grinder burrs",
		Amount: 4500,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if expense.Amount != 450000 {
		t.Fatalf("expected amount in paise, got %d", expense.Amount)
	}
	if expense.Date.IsZero() {
		t.Fatal("expected date to default to now")
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseRepo{}, newFakeBillRepo())
	ctx := context.Background()

	if _, err := svc.CreateExpense(ctx, &CreateExpenseInput{Amount: 100}); err == nil {
		t.Fatal("expected error for missing title")
	}
	if _, err := svc.CreateExpense(ctx, &CreateExpenseInput{Title: "X", Amount: 0}); err == nil {
		t.Fatal("expected error for non-positive amount")
	}
}

func TestMarkBillPaidRecordsExpense(t *testing.T) {
	expenses := &fakeExpenseRepo{}
	bills := newFakeBillRepo()
	svc := NewExpenseService(expenses, bills)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		Title:    "March electricity",
		Category: enum.BillCategoryElectricity,
		Amount:   4500,
	})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}

	paid, err := svc.MarkBillPaid(ctx, bill.ID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if !paid.IsPaid || paid.PaidDate == nil {
		t.Fatal("expected bill marked paid with a paid date")
	}

	if len(expenses.expenses) != 1 {
		t.Fatalf("expected one matching expense, got %d", len(expenses.expenses))
	}
	recorded := expenses.expenses[0]
	if recorded.Amount != 450000 {
		t.Fatalf("expected expense amount 450000, got %d", recorded.Amount)
	}
	if recorded.RelatedBillID == nil || *recorded.RelatedBillID != bill.ID {
		t.Fatal("expected expense linked to the bill")
	}
}

func TestMarkBillPaidIsIdempotent(t *testing.T) {
	expenses := &fakeExpenseRepo{}
	bills := newFakeBillRepo()
	svc := NewExpenseService(expenses, bills)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, &CreateBillInput{Title: "Rent", Amount: 30000})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}

	if _, err := svc.MarkBillPaid(ctx, bill.ID); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if _, err := svc.MarkBillPaid(ctx, bill.ID); err != nil {
		t.Fatalf("second mark paid: %v", err)
	}

	if len(expenses.expenses) != 1 {
		t.Fatalf("paying twice must not double-book the expense, got %d", len(expenses.expenses))
	}
}

func TestCreateBillDefaultsCategory(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseRepo{}, newFakeBillRepo())

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{Title: "Misc", Amount: 100})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}
	if bill.Category != enum.BillCategoryOther {
		t.Fatalf("expected Other default, got %s", bill.Category)
	}
}
