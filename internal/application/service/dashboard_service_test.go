package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
)

type fakeInventoryRepo struct {
	lowStock int64
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error { return nil }

func (r *fakeInventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error { return nil }

func (r *fakeInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeInventoryRepo) List(ctx context.Context, params *repository.InventoryFilterParams) ([]entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) Upsert(ctx context.Context, item *entity.InventoryItem) (bool, error) {
	return false, nil
}

func (r *fakeInventoryRepo) CountLowStock(ctx context.Context) (int64, error) {
	return r.lowStock, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByExternalUID(ctx context.Context, uid string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ExternalUID == uid {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, params *repository.UserFilterParams) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountByStatus(ctx context.Context, status enum.UserStatus) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

func TestDashboardMetrics(t *testing.T) {
	ctx := context.Background()

	menu := newFakeMenuRepo(menuItem("Espresso", 120), menuItem("Croissant", 150))

	sales := &fakeSaleRepo{}
	if err := sales.Create(ctx, &entity.Sale{TotalAmount: 58000}); err != nil {
		t.Fatalf("seed sale: %v", err)
	}
	if err := sales.Create(ctx, &entity.Sale{TotalAmount: 12000}); err != nil {
		t.Fatalf("seed sale: %v", err)
	}

	expenses := &fakeExpenseRepo{}
	if err := expenses.Create(ctx, &entity.Expense{Title: "Beans", Amount: 20000}); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	users := &fakeUserRepo{}
	for _, status := range []enum.UserStatus{enum.UserStatusPending, enum.UserStatusPending, enum.UserStatusApproved} {
		if err := users.Create(ctx, &entity.User{Status: status}); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	svc := NewDashboardService(menu, &fakeInventoryRepo{lowStock: 3}, sales, expenses, users)
	metrics, err := svc.GetMetrics(ctx)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	if metrics.MenuCount != 2 {
		t.Fatalf("menu count = %d, want 2", metrics.MenuCount)
	}
	if metrics.InventoryLowCount != 3 {
		t.Fatalf("low stock count = %d, want 3", metrics.InventoryLowCount)
	}
	if metrics.PendingStaffCount != 2 {
		t.Fatalf("pending staff = %d, want 2", metrics.PendingStaffCount)
	}
	if metrics.TotalSales != 700 {
		t.Fatalf("total sales = %v, want 700", metrics.TotalSales)
	}
	if metrics.TotalExpenses != 200 {
		t.Fatalf("total expenses = %v, want 200", metrics.TotalExpenses)
	}
	if metrics.NetProfit != 500 {
		t.Fatalf("net profit = %v, want 500", metrics.NetProfit)
	}
}
