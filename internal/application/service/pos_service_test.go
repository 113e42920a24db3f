package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/pkg/apperror"
)

type fakeMenuRepo struct {
	items map[uuid.UUID]*entity.MenuItem
}

func newFakeMenuRepo(items ...*entity.MenuItem) *fakeMenuRepo {
	r := &fakeMenuRepo{items: make(map[uuid.UUID]*entity.MenuItem)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return r.items[id], nil
}

func (r *fakeMenuRepo) GetByCode(ctx context.Context, code string) (*entity.MenuItem, error) {
	for _, it := range r.items {
		if it.Code == code {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) List(ctx context.Context, params *repository.MenuFilterParams) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeMenuRepo) Upsert(ctx context.Context, item *entity.MenuItem) (bool, error) {
	existing, _ := r.GetByCode(ctx, item.Code)
	if existing != nil {
		item.ID = existing.ID
		r.items[item.ID] = item
		return false, nil
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return true, nil
}

func (r *fakeMenuRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeSaleRepo struct {
	created   []*entity.Sale
	createErr error
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	r.created = append(r.created, sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) error { return nil }

func (r *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	out := make([]entity.Sale, 0, len(r.created))
	for _, s := range r.created {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	out, _, err := r.List(ctx, nil)
	return out, err
}

func (r *fakeSaleRepo) TotalAmount(ctx context.Context) (int64, error) {
	var total int64
	for _, s := range r.created {
		total += s.TotalAmount
	}
	return total, nil
}

func newTestPOS(menu *fakeMenuRepo, sales *fakeSaleRepo) *POSService {
	return NewPOSService(NewCartStore(), menu, sales)
}

func TestPOSAddItemUnavailable(t *testing.T) {
	item := menuItem("Seasonal Special", 250)
	item.IsAvailable = false
	pos := newTestPOS(newFakeMenuRepo(item), &fakeSaleRepo{})

	_, err := pos.AddItem(context.Background(), uuid.New(), item.ID)
	if err == nil {
		t.Fatal("expected error adding an unavailable item")
	}
}

func TestPOSAddItemNotFound(t *testing.T) {
	pos := newTestPOS(newFakeMenuRepo(), &fakeSaleRepo{})

	_, err := pos.AddItem(context.Background(), uuid.New(), uuid.New())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 404 {
		t.Fatalf("expected 404 app error, got %v", err)
	}
}

func TestPOSCheckoutEmptyCart(t *testing.T) {
	sales := &fakeSaleRepo{}
	pos := newTestPOS(newFakeMenuRepo(), sales)

	_, err := pos.Checkout(context.Background(), uuid.New(), &CheckoutInput{})
	if !errors.Is(err, apperror.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if len(sales.created) != 0 {
		t.Fatal("an empty cart must be rejected before any write")
	}
}

func TestPOSCheckoutRecordsSnapshots(t *testing.T) {
	cappuccino := menuItem("Classic Cappuccino", 180)
	cappuccino.IsAvailable = true
	latte := menuItem("Iced Hazelnut Latte", 220)
	latte.IsAvailable = true

	menu := newFakeMenuRepo(cappuccino, latte)
	sales := &fakeSaleRepo{}
	pos := newTestPOS(menu, sales)

	staff := uuid.New()
	ctx := context.Background()
	if _, err := pos.AddItem(ctx, staff, cappuccino.ID); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := pos.AddItem(ctx, staff, cappuccino.ID); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := pos.AddItem(ctx, staff, latte.ID); err != nil {
		t.Fatalf("add item: %v", err)
	}

	// Reprice the catalog after the cart is built. The recorded sale
	// must keep the prices the cart saw.
	cappuccino.Price = 99900

	sale, err := pos.Checkout(ctx, staff, &CheckoutInput{PaymentMethod: enum.PaymentMethodUPI})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if sale.TotalAmount != 58000 {
		t.Fatalf("expected total 58000 paise, got %d", sale.TotalAmount)
	}
	if sale.PaymentSource != enum.PaymentSourcePOS {
		t.Fatalf("expected pos payment source, got %s", sale.PaymentSource)
	}
	if sale.StaffUserID != staff {
		t.Fatal("sale must record the acting staff member")
	}
	if len(sale.Items) != 2 {
		t.Fatalf("expected 2 item snapshots, got %d", len(sale.Items))
	}
	if sale.Items[0].Name != "Classic Cappuccino" || sale.Items[0].Quantity != 2 || sale.Items[0].LineTotal != 36000 {
		t.Fatalf("unexpected first snapshot %+v", sale.Items[0])
	}
	if sale.Items[1].UnitPrice != 22000 {
		t.Fatalf("unexpected second snapshot price %d", sale.Items[1].UnitPrice)
	}

	if view := pos.GetCart(staff); len(view.Lines) != 0 {
		t.Fatal("expected cart cleared after successful checkout")
	}
}

func TestPOSCheckoutDefaultsToCash(t *testing.T) {
	item := menuItem("Espresso", 120)
	item.IsAvailable = true
	sales := &fakeSaleRepo{}
	pos := newTestPOS(newFakeMenuRepo(item), sales)

	staff := uuid.New()
	ctx := context.Background()
	if _, err := pos.AddItem(ctx, staff, item.ID); err != nil {
		t.Fatalf("add item: %v", err)
	}

	sale, err := pos.Checkout(ctx, staff, &CheckoutInput{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if sale.PaymentMethod != enum.PaymentMethodCash {
		t.Fatalf("expected Cash default, got %s", sale.PaymentMethod)
	}
}

func TestPOSCheckoutFailureKeepsCart(t *testing.T) {
	item := menuItem("Espresso", 120)
	item.IsAvailable = true
	sales := &fakeSaleRepo{createErr: errors.New("db down")}
	pos := newTestPOS(newFakeMenuRepo(item), sales)

	staff := uuid.New()
	ctx := context.Background()
	if _, err := pos.AddItem(ctx, staff, item.ID); err != nil {
		t.Fatalf("add item: %v", err)
	}

	if _, err := pos.Checkout(ctx, staff, &CheckoutInput{}); err == nil {
		t.Fatal("expected checkout to fail")
	}

	view := pos.GetCart(staff)
	if len(view.Lines) != 1 {
		t.Fatal("a failed checkout must keep the cart intact for retry")
	}
}
