package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/pkg/apperror"
)

func TestCreateMenuItemDerivesCode(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)

	item, err := svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:     "Iced Hazelnut Latte",
		Price:    220,
		Category: enum.MenuCategoryCoffeeCold,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Code != "iced-hazelnut-latte" {
		t.Fatalf("unexpected code %q", item.Code)
	}
	if item.Price != 22000 {
		t.Fatalf("expected price stored in paise, got %d", item.Price)
	}
	if !item.IsAvailable {
		t.Fatal("new items default to available")
	}
}

func TestCreateMenuItemRejectsDuplicateName(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)
	ctx := context.Background()

	input := &CreateMenuItemInput{
		Name:     "Classic Cappuccino",
		Price:    180,
		Category: enum.MenuCategoryCoffeeHot,
	}
	if _, err := svc.CreateMenuItem(ctx, input); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.CreateMenuItem(ctx, input)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 409 {
		t.Fatalf("expected 409 conflict, got %v", err)
	}
}

func TestCreateMenuItemValidation(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())
	ctx := context.Background()

	if _, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Price: 100, Category: enum.MenuCategoryFood}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "X", Price: -1, Category: enum.MenuCategoryFood}); err == nil {
		t.Fatal("expected error for negative price")
	}
	if _, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "X", Price: 1, Category: enum.MenuCategory("soup")}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestUpdateMenuItemKeepsUnsetFields(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{
		Name:        "Masala Chai",
		Description: "House spice blend",
		Price:       90,
		Category:    enum.MenuCategoryBeverages,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPrice := 110.0
	updated, err := svc.UpdateMenuItem(ctx, item.ID, &UpdateMenuItemInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 11000 {
		t.Fatalf("expected repriced item, got %d", updated.Price)
	}
	if updated.Description != "House spice blend" {
		t.Fatal("unset fields must not be touched")
	}
}

func TestSeedSampleDataIsIdempotent(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)
	ctx := context.Background()

	first, err := svc.SeedSampleData(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if first == 0 {
		t.Fatal("expected seeded items")
	}

	second, err := svc.SeedSampleData(ctx)
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if second != first {
		t.Fatalf("reseed touched %d rows, want %d", second, first)
	}

	count, _ := repo.Count(ctx)
	if count != int64(first) {
		t.Fatalf("expected %d catalog rows after reseed, got %d", first, count)
	}
}

func TestMenuExportCSV(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)
	ctx := context.Background()

	if _, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{
		Name:     "Classic Cappuccino",
		Price:    180,
		Category: enum.MenuCategoryCoffeeHot,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	data, err := svc.ExportCSV(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "Name,Category,Price,Available\r\n") {
		t.Fatalf("unexpected header\n%s", text)
	}
	if !strings.Contains(text, "Classic Cappuccino,coffee-hot,180.00,Yes\r\n") {
		t.Fatalf("unexpected row\n%s", text)
	}
}
