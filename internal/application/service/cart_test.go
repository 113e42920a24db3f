package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
)

func menuItem(name string, priceRupees int64) *entity.MenuItem {
	return &entity.MenuItem{
		ID:    uuid.New(),
		Name:  name,
		Price: priceRupees * 100,
	}
}

func TestCartAddItemMergesLines(t *testing.T) {
	cappuccino := menuItem("Classic Cappuccino", 180)
	latte := menuItem("Iced Hazelnut Latte", 220)

	cart := NewCart()
	cart.AddItem(cappuccino)
	cart.AddItem(latte)
	cart.AddItem(cappuccino)

	lines := cart.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Name != "Classic Cappuccino" || lines[0].Quantity != 2 {
		t.Fatalf("expected cappuccino x2 first, got %s x%d", lines[0].Name, lines[0].Quantity)
	}
	if lines[1].Name != "Iced Hazelnut Latte" || lines[1].Quantity != 1 {
		t.Fatalf("expected latte x1 second, got %s x%d", lines[1].Name, lines[1].Quantity)
	}
	if got := cart.Total(); got != 58000 {
		t.Fatalf("expected total 58000 paise, got %d", got)
	}
}

func TestCartReAddKeepsInsertionOrder(t *testing.T) {
	first := menuItem("Espresso", 120)
	second := menuItem("Croissant", 150)

	cart := NewCart()
	cart.AddItem(first)
	cart.AddItem(second)
	cart.AddItem(first)

	lines := cart.Lines()
	if lines[0].MenuItemID != first.ID {
		t.Fatal("re-adding an item must not move its line")
	}
}

func TestCartUpdateQuantityClampsAtOne(t *testing.T) {
	item := menuItem("Espresso", 120)
	cart := NewCart()
	cart.AddItem(item)

	if !cart.UpdateQuantity(item.ID, 3) {
		t.Fatal("expected update to find the line")
	}
	if got := cart.Lines()[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %d", got)
	}

	cart.UpdateQuantity(item.ID, -10)
	if got := cart.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", got)
	}
	if len(cart.Lines()) != 1 {
		t.Fatal("decrementing must never drop a line")
	}
}

func TestCartUpdateQuantityUnknownLine(t *testing.T) {
	cart := NewCart()
	if cart.UpdateQuantity(uuid.New(), 1) {
		t.Fatal("expected false for an unknown line")
	}
}

func TestCartRemoveLineIsIdempotent(t *testing.T) {
	item := menuItem("Espresso", 120)
	cart := NewCart()
	cart.AddItem(item)

	cart.RemoveLine(item.ID)
	if !cart.IsEmpty() {
		t.Fatal("expected empty cart after remove")
	}

	// Removing again is a no-op.
	cart.RemoveLine(item.ID)
	if !cart.IsEmpty() {
		t.Fatal("expected cart to stay empty")
	}
}

func TestCartTotalRecomputes(t *testing.T) {
	a := menuItem("Espresso", 120)
	b := menuItem("Croissant", 150)

	cart := NewCart()
	cart.AddItem(a)
	cart.AddItem(b)
	cart.UpdateQuantity(a.ID, 2)

	if got := cart.Total(); got != 3*12000+15000 {
		t.Fatalf("unexpected total %d", got)
	}

	cart.RemoveLine(b.ID)
	if got := cart.Total(); got != 3*12000 {
		t.Fatalf("unexpected total after remove %d", got)
	}

	cart.Clear()
	if got := cart.Total(); got != 0 {
		t.Fatalf("expected zero total after clear, got %d", got)
	}
}

func TestCartStoreIsolatesUsers(t *testing.T) {
	store := NewCartStore()
	alice := uuid.New()
	bob := uuid.New()

	store.Get(alice).AddItem(menuItem("Espresso", 120))

	if !store.Get(bob).IsEmpty() {
		t.Fatal("expected a fresh cart for a different user")
	}
	if store.Get(alice).IsEmpty() {
		t.Fatal("expected alice's cart to persist between gets")
	}
}
