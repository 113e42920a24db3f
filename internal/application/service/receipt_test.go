package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
)

func sampleSale(t *testing.T) *entity.Sale {
	t.Helper()
	id, err := uuid.Parse("7a3f1c42-9d0b-4c1e-8f2a-11aa22bb3c4d")
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}
	name := "Priya"
	return &entity.Sale{
		ID:            id,
		StaffUserID:   uuid.New(),
		TotalAmount:   58000,
		PaymentMethod: enum.PaymentMethodCash,
		PaymentSource: enum.PaymentSourcePOS,
		CreatedAt:     time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Staff:         entity.User{Email: "priya@coffeechill.in", DisplayName: &name},
		Items: []entity.SaleItem{
			{Name: "Classic Cappuccino", UnitPrice: 18000, Quantity: 2, LineTotal: 36000},
			{Name: "Iced Hazelnut Latte", UnitPrice: 22000, Quantity: 1, LineTotal: 22000},
		},
	}
}

func TestBuildReceiptFields(t *testing.T) {
	r := BuildReceipt(sampleSale(t))

	if r.Header.StoreName != "Coffee & Chill" {
		t.Fatalf("unexpected store name %q", r.Header.StoreName)
	}
	if r.OrderID != "BB3C4D" {
		t.Fatalf("expected order id BB3C4D, got %q", r.OrderID)
	}
	if r.Staff != "Priya" {
		t.Fatalf("expected staff display name, got %q", r.Staff)
	}
	if r.Date != "2026-03-14 10:30" {
		t.Fatalf("unexpected date %q", r.Date)
	}
	if r.Total != 580 {
		t.Fatalf("expected total 580, got %v", r.Total)
	}
	if len(r.Items) != 2 {
		t.Fatalf("expected 2 receipt items, got %d", len(r.Items))
	}
}

func TestBuildReceiptStaffFallbacks(t *testing.T) {
	sale := sampleSale(t)

	sale.Staff.DisplayName = nil
	if got := BuildReceipt(sale).Staff; got != "priya@coffeechill.in" {
		t.Fatalf("expected email fallback, got %q", got)
	}

	sale.Staff.Email = ""
	if got := BuildReceipt(sale).Staff; got != "Verified" {
		t.Fatalf("expected Verified fallback, got %q", got)
	}

	sale.StaffUserID = uuid.Nil
	if got := BuildReceipt(sale).Staff; got != "N/A" {
		t.Fatalf("expected N/A fallback, got %q", got)
	}
}

func TestRenderReceiptTextLines(t *testing.T) {
	text := RenderReceiptText(BuildReceipt(sampleSale(t)))

	for _, want := range []string{
		"COFFEE & CHILL\n",
		"Police Bazar, Shillong\n",
		"+91 60028 61294\n",
		"Order ID: #BB3C4D\n",
		"Staff: Priya\n",
		"Classic Cappuccino  2  360.00\n",
		"Iced Hazelnut Latte  1  220.00\n",
		"TOTAL  ₹580.00\n",
		"Payment: CASH\n",
		"Thank You!\n",
		"Please visit again.\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("receipt missing %q\n%s", want, text)
		}
	}

	if !strings.HasPrefix(text, "COFFEE & CHILL\n") {
		t.Fatal("receipt must open with the store name")
	}
}

func TestRenderReceiptTextDeterministic(t *testing.T) {
	r := BuildReceipt(sampleSale(t))
	if RenderReceiptText(r) != RenderReceiptText(r) {
		t.Fatal("rendering the same receipt twice must be byte identical")
	}
}

func TestRenderReceiptTextEmptyItems(t *testing.T) {
	sale := sampleSale(t)
	sale.Items = nil

	text := RenderReceiptText(BuildReceipt(sale))
	if !strings.Contains(text, "(no items)\n") {
		t.Fatalf("expected placeholder line for empty items\n%s", text)
	}
}
