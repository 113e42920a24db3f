package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/enum"
)

func TestCreateManualSale(t *testing.T) {
	sales := &fakeSaleRepo{}
	svc := NewSaleService(sales)

	sale, err := svc.CreateManualSale(context.Background(), &CreateManualSaleInput{
		StaffUserID:   uuid.New(),
		TotalAmount:   450,
		PaymentMethod: enum.PaymentMethodCard,
		Notes:         "paper register, evening shift",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sale.PaymentSource != enum.PaymentSourceManualUpload {
		t.Fatalf("expected manual_upload source, got %s", sale.PaymentSource)
	}
	if sale.TotalAmount != 45000 {
		t.Fatalf("expected total in paise, got %d", sale.TotalAmount)
	}
	if len(sale.Items) != 0 {
		t.Fatal("a manual sale may carry no items")
	}
}

func TestCreateManualSaleValidation(t *testing.T) {
	svc := NewSaleService(&fakeSaleRepo{})
	ctx := context.Background()

	if _, err := svc.CreateManualSale(ctx, &CreateManualSaleInput{TotalAmount: 100}); err == nil {
		t.Fatal("expected error for missing staff user")
	}
	if _, err := svc.CreateManualSale(ctx, &CreateManualSaleInput{StaffUserID: uuid.New()}); err == nil {
		t.Fatal("expected error for missing total")
	}
	if _, err := svc.CreateManualSale(ctx, &CreateManualSaleInput{
		StaffUserID: uuid.New(),
		TotalAmount: 100,
		Items:       []ManualSaleItemInput{{Name: "", Quantity: 1}},
	}); err == nil {
		t.Fatal("expected error for unnamed item row")
	}
}

func TestUpdateSaleHeaderOnly(t *testing.T) {
	sales := &fakeSaleRepo{}
	svc := NewSaleService(sales)
	ctx := context.Background()

	sale, err := svc.CreateManualSale(ctx, &CreateManualSaleInput{
		StaffUserID: uuid.New(),
		TotalAmount: 100,
		Items:       []ManualSaleItemInput{{Name: "Espresso", UnitPrice: 100, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := "corrected shift total"
	amount := 120.0
	updated, err := svc.UpdateSale(ctx, sale.ID, &UpdateSaleInput{TotalAmount: &amount, Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TotalAmount != 12000 {
		t.Fatalf("expected updated total, got %d", updated.TotalAmount)
	}
	if len(updated.Items) != 1 || updated.Items[0].Name != "Espresso" {
		t.Fatal("item snapshots must survive a header edit untouched")
	}
}
