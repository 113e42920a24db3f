package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
)

// Store header printed on every receipt. These are deliberately
// constants, not configuration: the receipt belongs to one shop.
const (
	storeName    = "Coffee & Chill"
	storeAddress = "Police Bazar, Shillong"
	storePhone   = "+91 60028 61294"
)

const receiptWidth = 32 // 58mm thermal paper

// BuildReceipt derives a printable receipt from a recorded sale. The
// same sale always yields the same receipt; nothing is recomputed or
// stored. The total is the sale's stored total even if it disagrees
// with a recomputation from the item rows.
func BuildReceipt(sale *entity.Sale) *entity.Receipt {
	staff := "N/A"
	if sale.Staff.DisplayName != nil && *sale.Staff.DisplayName != "" {
		staff = *sale.Staff.DisplayName
	} else if sale.Staff.Email != "" {
		staff = sale.Staff.Email
	} else if sale.StaffUserID != uuid.Nil {
		staff = "Verified"
	}

	items := make([]entity.ReceiptItem, 0, len(sale.Items))
	for _, it := range sale.Items {
		items = append(items, entity.ReceiptItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: float64(it.UnitPrice) / 100,
			Total:     float64(it.LineTotal) / 100,
		})
	}

	return &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: storeName,
			Address:   storeAddress,
			Phone:     storePhone,
		},
		OrderID:       sale.ShortID(),
		Date:          sale.CreatedAt.Format("2006-01-02 15:04"),
		Staff:         staff,
		PaymentMethod: sale.PaymentMethod.String(),
		Items:         items,
		Total:         sale.GetTotalDecimal(),
	}
}

// RenderReceiptText renders a receipt as fixed-width plain text. The
// output is deterministic: rendering the same receipt twice produces
// byte-identical text.
func RenderReceiptText(r *entity.Receipt) string {
	var b strings.Builder
	sep := strings.Repeat("-", receiptWidth)

	b.WriteString(strings.ToUpper(r.Header.StoreName) + "\n")
	if r.Header.Address != "" {
		b.WriteString(r.Header.Address + "\n")
	}
	if r.Header.Phone != "" {
		b.WriteString(r.Header.Phone + "\n")
	}
	b.WriteString(sep + "\n")

	b.WriteString("Date: " + r.Date + "\n")
	b.WriteString("Order ID: #" + r.OrderID + "\n")
	b.WriteString("Staff: " + r.Staff + "\n")
	b.WriteString(sep + "\n")

	if len(r.Items) == 0 {
		b.WriteString("(no items)\n")
	}
	for _, it := range r.Items {
		fmt.Fprintf(&b, "%s  %d  %.2f\n", it.Name, it.Quantity, it.Total)
	}
	b.WriteString(sep + "\n")

	fmt.Fprintf(&b, "TOTAL  ₹%.2f\n", r.Total)
	if r.PaymentMethod != "" {
		b.WriteString("Payment: " + strings.ToUpper(r.PaymentMethod) + "\n")
	}
	b.WriteString(sep + "\n")

	b.WriteString("Thank You!\n")
	b.WriteString("Please visit again.\n")

	return b.String()
}
