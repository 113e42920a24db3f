package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/pkg/apperror"
	"github.com/samlamare/cafechill-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	saleRepo    repository.SaleRepository
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, saleRepo repository.SaleRepository, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		saleRepo:    saleRepo,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Address:   storeAddress,
			Phone:     storePhone,
		},
		OrderID:       "TEST01",
		Date:          "Test Date",
		Staff:         "System",
		PaymentMethod: "Cash",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		Total: 20.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintSaleReceipt fetches a sale (with items) and prints its receipt.
func (s *PrinterService) PrintSaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	receipt := BuildReceipt(sale)

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes. Thermal paper
// has no rupee glyph in the default code page, so amounts print as
// "Rs" on paper while the JSON and text renderings keep the symbol.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(receiptWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Sale info
	doc.KeyValue("Date:", r.Date).
		KeyValue("Order ID:", "#"+r.OrderID).
		KeyValue("Staff:", r.Staff)

	doc.Separator('-')

	// Items
	if len(r.Items) == 0 {
		doc.SetAlign(printer.AlignCenter).
			Text("(no items)").
			SetAlign(printer.AlignLeft)
	}
	for _, item := range r.Items {
		doc.Columns(item.Name, item.Quantity, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Total
	doc.SetBold(true).
		KeyValue("TOTAL", fmt.Sprintf("Rs %.2f", r.Total)).
		SetBold(false)
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("Thank You!").
		SetBold(false).
		Text("Please visit again.").
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
