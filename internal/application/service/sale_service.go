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
	"github.com/samlamare/cafechill-api/pkg/pagination"
)

// SaleService handles the finance back-office view of sales: listing,
// manual entry, and the administrative edits the POS flow never makes
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// ListSales returns sales newest-first with pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, p), nil
}

// GetSale returns a sale with its item snapshots
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ManualSaleItemInput is an item row on a manually entered sale
type ManualSaleItemInput struct {
	Name      string
	UnitPrice float64 // rupees
	Quantity  int
}

// CreateManualSaleInput represents a sale entered through the finance
// back-office rather than the POS screen
type CreateManualSaleInput struct {
	StaffUserID   uuid.UUID
	TotalAmount   float64 // rupees
	PaymentMethod enum.PaymentMethod
	Notes         string
	Items         []ManualSaleItemInput
}

// CreateManualSale records a sale uploaded by hand. Items are optional;
// a legacy paper-register entry may carry only a total. The payment
// source is fixed to manual_upload so POS-entered and hand-entered
// revenue stay distinguishable.
func (s *SaleService) CreateManualSale(ctx context.Context, input *CreateManualSaleInput) (*entity.Sale, error) {
	if input.StaffUserID == uuid.Nil {
		return nil, apperror.NewBadRequestError("Staff user is required")
	}
	if input.TotalAmount <= 0 {
		return nil, apperror.NewBadRequestError("Total amount is required")
	}

	method := input.PaymentMethod
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	items := make([]entity.SaleItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Name == "" || it.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Sale items need a name and a positive quantity")
		}
		unitPrice := int64(it.UnitPrice * 100)
		items = append(items, entity.SaleItem{
			Name:      it.Name,
			UnitPrice: unitPrice,
			Quantity:  it.Quantity,
			LineTotal: unitPrice * int64(it.Quantity),
		})
	}

	sale := &entity.Sale{
		StaffUserID:   input.StaffUserID,
		TotalAmount:   int64(input.TotalAmount * 100),
		PaymentMethod: method,
		PaymentSource: enum.PaymentSourceManualUpload,
		Notes:         input.Notes,
		Items:         items,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSaleInput represents the administrative sale edit
type UpdateSaleInput struct {
	TotalAmount   *float64 // rupees
	PaymentMethod *enum.PaymentMethod
	Notes         *string
}

// UpdateSale applies an administrative override to a recorded sale.
// Item snapshots are never editable; only the header fields are.
func (s *SaleService) UpdateSale(ctx context.Context, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if input.TotalAmount != nil {
		if *input.TotalAmount <= 0 {
			return nil, apperror.NewBadRequestError("Total amount must be positive")
		}
		sale.TotalAmount = int64(*input.TotalAmount * 100)
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment method")
		}
		sale.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteSale removes a sale and its item snapshots
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.Delete(ctx, id)
}

// ExportCSV renders all sales newest-first as a CSV document
func (s *SaleService) ExportCSV(ctx context.Context) ([]byte, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	header := []string{"Date", "Total_Amount", "Payment_Method", "Source", "Staff_ID", "Notes"}
	rows := make([][]string, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, []string{
			sale.CreatedAt.Format(time.RFC3339),
			csvutil.FormatAmount(sale.TotalAmount),
			sale.PaymentMethod.String(),
			sale.PaymentSource.String(),
			sale.StaffUserID.String(),
			sale.Notes,
		})
	}

	return csvutil.Marshal(header, rows)
}
