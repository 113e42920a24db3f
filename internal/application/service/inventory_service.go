package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/pkg/apperror"
	"github.com/samlamare/cafechill-api/pkg/csvutil"
)

// InventoryService handles inventory stock operations
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// ListInventory returns inventory items sorted by name
func (s *InventoryService) ListInventory(ctx context.Context, params *repository.InventoryFilterParams) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.List(ctx, params)
}

// GetInventoryItem returns an inventory item by ID
func (s *InventoryService) GetInventoryItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// CreateInventoryItemInput represents the create inventory item input
type CreateInventoryItemInput struct {
	Name             string
	Category         string
	Quantity         float64
	Unit             string
	ReorderThreshold float64
	Notes            string
}

// CreateInventoryItem creates a new stock item
func (s *InventoryService) CreateInventoryItem(ctx context.Context, input *CreateInventoryItemInput) (*entity.InventoryItem, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	item := &entity.InventoryItem{
		Name:             input.Name,
		Quantity:         input.Quantity,
		ReorderThreshold: input.ReorderThreshold,
		Notes:            input.Notes,
		IsActive:         true,
	}
	if input.Category != "" {
		item.Category = input.Category
	}
	if input.Unit != "" {
		item.Unit = input.Unit
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateInventoryItemInput represents the update inventory item input
type UpdateInventoryItemInput struct {
	Name             *string
	Category         *string
	Quantity         *float64
	Unit             *string
	ReorderThreshold *float64
	Notes            *string
	IsActive         *bool
}

// UpdateInventoryItem updates a stock item
func (s *InventoryService) UpdateInventoryItem(ctx context.Context, id uuid.UUID, input *UpdateInventoryItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.Name != nil && *input.Name != "" {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.ReorderThreshold != nil {
		item.ReorderThreshold = *input.ReorderThreshold
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteInventoryItem deletes a stock item
func (s *InventoryService) DeleteInventoryItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

var sampleInventory = []entity.InventoryItem{
	{Name: "Espresso Beans", Category: "Coffee", Quantity: 15, Unit: "kg", ReorderThreshold: 5, Notes: "Dark roast blend", IsActive: true},
	{Name: "Whole Milk", Category: "Dairy", Quantity: 40, Unit: "liters", ReorderThreshold: 10, Notes: "Daily delivery", IsActive: true},
	{Name: "Almond Milk", Category: "Dairy", Quantity: 8, Unit: "liters", ReorderThreshold: 3, Notes: "Barista blend", IsActive: true},
	{Name: "Sourdough Bread", Category: "Bakery", Quantity: 12, Unit: "loaves", ReorderThreshold: 4, IsActive: true},
	{Name: "Avocados", Category: "Produce", Quantity: 25, Unit: "pcs", ReorderThreshold: 10, Notes: "Check ripeness", IsActive: true},
	{Name: "Takeaway Cups (12oz)", Category: "Packaging", Quantity: 400, Unit: "pcs", ReorderThreshold: 100, IsActive: true},
	{Name: "Napkins", Category: "Packaging", Quantity: 1000, Unit: "pcs", ReorderThreshold: 200, IsActive: true},
	{Name: "Chocolate Syrup", Category: "Syrups", Quantity: 4, Unit: "bottles", ReorderThreshold: 2, Notes: "Monin", IsActive: true},
	{Name: "Green Tea Leaves", Category: "Tea", Quantity: 2, Unit: "kg", ReorderThreshold: 0.5, IsActive: true},
}

// SeedSampleData bulk-upserts a starter stock list keyed by name
func (s *InventoryService) SeedSampleData(ctx context.Context) (int, error) {
	count := 0
	for _, item := range sampleInventory {
		seeded := item
		if _, err := s.inventoryRepo.Upsert(ctx, &seeded); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ExportCSV renders all inventory items as a CSV document
func (s *InventoryService) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := s.inventoryRepo.List(ctx, &repository.InventoryFilterParams{})
	if err != nil {
		return nil, err
	}

	header := []string{"Name", "Category", "Quantity", "Unit", "Reorder_Level", "Notes"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			item.Category,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			item.Unit,
			strconv.FormatFloat(item.ReorderThreshold, 'f', -1, 64),
			item.Notes,
		})
	}

	return csvutil.Marshal(header, rows)
}
