package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/internal/infrastructure/database"
	"github.com/samlamare/cafechill-api/pkg/apperror"
	"github.com/samlamare/cafechill-api/pkg/csvutil"
	"github.com/samlamare/cafechill-api/pkg/utils"
)

// MenuService handles menu catalog operations
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListMenuItems returns menu items sorted by category then name
func (s *MenuService) ListMenuItems(ctx context.Context, params *repository.MenuFilterParams) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx, params)
}

// GetMenuItem returns a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// CreateMenuItemInput represents the create menu item input
type CreateMenuItemInput struct {
	Name          string
	Description   string
	Price         float64 // rupees
	Category      enum.MenuCategory
	Image         *string
	Tags          string
	IsVegetarian  bool
	IsSpicy       bool
	IsChefSpecial bool
	IsAvailable   *bool
	Featured      bool
	BestSeller    bool
}

// CreateMenuItem creates a new menu item. The item code is derived from
// the name; a second item slugging to an existing code is rejected.
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	if !input.Category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid category")
	}

	code := utils.Slugify(input.Name)
	existing, err := s.menuRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A menu item with this name already exists")
	}

	item := &entity.MenuItem{
		Code:          code,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Image:         input.Image,
		Tags:          input.Tags,
		IsVegetarian:  input.IsVegetarian,
		IsSpicy:       input.IsSpicy,
		IsChefSpecial: input.IsChefSpecial,
		IsAvailable:   true,
		Featured:      input.Featured,
		BestSeller:    input.BestSeller,
	}
	item.SetPriceFromDecimal(input.Price)
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItemInput represents the update menu item input
type UpdateMenuItemInput struct {
	Name          *string
	Description   *string
	Price         *float64 // rupees
	Category      *enum.MenuCategory
	Image         *string
	Tags          *string
	IsVegetarian  *bool
	IsSpicy       *bool
	IsChefSpecial *bool
	IsAvailable   *bool
	Featured      *bool
	BestSeller    *bool
}

// UpdateMenuItem updates a menu item. Recorded sales keep their price
// snapshots, so repricing here never rewrites history.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil && *input.Name != "" {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid category")
		}
		item.Category = *input.Category
	}
	if input.Image != nil {
		item.Image = input.Image
	}
	if input.Tags != nil {
		item.Tags = *input.Tags
	}
	if input.IsVegetarian != nil {
		item.IsVegetarian = *input.IsVegetarian
	}
	if input.IsSpicy != nil {
		item.IsSpicy = *input.IsSpicy
	}
	if input.IsChefSpecial != nil {
		item.IsChefSpecial = *input.IsChefSpecial
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}
	if input.BestSeller != nil {
		item.BestSeller = *input.BestSeller
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem deletes a menu item
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// SeedSampleData bulk-upserts the house menu catalog. Existing items
// are updated in place by code; returns the number of rows touched.
func (s *MenuService) SeedSampleData(ctx context.Context) (int, error) {
	count := 0
	for _, item := range database.DefaultMenuItems() {
		seeded := item
		if _, err := s.menuRepo.Upsert(ctx, &seeded); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ExportCSV renders all menu items as a CSV document
func (s *MenuService) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := s.menuRepo.List(ctx, &repository.MenuFilterParams{})
	if err != nil {
		return nil, err
	}

	header := []string{"Name", "Category", "Price", "Available"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		available := "No"
		if item.IsAvailable {
			available = "Yes"
		}
		rows = append(rows, []string{
			item.Name,
			item.Category.String(),
			csvutil.FormatAmount(item.Price),
			available,
		})
	}

	return csvutil.Marshal(header, rows)
}
