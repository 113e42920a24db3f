package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	domainRepo "github.com/samlamare/cafechill-api/internal/domain/repository"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if params.LowStockOnly {
		query = query.Where("quantity <= reorder_threshold")
	}

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Upsert(ctx context.Context, item *entity.InventoryItem) (bool, error) {
	var existing entity.InventoryItem
	err := r.db.WithContext(ctx).First(&existing, "name = ?", item.Name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.db.WithContext(ctx).Create(item).Error
	}
	if err != nil {
		return false, err
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	return false, r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("is_active = ?", true).
		Where("quantity <= reorder_threshold").
		Count(&count).Error
	return count, err
}
