package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem represents a stocked ingredient or supply
type InventoryItem struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Category         string         `gorm:"size:100;default:'General'" json:"category"`
	Quantity         float64        `gorm:"not null;default:0" json:"quantity"`
	Unit             string         `gorm:"size:50;not null;default:'units'" json:"unit"` // kg, liters, pcs
	ReorderThreshold float64        `gorm:"default:5" json:"reorder_threshold"`
	Notes            string         `gorm:"type:text" json:"notes"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NeedsReorder reports whether stock has fallen to the reorder threshold
func (i *InventoryItem) NeedsReorder() bool {
	return i.Quantity <= i.ReorderThreshold
}
