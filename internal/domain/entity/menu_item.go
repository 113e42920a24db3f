package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samlamare/cafechill-api/internal/domain/enum"
)

// MenuItem represents a sellable item in the café catalog.
// Carts and sales copy the name and price at add time; they never hold
// a live reference, so later price edits do not touch recorded sales.
type MenuItem struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Code          string            `gorm:"size:100;unique;not null" json:"code"` // slug used by the frontend
	Name          string            `gorm:"size:255;not null" json:"name"`
	Description   string            `gorm:"type:text" json:"description"`
	Price         int64             `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Category      enum.MenuCategory `gorm:"size:50;not null;index" json:"category"`
	Image         *string           `gorm:"size:255" json:"image,omitempty"`
	Tags          string            `gorm:"size:255" json:"tags"` // comma-separated
	IsVegetarian  bool              `gorm:"default:false" json:"is_vegetarian"`
	IsSpicy       bool              `gorm:"default:false" json:"is_spicy"`
	IsChefSpecial bool              `gorm:"default:false" json:"is_chef_special"`
	IsAvailable   bool              `gorm:"default:true" json:"is_available"`
	Featured      bool              `gorm:"default:false" json:"featured"`
	BestSeller    bool              `gorm:"default:false" json:"best_seller"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// GetPriceDecimal returns the price in rupees
func (m *MenuItem) GetPriceDecimal() float64 {
	return float64(m.Price) / 100
}

// SetPriceFromDecimal sets the price from a rupee value
func (m *MenuItem) SetPriceFromDecimal(price float64) {
	m.Price = int64(price * 100)
}
