package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samlamare/cafechill-api/internal/domain/enum"
)

// Sale represents a completed transaction. Item rows are snapshots taken
// at checkout; the recorded prices and total never change when the menu
// is edited afterwards.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StaffUserID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"staff_user_id"`
	TotalAmount   int64              `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	PaymentMethod enum.PaymentMethod `gorm:"size:50;default:'Cash'" json:"payment_method"`
	PaymentSource enum.PaymentSource `gorm:"size:50;default:'manual_upload';index" json:"payment_source"`
	Notes         string             `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Staff User       `gorm:"foreignKey:StaffUserID" json:"-"`
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(s),
		TotalAmount: float64(s.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalDecimal returns the total in rupees
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.TotalAmount) / 100
}

// ShortID returns the last six characters of the sale id, uppercased.
// Receipts print this as the order number.
func (s *Sale) ShortID() string {
	id := s.ID.String()
	if len(id) < 6 {
		return strings.ToUpper(id)
	}
	return strings.ToUpper(id[len(id)-6:])
}

// SaleItem is a line item snapshot on a sale
type SaleItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	MenuItemID *uuid.UUID     `gorm:"type:uuid;index" json:"menu_item_id,omitempty"` // informational only, never dereferenced
	Name       string         `gorm:"size:255;not null" json:"name"`
	UnitPrice  int64          `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Quantity   int            `gorm:"not null" json:"quantity"`
	LineTotal  int64          `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
		LineTotal: float64(si.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
