package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samlamare/cafechill-api/internal/domain/enum"
)

// Expense represents a one-off cost recorded by the finance back-office
type Expense struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Category      string         `gorm:"size:100;default:'General'" json:"category"`
	Amount        int64          `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Date          time.Time      `gorm:"not null" json:"date"`
	RelatedBillID *uuid.UUID     `gorm:"type:uuid" json:"related_bill_id,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// Bill represents a recurring obligation (rent, electricity) that an
// expense can be recorded against once paid
type Bill struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Category    enum.BillCategory `gorm:"size:50;default:'Other'" json:"category"`
	Amount      int64             `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	DueDate     *time.Time        `json:"due_date,omitempty"`
	PaidDate    *time.Time        `json:"paid_date,omitempty"`
	IsPaid      bool              `gorm:"default:false" json:"is_paid"`
	ReferenceID string            `gorm:"size:100" json:"reference_id"` // invoice number
	Notes       string            `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(b),
		Amount: float64(b.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
