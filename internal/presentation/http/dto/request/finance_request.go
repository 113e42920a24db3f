package request

import "time"

// ManualSaleItemRequest is an item row on a manually entered sale
type ManualSaleItemRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

// CreateManualSaleRequest records a sale through the finance back-office
type CreateManualSaleRequest struct {
	TotalAmount   float64                 `json:"total_amount" binding:"required,gt=0"`
	PaymentMethod string                  `json:"payment_method"`
	Notes         string                  `json:"notes" binding:"max=2000"`
	Items         []ManualSaleItemRequest `json:"items"`
}

// UpdateSaleRequest represents the administrative sale edit
type UpdateSaleRequest struct {
	TotalAmount   *float64 `json:"total_amount" binding:"omitempty,gt=0"`
	PaymentMethod *string  `json:"payment_method"`
	Notes         *string  `json:"notes" binding:"omitempty,max=2000"`
}

// SaleFilterRequest represents sale list filter parameters
type SaleFilterRequest struct {
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
	PaymentMethod string `form:"payment_method"`
	PaymentSource string `form:"payment_source"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
}

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Title    string     `json:"title" binding:"required,max=255"`
	Category string     `json:"category" binding:"max=100"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	Date     *time.Time `json:"date"`
	Notes    string     `json:"notes" binding:"max=2000"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Title    *string    `json:"title" binding:"omitempty,max=255"`
	Category *string    `json:"category" binding:"omitempty,max=100"`
	Amount   *float64   `json:"amount" binding:"omitempty,gt=0"`
	Date     *time.Time `json:"date"`
	Notes    *string    `json:"notes" binding:"omitempty,max=2000"`
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	DueDate     *time.Time `json:"due_date"`
	ReferenceID string     `json:"reference_id" binding:"max=100"`
	Notes       string     `json:"notes" binding:"max=2000"`
}
