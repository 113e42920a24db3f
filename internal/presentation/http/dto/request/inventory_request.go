package request

// CreateInventoryItemRequest represents an inventory item creation request
type CreateInventoryItemRequest struct {
	Name             string  `json:"name" binding:"required,min=2,max=255"`
	Category         string  `json:"category" binding:"max=100"`
	Quantity         float64 `json:"quantity" binding:"min=0"`
	Unit             string  `json:"unit" binding:"max=50"`
	ReorderThreshold float64 `json:"reorder_threshold" binding:"min=0"`
	Notes            string  `json:"notes" binding:"max=2000"`
}

// UpdateInventoryItemRequest represents an inventory item update request
type UpdateInventoryItemRequest struct {
	Name             *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category         *string  `json:"category" binding:"omitempty,max=100"`
	Quantity         *float64 `json:"quantity" binding:"omitempty,min=0"`
	Unit             *string  `json:"unit" binding:"omitempty,max=50"`
	ReorderThreshold *float64 `json:"reorder_threshold" binding:"omitempty,min=0"`
	Notes            *string  `json:"notes" binding:"omitempty,max=2000"`
	IsActive         *bool    `json:"is_active"`
}

// InventoryFilterRequest represents inventory list filter parameters
type InventoryFilterRequest struct {
	Category string `form:"category"`
	Active   bool   `form:"active"`
	LowStock bool   `form:"low_stock"`
	Search   string `form:"search"`
}
