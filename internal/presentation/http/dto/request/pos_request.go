package request

import "github.com/google/uuid"

// AddCartItemRequest adds one unit of a menu item to the staff cart
type AddCartItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
}

// UpdateCartQuantityRequest adjusts a cart line's quantity by a delta.
// The resulting quantity is clamped to a minimum of 1; removing a line
// is its own request.
type UpdateCartQuantityRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Delta      int       `json:"delta" binding:"required"`
}

// CheckoutRequest converts the staff cart into a recorded sale
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes" binding:"max=2000"`
}
