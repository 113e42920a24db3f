package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/request"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
)

// POSHandler handles the staff checkout HTTP requests
type POSHandler struct {
	posService *service.POSService
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(posService *service.POSService) *POSHandler {
	return &POSHandler{posService: posService}
}

// GetCart returns the current staff cart
func (h *POSHandler) GetCart(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Cart retrieved", h.posService.GetCart(*userID))
}

// AddItem adds one unit of a menu item to the cart
func (h *POSHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.posService.AddItem(c.Request.Context(), *userID, req.MenuItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// UpdateQuantity adjusts a cart line's quantity
func (h *POSHandler) UpdateQuantity(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.posService.UpdateQuantity(*userID, req.MenuItemID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", cart)
}

// RemoveLine removes a line from the cart
func (h *POSHandler) RemoveLine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	menuItemID, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	response.OK(c, "Line removed", h.posService.RemoveLine(*userID, menuItemID))
}

// ClearCart empties the cart without recording a sale
func (h *POSHandler) ClearCart(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Cart cleared", h.posService.ClearCart(*userID))
}

// Checkout records the cart as a sale and returns it with its receipt
func (h *POSHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.posService.Checkout(c.Request.Context(), *userID, &service.CheckoutInput{
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt := service.BuildReceipt(sale)

	response.Created(c, "Sale recorded", gin.H{
		"sale":         sale,
		"receipt":      receipt,
		"receipt_text": service.RenderReceiptText(receipt),
	})
}
