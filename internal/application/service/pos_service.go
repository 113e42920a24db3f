package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/pkg/apperror"
)

// POSService handles the staff checkout flow: cart management and
// converting a confirmed cart into a recorded sale
type POSService struct {
	carts    *CartStore
	menuRepo repository.MenuRepository
	saleRepo repository.SaleRepository
}

// NewPOSService creates a new POS service
func NewPOSService(
	carts *CartStore,
	menuRepo repository.MenuRepository,
	saleRepo repository.SaleRepository,
) *POSService {
	return &POSService{
		carts:    carts,
		menuRepo: menuRepo,
		saleRepo: saleRepo,
	}
}

// CartView is the API representation of a staff cart
type CartView struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

func (s *POSService) cartView(cart *Cart) *CartView {
	lines := cart.Lines()
	if lines == nil {
		lines = []CartLine{}
	}
	return &CartView{
		Lines: lines,
		Total: float64(cart.Total()) / 100,
	}
}

// GetCart returns the current cart for a staff user
func (s *POSService) GetCart(staffUserID uuid.UUID) *CartView {
	return s.cartView(s.carts.Get(staffUserID))
}

// AddItem adds one unit of a menu item to the staff cart. The cart
// copies the item's name and price; the catalog is not consulted again
// at checkout.
func (s *POSService) AddItem(ctx context.Context, staffUserID, menuItemID uuid.UUID) (*CartView, error) {
	item, err := s.menuRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	if !item.IsAvailable {
		return nil, apperror.NewBadRequestError("Menu item is not available")
	}

	cart := s.carts.Get(staffUserID)
	cart.AddItem(item)
	return s.cartView(cart), nil
}

// UpdateQuantity adjusts a cart line's quantity by delta. The quantity
// never drops below 1; use RemoveLine to take a line off the cart.
func (s *POSService) UpdateQuantity(staffUserID, menuItemID uuid.UUID, delta int) (*CartView, error) {
	cart := s.carts.Get(staffUserID)
	if !cart.UpdateQuantity(menuItemID, delta) {
		return nil, apperror.NewNotFoundError("Cart line")
	}
	return s.cartView(cart), nil
}

// RemoveLine removes a line from the staff cart. Removing an absent
// line succeeds silently.
func (s *POSService) RemoveLine(staffUserID, menuItemID uuid.UUID) *CartView {
	cart := s.carts.Get(staffUserID)
	cart.RemoveLine(menuItemID)
	return s.cartView(cart)
}

// ClearCart empties the staff cart without recording a sale
func (s *POSService) ClearCart(staffUserID uuid.UUID) *CartView {
	cart := s.carts.Get(staffUserID)
	cart.Clear()
	return s.cartView(cart)
}

// CheckoutInput represents the checkout request
type CheckoutInput struct {
	PaymentMethod enum.PaymentMethod
	Notes         string
}

// Checkout records the cart as a sale. An empty cart is rejected before
// any write. On success the sale is persisted with item snapshots and
// the cart is cleared; on failure the cart keeps all its lines so the
// staff member can retry without re-entering items.
func (s *POSService) Checkout(ctx context.Context, staffUserID uuid.UUID, input *CheckoutInput) (*entity.Sale, error) {
	if staffUserID == uuid.Nil {
		return nil, apperror.NewBadRequestError("Staff user is required")
	}

	cart := s.carts.Get(staffUserID)
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	method := input.PaymentMethod
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	items := make([]entity.SaleItem, 0, len(lines))
	var total int64
	for _, l := range lines {
		menuItemID := l.MenuItemID
		items = append(items, entity.SaleItem{
			MenuItemID: &menuItemID,
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Quantity:   l.Quantity,
			LineTotal:  l.UnitPrice * int64(l.Quantity),
		})
		total += l.UnitPrice * int64(l.Quantity)
	}

	sale := &entity.Sale{
		StaffUserID:   staffUserID,
		TotalAmount:   total,
		PaymentMethod: method,
		PaymentSource: enum.PaymentSourcePOS,
		Notes:         input.Notes,
		Items:         items,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	// The cart is cleared only once the sale is durably recorded.
	cart.Clear()
	return sale, nil
}
