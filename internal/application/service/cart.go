package service

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/samlamare/cafechill-api/internal/domain/entity"
)

// CartLine is one item row in a staff cart. Name and UnitPrice are
// copied from the menu item when the line is created; the line never
// reads the catalog again, so a later price edit does not change it.
type CartLine struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	UnitPrice  int64     `json:"-"` // paise
	Quantity   int       `json:"quantity"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (l CartLine) MarshalJSON() ([]byte, error) {
	type Alias CartLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		LineTotal: float64(l.UnitPrice*int64(l.Quantity)) / 100,
	})
}

// Cart holds one staff member's in-progress selection. It lives in
// memory only; checkout or an explicit clear destroys it. Lines keep
// insertion order, and re-adding an item bumps its quantity in place
// without moving the line.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the menu item. An existing line for the same
// item is incremented; otherwise a new line is appended with a snapshot
// of the item's current name and price.
func (c *Cart) AddItem(item *entity.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
}

// UpdateQuantity adjusts a line's quantity by delta, clamped to a
// minimum of 1. Dropping a line is RemoveLine's job, never a side
// effect of decrementing. Returns false if no line matches.
func (c *Cart) UpdateQuantity(menuItemID uuid.UUID, delta int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return true
		}
	}
	return false
}

// RemoveLine removes the line for the given item. Removing a line that
// is not in the cart is a no-op.
func (c *Cart) RemoveLine(menuItemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total returns the sum of unit price times quantity over all lines,
// in paise. It always recomputes; there is no cached total to go stale.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) totalLocked() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.UnitPrice * int64(l.Quantity)
	}
	return total
}

// Lines returns a copy of the current lines in insertion order
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// CartStore keeps one cart per staff user. Carts are created lazily on
// first use and are never shared between users.
type CartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewCartStore creates an empty cart store
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uuid.UUID]*Cart)}
}

// Get returns the cart for the given staff user, creating it if needed
func (s *CartStore) Get(staffUserID uuid.UUID) *Cart {
	s.mu.RLock()
	cart, ok := s.carts[staffUserID]
	s.mu.RUnlock()
	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok = s.carts[staffUserID]; ok {
		return cart
	}
	cart = NewCart()
	s.carts[staffUserID] = cart
	return cart
}
