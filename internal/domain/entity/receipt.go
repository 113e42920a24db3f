package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is NOT
// a database entity; it is derived from a Sale on demand and the same
// Sale always yields the same Receipt.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	OrderID       string        `json:"order_id"` // short id, last 6 chars of the sale id
	Date          string        `json:"date"`
	Staff         string        `json:"staff"`
	PaymentMethod string        `json:"payment_method"`
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total"` // the sale's stored total, never recomputed
}
