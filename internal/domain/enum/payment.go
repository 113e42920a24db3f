package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a customer paid for a sale
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "Cash"
	PaymentMethodCard  PaymentMethod = "Card"
	PaymentMethodUPI   PaymentMethod = "UPI - GPay"
	PaymentMethodOther PaymentMethod = "Other"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is one of the known payment methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = PaymentMethod(str)
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = PaymentMethod(v)
	case []byte:
		*m = PaymentMethod(string(v))
	}
	return nil
}

// PaymentSource distinguishes where a sale record originated.
// "gateway" is reserved for a payment-gateway integration that does not
// exist yet; nothing in the API produces it.
type PaymentSource string

const (
	PaymentSourcePOS          PaymentSource = "pos"
	PaymentSourceManualUpload PaymentSource = "manual_upload"
	PaymentSourceGateway      PaymentSource = "gateway"
)

func (s PaymentSource) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known payment sources
func (s PaymentSource) IsValid() bool {
	switch s {
	case PaymentSourcePOS, PaymentSourceManualUpload, PaymentSourceGateway:
		return true
	}
	return false
}

func (s PaymentSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PaymentSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = PaymentSource(str)
	return nil
}

func (s PaymentSource) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentSource) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentSourceManualUpload
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentSource(v)
	case []byte:
		*s = PaymentSource(string(v))
	}
	return nil
}
