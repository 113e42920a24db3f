package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillCategory represents the kind of recurring bill tracked by finance
type BillCategory string

const (
	BillCategoryElectricity  BillCategory = "Electricity"
	BillCategoryRent         BillCategory = "Rent"
	BillCategoryRawMaterials BillCategory = "Raw Materials"
	BillCategoryMaintenance  BillCategory = "Maintenance"
	BillCategoryOther        BillCategory = "Other"
)

func (c BillCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is one of the known bill categories
func (c BillCategory) IsValid() bool {
	switch c {
	case BillCategoryElectricity, BillCategoryRent, BillCategoryRawMaterials,
		BillCategoryMaintenance, BillCategoryOther:
		return true
	}
	return false
}

func (c BillCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *BillCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = BillCategory(str)
	return nil
}

func (c BillCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *BillCategory) Scan(value interface{}) error {
	if value == nil {
		*c = BillCategoryOther
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = BillCategory(v)
	case []byte:
		*c = BillCategory(string(v))
	}
	return nil
}
