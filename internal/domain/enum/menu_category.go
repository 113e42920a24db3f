package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MenuCategory represents a section of the café menu
type MenuCategory string

const (
	MenuCategoryCoffeeHot  MenuCategory = "coffee-hot"
	MenuCategoryCoffeeCold MenuCategory = "coffee-cold"
	MenuCategoryBeverages  MenuCategory = "beverages"
	MenuCategoryFood       MenuCategory = "food"
	MenuCategoryDessert    MenuCategory = "dessert"
	MenuCategorySpecial    MenuCategory = "special"
)

func (c MenuCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is one of the known menu categories
func (c MenuCategory) IsValid() bool {
	switch c {
	case MenuCategoryCoffeeHot, MenuCategoryCoffeeCold, MenuCategoryBeverages,
		MenuCategoryFood, MenuCategoryDessert, MenuCategorySpecial:
		return true
	}
	return false
}

func (c MenuCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *MenuCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = MenuCategory(str)
	return nil
}

func (c MenuCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *MenuCategory) Scan(value interface{}) error {
	if value == nil {
		*c = MenuCategoryFood
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = MenuCategory(v)
	case []byte:
		*c = MenuCategory(string(v))
	}
	return nil
}
