package request

// CreateMenuItemRequest represents a menu item creation request
type CreateMenuItemRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Description   string  `json:"description" binding:"max=2000"`
	Price         float64 `json:"price" binding:"min=0"`
	Category      string  `json:"category" binding:"required"`
	Image         *string `json:"image"`
	Tags          string  `json:"tags" binding:"max=255"`
	IsVegetarian  bool    `json:"is_vegetarian"`
	IsSpicy       bool    `json:"is_spicy"`
	IsChefSpecial bool    `json:"is_chef_special"`
	IsAvailable   *bool   `json:"is_available"`
	Featured      bool    `json:"featured"`
	BestSeller    bool    `json:"best_seller"`
}

// UpdateMenuItemRequest represents a menu item update request
type UpdateMenuItemRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=2000"`
	Price         *float64 `json:"price" binding:"omitempty,min=0"`
	Category      *string  `json:"category"`
	Image         *string  `json:"image"`
	Tags          *string  `json:"tags" binding:"omitempty,max=255"`
	IsVegetarian  *bool    `json:"is_vegetarian"`
	IsSpicy       *bool    `json:"is_spicy"`
	IsChefSpecial *bool    `json:"is_chef_special"`
	IsAvailable   *bool    `json:"is_available"`
	Featured      *bool    `json:"featured"`
	BestSeller    *bool    `json:"best_seller"`
}

// MenuFilterRequest represents menu list filter parameters
type MenuFilterRequest struct {
	Category  string `form:"category"`
	Available bool   `form:"available"`
	Search    string `form:"search"`
}
