package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/request"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles listing menu items. The public site and the POS item
// picker both read from here.
func (h *MenuHandler) List(c *gin.Context) {
	var req request.MenuFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MenuFilterParams{
		AvailableOnly: req.Available,
		Search:        req.Search,
	}
	if req.Category != "" {
		category := enum.MenuCategory(req.Category)
		if !category.IsValid() {
			response.BadRequest(c, "Invalid category")
			return
		}
		params.Category = &category
	}

	items, err := h.menuService.ListMenuItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu items retrieved", items)
}

// Get handles retrieving a single menu item
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved", item)
}

// Create handles menu item creation
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), &service.CreateMenuItemInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      enum.MenuCategory(req.Category),
		Image:         req.Image,
		Tags:          req.Tags,
		IsVegetarian:  req.IsVegetarian,
		IsSpicy:       req.IsSpicy,
		IsChefSpecial: req.IsChefSpecial,
		IsAvailable:   req.IsAvailable,
		Featured:      req.Featured,
		BestSeller:    req.BestSeller,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created", item)
}

// Update handles menu item updates
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateMenuItemInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Image:         req.Image,
		Tags:          req.Tags,
		IsVegetarian:  req.IsVegetarian,
		IsSpicy:       req.IsSpicy,
		IsChefSpecial: req.IsChefSpecial,
		IsAvailable:   req.IsAvailable,
		Featured:      req.Featured,
		BestSeller:    req.BestSeller,
	}
	if req.Category != nil {
		category := enum.MenuCategory(*req.Category)
		input.Category = &category
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated", item)
}

// Delete handles menu item deletion
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted", nil)
}

// Seed handles the sample-data bulk upsert
func (h *MenuHandler) Seed(c *gin.Context) {
	count, err := h.menuService.SeedSampleData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("Seeded %d menu items.", count), nil)
}

// Export handles the CSV download
func (h *MenuHandler) Export(c *gin.Context) {
	data, err := h.menuService.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CSV(c, "menu_export.csv", data)
}
