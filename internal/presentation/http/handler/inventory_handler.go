package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/request"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles inventory HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing inventory items
func (h *InventoryHandler) List(c *gin.Context) {
	var req request.InventoryFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.inventoryService.ListInventory(c.Request.Context(), &repository.InventoryFilterParams{
		Category:     req.Category,
		ActiveOnly:   req.Active,
		LowStockOnly: req.LowStock,
		Search:       req.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory retrieved", items)
}

// Get handles retrieving a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	item, err := h.inventoryService.GetInventoryItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved", item)
}

// Create handles inventory item creation
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.CreateInventoryItem(c.Request.Context(), &service.CreateInventoryItemInput{
		Name:             req.Name,
		Category:         req.Category,
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		ReorderThreshold: req.ReorderThreshold,
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created", item)
}

// Update handles inventory item updates
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	var req request.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.UpdateInventoryItem(c.Request.Context(), id, &service.UpdateInventoryItemInput{
		Name:             req.Name,
		Category:         req.Category,
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		ReorderThreshold: req.ReorderThreshold,
		Notes:            req.Notes,
		IsActive:         req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated", item)
}

// Delete handles inventory item deletion
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	if err := h.inventoryService.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item deleted", nil)
}

// Seed handles the sample-data bulk upsert
func (h *InventoryHandler) Seed(c *gin.Context) {
	count, err := h.inventoryService.SeedSampleData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("Seeded %d inventory items.", count), nil)
}

// Export handles the CSV download
func (h *InventoryHandler) Export(c *gin.Context) {
	data, err := h.inventoryService.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CSV(c, "inventory_export.csv", data)
}
