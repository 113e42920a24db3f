package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status returns printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.printerService.GetStatus())
}

// TestPrint sends a test page to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// Return the receipt data anyway so the UI can show it
		response.OK(c, "Printer unavailable, returning receipt data", gin.H{
			"receipt": receipt,
			"printed": false,
			"error":   err.Error(),
		})
		return
	}

	response.OK(c, "Test page printed", gin.H{
		"receipt": receipt,
		"printed": true,
	})
}

// PrintReceipt prints the receipt for a recorded sale. A disconnected
// printer still returns the rendered receipt so the POS can fall back
// to the browser print dialog.
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.printerService.PrintSaleReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.OK(c, "Printer unavailable, returning receipt data", gin.H{
				"receipt":      receipt,
				"receipt_text": service.RenderReceiptText(receipt),
				"printed":      false,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", gin.H{
		"receipt":      receipt,
		"receipt_text": service.RenderReceiptText(receipt),
		"printed":      true,
	})
}
