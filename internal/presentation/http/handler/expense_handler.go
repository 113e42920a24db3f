package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/request"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles finance expense and bill HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	params := &repository.ExpenseFilterParams{
		Category: c.Query("category"),
	}

	if v := c.Query("start_date"); v != "" {
		start, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "Invalid start date")
			return
		}
		params.StartDate = &start
	}
	if v := c.Query("end_date"); v != "" {
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expenses retrieved", expenses)
}

// Create handles expense creation
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateExpenseInput{
		Title:    req.Title,
		Category: req.Category,
		Amount:   req.Amount,
		Notes:    req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded", expense)
}

// Update handles expense updates
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, &service.UpdateExpenseInput{
		Title:    req.Title,
		Category: req.Category,
		Amount:   req.Amount,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated", expense)
}

// Delete handles expense deletion
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted", nil)
}

// Export handles the CSV download
func (h *ExpenseHandler) Export(c *gin.Context) {
	data, err := h.expenseService.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CSV(c, "expenses_export.csv", data)
}

// ListBills handles listing bills
func (h *ExpenseHandler) ListBills(c *gin.Context) {
	unpaidOnly := c.Query("unpaid") == "true"

	bills, err := h.expenseService.ListBills(c.Request.Context(), unpaidOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved", bills)
}

// CreateBill handles bill creation
func (h *ExpenseHandler) CreateBill(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.expenseService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		Title:       req.Title,
		Category:    enum.BillCategory(req.Category),
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		ReferenceID: req.ReferenceID,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill recorded", bill)
}

// MarkBillPaid handles marking a bill paid
func (h *ExpenseHandler) MarkBillPaid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.expenseService.MarkBillPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill marked paid", bill)
}

// DeleteBill handles bill deletion
func (h *ExpenseHandler) DeleteBill(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.expenseService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted", nil)
}
