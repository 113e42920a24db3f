package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/config"
	domainRepo "github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/internal/presentation/http/handler"
	"github.com/samlamare/cafechill-api/internal/presentation/http/middleware"
	"github.com/samlamare/cafechill-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Contact   *handler.ContactHandler
	Menu      *handler.MenuHandler
	POS       *handler.POSHandler
	Sale      *handler.SaleHandler
	Inventory *handler.InventoryHandler
	Expense   *handler.ExpenseHandler
	Staff     *handler.StaffHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.POST("/google/callback", h.Auth.GoogleCallback)
	}

	// The customer-facing site reads the menu without signing in.
	menu := v1.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.GET("/:id", h.Menu.Get)
	}

	v1.POST("/contact", h.Contact.Submit)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/auth/me", h.Auth.Me)

	// Staff routes require an approved account. A signed-in but
	// still-pending staff member can only see their own profile.
	approved := protected.Group("")
	approved.Use(middleware.RequireApproved())

	registerPOSRoutes(approved, h, deps)
	registerPrinterRoutes(approved, h)

	// Admin area
	admin := approved.Group("")
	admin.Use(middleware.RequireRole("admin"))

	registerMenuAdminRoutes(admin, h)
	registerInventoryRoutes(admin, h)
	registerSaleRoutes(admin, h)
	registerFinanceRoutes(admin, h)
	registerStaffRoutes(admin, h)

	admin.GET("/dashboard/metrics", h.Dashboard.Metrics)
}

func registerPOSRoutes(approved *gin.RouterGroup, h *Handlers, deps *Deps) {
	pos := approved.Group("/pos")
	{
		pos.GET("/cart", h.POS.GetCart)
		pos.POST("/cart/items", h.POS.AddItem)
		pos.PUT("/cart/items", h.POS.UpdateQuantity)
		pos.DELETE("/cart/items/:id", h.POS.RemoveLine)
		pos.DELETE("/cart", h.POS.ClearCart)
		// Checkout uses idempotency middleware so a retried request
		// cannot record the same sale twice.
		pos.POST("/checkout", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.POS.Checkout)
	}
}

func registerPrinterRoutes(approved *gin.RouterGroup, h *Handlers) {
	printerGroup := approved.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/receipt/:id", h.Printer.PrintReceipt)
	}
}

func registerMenuAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	menu := admin.Group("/admin/menu")
	{
		menu.POST("", h.Menu.Create)
		menu.PUT("/:id", h.Menu.Update)
		menu.DELETE("/:id", h.Menu.Delete)
		menu.POST("/seed", h.Menu.Seed)
		menu.GET("/export", h.Menu.Export)
	}
}

func registerInventoryRoutes(admin *gin.RouterGroup, h *Handlers) {
	inventory := admin.Group("/admin/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.POST("/seed", h.Inventory.Seed)
		inventory.GET("/export", h.Inventory.Export)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}
}

func registerSaleRoutes(admin *gin.RouterGroup, h *Handlers) {
	sales := admin.Group("/admin/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/export", h.Sale.Export)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
	}
}

func registerFinanceRoutes(admin *gin.RouterGroup, h *Handlers) {
	expenses := admin.Group("/admin/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/export", h.Expense.Export)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	bills := admin.Group("/admin/bills")
	{
		bills.GET("", h.Expense.ListBills)
		bills.POST("", h.Expense.CreateBill)
		bills.POST("/:id/pay", h.Expense.MarkBillPaid)
		bills.DELETE("/:id", h.Expense.DeleteBill)
	}
}

func registerStaffRoutes(admin *gin.RouterGroup, h *Handlers) {
	users := admin.Group("/admin/users")
	{
		users.GET("", h.Staff.List)
		users.POST("/:id/approve", h.Staff.Approve)
		users.POST("/:id/reject", h.Staff.Reject)
		users.PUT("/:id/role", h.Staff.UpdateRole)
		users.DELETE("/:id", h.Staff.Delete)
	}
}
