package service

import (
	"context"

	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
)

// DashboardService aggregates the admin dashboard metrics
type DashboardService struct {
	menuRepo      repository.MenuRepository
	inventoryRepo repository.InventoryRepository
	saleRepo      repository.SaleRepository
	expenseRepo   repository.ExpenseRepository
	userRepo      repository.UserRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	menuRepo repository.MenuRepository,
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
		saleRepo:      saleRepo,
		expenseRepo:   expenseRepo,
		userRepo:      userRepo,
	}
}

// DashboardMetrics represents the admin dashboard numbers
type DashboardMetrics struct {
	MenuCount         int64   `json:"menu_count"`
	InventoryLowCount int64   `json:"inventory_low_count"`
	PendingStaffCount int64   `json:"pending_staff_count"`
	TotalExpenses     float64 `json:"total_expenses"`
	TotalSales        float64 `json:"total_sales"`
	NetProfit         float64 `json:"net_profit"`
}

// GetMetrics returns the dashboard metrics. Sums are computed by the
// store, not by loading rows into memory.
func (s *DashboardService) GetMetrics(ctx context.Context) (*DashboardMetrics, error) {
	menuCount, err := s.menuRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	lowCount, err := s.inventoryRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	pendingCount, err := s.userRepo.CountByStatus(ctx, enum.UserStatusPending)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenseRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	totalSales, err := s.saleRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardMetrics{
		MenuCount:         menuCount,
		InventoryLowCount: lowCount,
		PendingStaffCount: pendingCount,
		TotalExpenses:     float64(totalExpenses) / 100,
		TotalSales:        float64(totalSales) / 100,
		NetProfit:         float64(totalSales-totalExpenses) / 100,
	}, nil
}
