package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/pkg/csvutil"
)

type AdminUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository

	mu             sync.Mutex
	cachedStats    *DashboardStats
	statsFetchedAt time.Time
}

const statsCacheTTL = 30 * time.Second

func NewAdminUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *AdminUseCase {
	return &AdminUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type DashboardStats struct {
	TotalOrders     int64 `json:"total_orders"`
	PendingOrders   int64 `json:"pending_orders"`
	DeliveredOrders int64 `json:"delivered_orders"`
	Revenue         int64 `json:"revenue"`
	TotalUsers      int64 `json:"total_users"`
	TotalProducts   int64 `json:"total_products"`
	LowStock        int64 `json:"low_stock"`
}

// GetDashboardStats aggregates the back-office counters. Results are cached
// for a short window since the dashboard polls.
func (uc *AdminUseCase) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	uc.mu.Lock()
	if uc.cachedStats != nil && time.Since(uc.statsFetchedAt) < statsCacheTTL {
		stats := *uc.cachedStats
		uc.mu.Unlock()
		return &stats, nil
	}
	uc.mu.Unlock()

	orders, totalOrders, err := uc.orderRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalOrders: totalOrders}
	for _, order := range orders {
		switch order.Status {
		case entity.OrderStatusPending:
			stats.PendingOrders++
		case entity.OrderStatusDelivered:
			stats.DeliveredOrders++
		}
		// COD revenue only counts once the cash is collected.
		if order.Status == entity.OrderStatusDelivered {
			stats.Revenue += order.TotalAmount
		}
	}

	products, totalProducts, err := uc.productRepo.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = totalProducts
	for _, product := range products {
		if product.StockStatus() != entity.StockStatusInStock {
			stats.LowStock++
		}
	}

	totalUsers, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalUsers = totalUsers

	uc.mu.Lock()
	uc.cachedStats = stats
	uc.statsFetchedAt = time.Now()
	uc.mu.Unlock()

	return stats, nil
}

type orderExportRow struct {
	ID       string `csv:"order_id"`
	Date     string `csv:"date"`
	Customer string `csv:"customer"`
	Phone    string `csv:"phone"`
	City     string `csv:"city"`
	Items    string `csv:"items"`
	Subtotal int64  `csv:"subtotal"`
	Delivery int64  `csv:"delivery_charge"`
	Total    int64  `csv:"total"`
	Status   string `csv:"status"`
}

// ExportOrdersCSV renders every order (optionally filtered by status) as CSV
// and returns the bytes plus the dated filename.
func (uc *AdminUseCase) ExportOrdersCSV(ctx context.Context, status string) ([]byte, string, error) {
	orders, _, err := uc.orderRepo.List(ctx, status, 0, 0)
	if err != nil {
		return nil, "", err
	}

	rows := make([]orderExportRow, 0, len(orders))
	for _, order := range orders {
		lines := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			lines = append(lines, fmt.Sprintf("%s (%s) x%d", item.Title, item.Size, item.Quantity))
		}

		rows = append(rows, orderExportRow{
			ID:       order.ID,
			Date:     order.CreatedAt.UTC().Format(time.RFC3339),
			Customer: order.Shipping.Name,
			Phone:    order.Shipping.Phone,
			City:     order.Shipping.City,
			Items:    strings.Join(lines, "; "),
			Subtotal: order.Subtotal,
			Delivery: order.DeliveryCharge,
			Total:    order.TotalAmount,
			Status:   string(order.Status),
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, "", err
	}

	return data, csvutil.Filename("orders", time.Now()), nil
}

type userExportRow struct {
	ID     string `csv:"user_id"`
	Name   string `csv:"name"`
	Email  string `csv:"email"`
	Phone  string `csv:"phone"`
	City   string `csv:"city"`
	Joined string `csv:"joined"`
}

func (uc *AdminUseCase) ExportUsersCSV(ctx context.Context) ([]byte, string, error) {
	users, _, err := uc.userRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, "", err
	}

	rows := make([]userExportRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, userExportRow{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Phone:  user.Phone,
			City:   user.City,
			Joined: user.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, "", err
	}

	return data, csvutil.Filename("users", time.Now()), nil
}
