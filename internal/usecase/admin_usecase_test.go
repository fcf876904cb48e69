package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dropfit/internal/domain/entity"
)

func seedOrders(repo *fakeOrderRepo) {
	repo.orders["o1"] = &entity.Order{
		ID:     "o1",
		Status: entity.OrderStatusDelivered,
		Items: []entity.OrderItem{
			{Title: "Akira Tee", Size: "M", Quantity: 1, Price: 900},
			{Title: "Minimal Hoodie", Size: "L", Quantity: 2, Price: 1400},
		},
		Subtotal:       3700,
		DeliveryCharge: 0,
		TotalAmount:    3700,
		Shipping:       entity.ShippingInfo{Name: "Rafi", Phone: "01700000000", City: "Dhaka"},
	}
	repo.orders["o2"] = &entity.Order{
		ID:          "o2",
		Status:      entity.OrderStatusPending,
		Subtotal:    900,
		TotalAmount: 960,
		Shipping:    entity.ShippingInfo{Name: "Nadia", City: "Uttara, Dhaka"},
	}
	repo.orders["o3"] = &entity.Order{
		ID:          "o3",
		Status:      entity.OrderStatusCancelled,
		TotalAmount: 500,
	}
}

func newAdminFixture() (*AdminUseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	seedOrders(orderRepo)

	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Title: "Akira Tee", Stock: 50},
		"p2": {ID: "p2", Title: "Minimal Hoodie", Stock: 3},
		"p3": {ID: "p3", Title: "Gone Tee", Stock: 0},
	}}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Name: "Rafi", Email: "rafi@example.com"},
	}}

	return NewAdminUseCase(orderRepo, productRepo, userRepo), orderRepo
}

func TestDashboardStats(t *testing.T) {
	uc, _ := newAdminFixture()

	stats, err := uc.GetDashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.DeliveredOrders)
	assert.Equal(t, int64(3700), stats.Revenue, "only delivered COD orders count as revenue")
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.LowStock)
}

func TestDashboardStatsAreCached(t *testing.T) {
	uc, orderRepo := newAdminFixture()

	first, err := uc.GetDashboardStats(context.Background())
	assert.NoError(t, err)

	// New orders don't show until the cache window passes.
	orderRepo.orders["o4"] = &entity.Order{ID: "o4", Status: entity.OrderStatusPending}

	second, err := uc.GetDashboardStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first.TotalOrders, second.TotalOrders)
}

func TestExportOrdersCSV(t *testing.T) {
	uc, _ := newAdminFixture()

	data, filename, err := uc.ExportOrdersCSV(context.Background(), "")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "orders_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	csv := string(data)
	assert.Contains(t, csv, "order_id,date,customer,phone,city,items,subtotal,delivery_charge,total,status")
	// No comma or quote in the joined items, so the field stays unquoted.
	assert.Contains(t, csv, "Akira Tee (M) x1; Minimal Hoodie (L) x2")
	assert.Contains(t, csv, "Rafi")
	assert.Contains(t, csv, "delivered")
	// A comma inside a field does get quoted.
	assert.Contains(t, csv, `"Uttara, Dhaka"`)
}

func TestExportOrdersCSVFilterByStatus(t *testing.T) {
	uc, _ := newAdminFixture()

	data, _, err := uc.ExportOrdersCSV(context.Background(), "pending")

	assert.NoError(t, err)
	csv := string(data)
	assert.Contains(t, csv, "o2")
	assert.NotContains(t, csv, "o1")
}

func TestExportUsersCSV(t *testing.T) {
	uc, _ := newAdminFixture()

	data, filename, err := uc.ExportUsersCSV(context.Background())

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "users_"))
	assert.Contains(t, string(data), "rafi@example.com")
}
