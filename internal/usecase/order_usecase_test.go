package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"dropfit/internal/domain/entity"
	"dropfit/pkg/errors"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, int64(len(products)), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeOrderRepo struct {
	placed  []*entity.Order
	orders  map[string]*entity.Order
	updates map[string]entity.OrderStatus
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  make(map[string]*entity.Order),
		updates: make(map[string]entity.OrderStatus),
	}
}

func (r *fakeOrderRepo) PlaceOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = "order-1"
	}
	r.placed = append(r.placed, order)
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var orders []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, int64(len(orders)), nil
}

func (r *fakeOrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error) {
	var orders []*entity.Order
	for _, order := range r.orders {
		if status == "" || string(order.Status) == status {
			orders = append(orders, order)
		}
	}
	return orders, int64(len(orders)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	order.Status = status
	r.updates[id] = status
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	var users []*entity.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeSettingsRepo struct {
	settings entity.DeliverySettings
	calls    int
}

func (r *fakeSettingsRepo) GetDelivery(ctx context.Context) (entity.DeliverySettings, error) {
	r.calls++
	return r.settings, nil
}

func (r *fakeSettingsRepo) UpdateDelivery(ctx context.Context, settings entity.DeliverySettings) error {
	r.settings = settings
	return nil
}

type fakeEmailService struct {
	confirmations []string
	welcomes      []string
	announcements int
	err           error
}

func (s *fakeEmailService) SendWelcome(ctx context.Context, to, name string) error {
	s.welcomes = append(s.welcomes, to)
	return s.err
}

func (s *fakeEmailService) SendOrderConfirmation(ctx context.Context, to string, order *entity.Order) error {
	s.confirmations = append(s.confirmations, to)
	return s.err
}

func (s *fakeEmailService) SendDropAnnouncement(ctx context.Context, recipients []string, drop *entity.Drop) error {
	s.announcements++
	return s.err
}

func newOrderFixture() (*OrderUseCase, *fakeOrderRepo, *fakeProductRepo, *fakeEmailService) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Title: "Akira Tee", Price: 900, Sizes: []string{"M", "L"}, Stock: 10},
		"p2": {ID: "p2", Title: "Minimal Hoodie", Price: 1400, Sizes: []string{"L"}, Stock: 2},
	}}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Name: "Rafi", Email: "rafi@example.com", Role: entity.RoleUser},
	}}
	orderRepo := newFakeOrderRepo()
	settingsUc := NewSettingsUseCase(&fakeSettingsRepo{settings: entity.DefaultDeliverySettings()}, 0)
	emailService := &fakeEmailService{}

	uc := NewOrderUseCase(orderRepo, productRepo, userRepo, settingsUc, emailService, nil)
	return uc, orderRepo, productRepo, emailService
}

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: "p1", Size: "M", Quantity: 1},
		},
		Shipping: ShippingInput{
			Name:    "Rafi",
			Phone:   "01700000000",
			Address: "House 1, Road 2",
			City:    "Dhaka",
		},
	}
}

func TestCreateOrderComputesServerSideTotals(t *testing.T) {
	uc, orderRepo, _, emailService := newOrderFixture()

	input := CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: "p1", Size: "M", Quantity: 1},
			{ProductID: "p2", Size: "L", Quantity: 1},
		},
		Shipping: ShippingInput{Name: "Rafi", Phone: "01700000000", Address: "House 1", City: "Sylhet"},
	}

	order, err := uc.CreateOrder(context.Background(), "u1", input)

	assert.NoError(t, err)
	assert.Equal(t, int64(2300), order.Subtotal)
	assert.Equal(t, int64(0), order.DeliveryCharge, "2300 is above the free delivery threshold")
	assert.Equal(t, int64(2300), order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
	assert.Len(t, orderRepo.placed, 1)
	assert.Equal(t, []string{"rafi@example.com"}, emailService.confirmations)
}

func TestCreateOrderAppliesRemoteSurcharge(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Shipping.City = "Sylhet Sadar"

	order, err := uc.CreateOrder(context.Background(), "u1", input)

	assert.NoError(t, err)
	assert.Equal(t, int64(900), order.Subtotal)
	assert.Equal(t, int64(100), order.DeliveryCharge)
	assert.Equal(t, int64(1000), order.TotalAmount)
}

func TestCreateOrderSnapshotsPriceAndTitle(t *testing.T) {
	uc, _, productRepo, _ := newOrderFixture()

	order, err := uc.CreateOrder(context.Background(), "u1", validOrderInput())
	assert.NoError(t, err)

	// Later product edits must not affect the stored line.
	productRepo.products["p1"].Price = 9999
	assert.Equal(t, int64(900), order.Items[0].Price)
	assert.Equal(t, "Akira Tee", order.Items[0].Title)
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Items = []OrderItemInput{{ProductID: "p2", Size: "L", Quantity: 3}}

	_, err := uc.CreateOrder(context.Background(), "u1", input)

	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Contains(t, err.Error(), "Minimal Hoodie")
	assert.Empty(t, orderRepo.placed, "nothing should be written on a stock shortfall")
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Items = []OrderItemInput{{ProductID: "missing", Size: "M", Quantity: 1}}

	_, err := uc.CreateOrder(context.Background(), "u1", input)

	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Empty(t, orderRepo.placed)
}

func TestCreateOrderNamesUnknownProductByTitle(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Items = []OrderItemInput{{ProductID: "missing", Title: "Ghost Tee", Size: "M", Quantity: 1}}

	_, err := uc.CreateOrder(context.Background(), "u1", input)

	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Contains(t, err.Error(), "Ghost Tee")
}

func TestCreateOrderRejectsUnknownSize(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Items = []OrderItemInput{{ProductID: "p2", Size: "M", Quantity: 1}}

	_, err := uc.CreateOrder(context.Background(), "u1", input)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Items = nil

	_, err := uc.CreateOrder(context.Background(), "u1", input)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, orderRepo.placed)
}

func TestCreateOrderRejectsIncompleteShipping(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Shipping.City = ""

	_, err := uc.CreateOrder(context.Background(), "u1", input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	input := validOrderInput()
	input.Items[0].Quantity = 0

	_, err := uc.CreateOrder(context.Background(), "u1", input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateOrderSurvivesEmailFailure(t *testing.T) {
	uc, orderRepo, _, emailService := newOrderFixture()
	emailService.err = assert.AnError

	order, err := uc.CreateOrder(context.Background(), "u1", validOrderInput())

	assert.NoError(t, err, "a failed confirmation mail must not fail the order")
	assert.NotNil(t, order)
	assert.Len(t, orderRepo.placed, 1)
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	order, err := uc.CreateOrder(context.Background(), "u1", validOrderInput())
	assert.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)

	_, err = uc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusShipped)
	assert.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusDelivered)
	assert.NoError(t, err)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	order, err := uc.CreateOrder(context.Background(), "u1", validOrderInput())
	assert.NoError(t, err)

	// pending cannot jump straight to delivered
	_, err = uc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusDelivered)
	assert.True(t, errors.Is(err, "CONFLICT"))

	// and a delivered order is terminal
	for _, status := range []entity.OrderStatus{entity.OrderStatusConfirmed, entity.OrderStatusShipped, entity.OrderStatusDelivered} {
		_, err = uc.UpdateStatus(context.Background(), order.ID, status)
		assert.NoError(t, err)
	}
	_, err = uc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusCancelled)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), "order-1", entity.OrderStatus("returned"))
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetOrderEnforcesOwnership(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	order, err := uc.CreateOrder(context.Background(), "u1", validOrderInput())
	assert.NoError(t, err)

	_, err = uc.GetOrder(context.Background(), order.ID, "u1", entity.RoleUser)
	assert.NoError(t, err)

	_, err = uc.GetOrder(context.Background(), order.ID, "someone-else", entity.RoleUser)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.GetOrder(context.Background(), order.ID, "someone-else", entity.RoleAdmin)
	assert.NoError(t, err)
}
