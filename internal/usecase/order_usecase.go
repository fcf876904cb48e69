package usecase

import (
	"context"
	"encoding/json"
	"time"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/internal/domain/service"
	"dropfit/internal/infrastructure/websocket"
	"dropfit/pkg/errors"
	"dropfit/pkg/logger"
)

type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	settingsUc   *SettingsUseCase
	emailService service.EmailService
	wsManager    *websocket.Manager
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	settingsUc *SettingsUseCase,
	emailService service.EmailService,
	wsManager *websocket.Manager,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		settingsUc:   settingsUc,
		emailService: emailService,
		wsManager:    wsManager,
	}
}

type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Title     string `json:"title"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// displayName is what error messages call the item. The client sends the
// title it showed the shopper; the ID is the fallback.
func (i OrderItemInput) displayName() string {
	if i.Title != "" {
		return i.Title
	}
	return i.ProductID
}

type ShippingInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Notes   string `json:"notes"`
}

type CreateOrderInput struct {
	Items    []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Shipping ShippingInput    `json:"shipping" validate:"required"`
	Notes    string           `json:"notes"`
}

// CreateOrder places a cash-on-delivery order. Every price comes from the
// product documents, never from the client, and the order insert plus stock
// decrements happen in one transaction so an out-of-stock item fails the
// whole placement.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}
	if input.Shipping.Name == "" || input.Shipping.Phone == "" ||
		input.Shipping.Address == "" || input.Shipping.City == "" {
		return nil, errors.BadRequest("Shipping name, phone, address and city are required", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	var subtotal int64

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, errors.BadRequest("Quantity must be at least 1", nil)
		}

		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return nil, errors.NotFound("Product "+item.displayName(), err)
			}
			return nil, err
		}

		if !offersSize(product, item.Size) {
			return nil, errors.BadRequest("Size "+item.Size+" is not available for "+product.Title, nil)
		}

		if product.Stock < item.Quantity {
			return nil, errors.Conflict("Insufficient stock for " + product.Title)
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		subtotal += product.Price * int64(item.Quantity)
	}

	settings, err := uc.settingsUc.GetDelivery(ctx)
	if err != nil {
		return nil, err
	}

	deliveryCharge := DeliveryCharge(subtotal, input.Shipping.City, settings)

	now := time.Now()
	order := &entity.Order{
		UserID:         userID,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryCharge: deliveryCharge,
		TotalAmount:    subtotal + deliveryCharge,
		Status:         entity.OrderStatusPending,
		Shipping: entity.ShippingInfo{
			Name:    input.Shipping.Name,
			Phone:   input.Shipping.Phone,
			Address: input.Shipping.Address,
			City:    input.Shipping.City,
			Notes:   input.Shipping.Notes,
		},
		PaymentMethod: entity.PaymentMethodCOD,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.orderRepo.PlaceOrder(ctx, order); err != nil {
		return nil, err
	}

	// Confirmation mail is best-effort; the order already exists.
	if err := uc.emailService.SendOrderConfirmation(ctx, user.Email, order); err != nil {
		logger.Warn("Failed to send order confirmation for %s: %v", order.ID, err)
	}

	uc.publish("order.created", order)

	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id, callerID, callerRole string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != callerID && callerRole != entity.RoleAdmin {
		return nil, errors.Forbidden("You don't have access to this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error) {
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, 0, errors.BadRequest("Invalid order status filter", nil)
	}
	return uc.orderRepo.List(ctx, status, limit, offset)
}

// UpdateStatus moves an order along its lifecycle. Transitions outside the
// allow-list are rejected so a delivered order can never be cancelled.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, next entity.OrderStatus) (*entity.Order, error) {
	if !next.Valid() {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, errors.Conflict("Cannot change order status from " + string(order.Status) + " to " + string(next))
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	order.Status = next
	order.UpdatedAt = time.Now()

	uc.notifyUser(order.UserID, "order.status", order)

	return order, nil
}

func offersSize(product *entity.Product, size string) bool {
	for _, s := range product.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type realtimeEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// publish broadcasts an event to every connected client (the admin dashboard
// listens for order.created).
func (uc *OrderUseCase) publish(eventType string, data interface{}) {
	if uc.wsManager == nil {
		return
	}

	payload, err := json.Marshal(realtimeEvent{Type: eventType, Data: data})
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", eventType, err)
		return
	}

	uc.wsManager.Broadcast(payload)
}

func (uc *OrderUseCase) notifyUser(userID, eventType string, data interface{}) {
	if uc.wsManager == nil {
		return
	}

	payload, err := json.Marshal(realtimeEvent{Type: eventType, Data: data})
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", eventType, err)
		return
	}

	uc.wsManager.SendToUser(userID, payload)
}
