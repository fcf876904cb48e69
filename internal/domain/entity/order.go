package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// allowedTransitions is the order lifecycle: pending -> confirmed -> shipped
// -> delivered, with cancellation reachable from pending or confirmed.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is on the allow-list.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a snapshot of one line at purchase time, independent of later
// product mutation.
type OrderItem struct {
	ProductID string `json:"product_id" firestore:"productId"`
	Title     string `json:"title" firestore:"title"`
	Size      string `json:"size" firestore:"size"`
	Quantity  int    `json:"quantity" firestore:"quantity"`
	Price     int64  `json:"price" firestore:"price"`
}

type ShippingInfo struct {
	Name    string `json:"name" firestore:"name"`
	Phone   string `json:"phone" firestore:"phone"`
	Address string `json:"address" firestore:"address"`
	City    string `json:"city" firestore:"city"`
	Notes   string `json:"notes,omitempty" firestore:"notes,omitempty"`
}

// PaymentMethodCOD is the shop's only payment method.
const PaymentMethodCOD = "COD"

type Order struct {
	ID             string       `json:"id" firestore:"id"`
	UserID         string       `json:"user_id" firestore:"userId"`
	Items          []OrderItem  `json:"items" firestore:"items"`
	Subtotal       int64        `json:"subtotal" firestore:"subtotal"`
	DeliveryCharge int64        `json:"delivery_charge" firestore:"deliveryCharge"`
	TotalAmount    int64        `json:"total_amount" firestore:"totalAmount"`
	Status         OrderStatus  `json:"status" firestore:"status"`
	Shipping       ShippingInfo `json:"shipping" firestore:"shipping"`
	PaymentMethod  string       `json:"payment_method" firestore:"paymentMethod"`
	Notes          string       `json:"notes,omitempty" firestore:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
