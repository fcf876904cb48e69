package repository

import (
	"context"

	"dropfit/internal/domain/entity"
)

type OrderRepository interface {
	// PlaceOrder persists the order and decrements the stock of every ordered
	// product in a single transaction. Stock is re-read inside the transaction;
	// a shortfall fails the whole placement with a conflict and nothing is
	// written.
	PlaceOrder(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
