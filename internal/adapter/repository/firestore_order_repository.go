package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/pkg/errors"
)

const ordersCollection = "orders"

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

// PlaceOrder writes the order and decrements every product's stock inside one
// Firestore transaction. Stock is re-read in the transaction, so two
// concurrent placements against the same product cannot both pass the check.
func (r *firestoreOrderRepository) PlaceOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection(ordersCollection).NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// All reads must happen before any write.
		stocks := make(map[string]int, len(order.Items))
		for _, item := range order.Items {
			ref := r.client.Collection(productsCollection).Doc(item.ProductID)
			doc, err := tx.Get(ref)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					return errors.NotFound(fmt.Sprintf("Product %s", item.Title), err)
				}
				return errors.Internal("Failed to read product", err)
			}

			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				return errors.Internal("Failed to parse product data", err)
			}

			if product.Stock < item.Quantity {
				return errors.Conflict(fmt.Sprintf("Insufficient stock for %s", product.Title))
			}
			stocks[item.ProductID] = product.Stock
		}

		if err := tx.Set(r.client.Collection(ordersCollection).Doc(order.ID), order); err != nil {
			return errors.Internal("Failed to create order", err)
		}

		for _, item := range order.Items {
			ref := r.client.Collection(productsCollection).Doc(item.ProductID)
			err := tx.Update(ref, []firestore.Update{
				{Path: "stock", Value: stocks[item.ProductID] - item.Quantity},
				{Path: "updatedAt", Value: now},
			})
			if err != nil {
				return errors.Internal("Failed to decrement stock", err)
			}
		}

		return nil
	})
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return err
		}
		return errors.Internal("Order placement failed", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection(ordersCollection).Query.
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreOrderRepository) List(ctx context.Context, statusFilter string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection(ordersCollection).Query

	if statusFilter != "" {
		query = query.Where("status", "==", statusFilter)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreOrderRepository) collect(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Order, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id string, orderStatus entity.OrderStatus) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(orderStatus)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to update order status", err)
	}

	return nil
}
