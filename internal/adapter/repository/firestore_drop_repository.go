package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/pkg/errors"
)

const dropsCollection = "drops"

type firestoreDropRepository struct {
	client *firestore.Client
}

func NewFirestoreDropRepository(client *firestore.Client) repository.DropRepository {
	return &firestoreDropRepository{
		client: client,
	}
}

func (r *firestoreDropRepository) Create(ctx context.Context, drop *entity.Drop) error {
	if drop.ID == "" {
		doc := r.client.Collection(dropsCollection).NewDoc()
		drop.ID = doc.ID
	}

	now := time.Now()
	if drop.CreatedAt.IsZero() {
		drop.CreatedAt = now
	}
	drop.UpdatedAt = now

	_, err := r.client.Collection(dropsCollection).Doc(drop.ID).Set(ctx, drop)
	if err != nil {
		return errors.Internal("Failed to create drop", err)
	}

	return nil
}

func (r *firestoreDropRepository) GetByID(ctx context.Context, id string) (*entity.Drop, error) {
	doc, err := r.client.Collection(dropsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Drop", err)
		}
		return nil, errors.Internal("Failed to get drop", err)
	}

	var drop entity.Drop
	if err := doc.DataTo(&drop); err != nil {
		return nil, errors.Internal("Failed to parse drop data", err)
	}

	return &drop, nil
}

// List returns drops newest-launch first, except upcoming drops which are
// sorted soonest first for the countdown.
func (r *firestoreDropRepository) List(ctx context.Context, dropStatus entity.DropStatus, limit int) ([]*entity.Drop, error) {
	query := r.client.Collection(dropsCollection).Query

	order := firestore.Desc
	if dropStatus != "" {
		query = query.Where("status", "==", string(dropStatus))
		if dropStatus == entity.DropStatusUpcoming {
			order = firestore.Asc
		}
	}

	query = query.OrderBy("launchDate", order)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var drops []*entity.Drop

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate drops", err)
		}
		var drop entity.Drop
		if err := doc.DataTo(&drop); err != nil {
			return nil, errors.Internal("Failed to parse drop data", err)
		}
		drops = append(drops, &drop)
	}

	return drops, nil
}

func (r *firestoreDropRepository) Update(ctx context.Context, drop *entity.Drop) error {
	drop.UpdatedAt = time.Now()

	_, err := r.client.Collection(dropsCollection).Doc(drop.ID).Set(ctx, drop)
	if err != nil {
		return errors.Internal("Failed to update drop", err)
	}

	return nil
}
