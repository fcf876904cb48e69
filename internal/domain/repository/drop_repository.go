package repository

import (
	"context"

	"dropfit/internal/domain/entity"
)

type DropRepository interface {
	Create(ctx context.Context, drop *entity.Drop) error
	GetByID(ctx context.Context, id string) (*entity.Drop, error)
	List(ctx context.Context, status entity.DropStatus, limit int) ([]*entity.Drop, error)
	Update(ctx context.Context, drop *entity.Drop) error
}
