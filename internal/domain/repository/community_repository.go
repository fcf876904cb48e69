package repository

import (
	"context"

	"dropfit/internal/domain/entity"
)

type CommunityRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	List(ctx context.Context, limit int) ([]*entity.CommunityPost, error)
}
