package repository

import (
	"context"

	"dropfit/internal/domain/entity"
)

type NotifyRepository interface {
	Add(ctx context.Context, entry *entity.NotifyEntry) error
	List(ctx context.Context) ([]*entity.NotifyEntry, error)
	ListEmails(ctx context.Context) ([]string, error)
}
