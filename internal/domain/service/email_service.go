package service

import (
	"context"

	"dropfit/internal/domain/entity"
)

// EmailService sends transactional mail. Every send is best-effort: callers
// log failures and never fail the triggering operation on them.
type EmailService interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendOrderConfirmation(ctx context.Context, to string, order *entity.Order) error
	SendDropAnnouncement(ctx context.Context, recipients []string, drop *entity.Drop) error
}
