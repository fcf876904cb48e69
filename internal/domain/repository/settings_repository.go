package repository

import (
	"context"

	"dropfit/internal/domain/entity"
)

type SettingsRepository interface {
	// GetDelivery returns the singleton delivery settings document, or the
	// hard-coded defaults when it does not exist.
	GetDelivery(ctx context.Context) (entity.DeliverySettings, error)
	// UpdateDelivery upserts the singleton document.
	UpdateDelivery(ctx context.Context, settings entity.DeliverySettings) error
}
