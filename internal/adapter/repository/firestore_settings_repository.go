package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/pkg/errors"
)

const (
	settingsCollection  = "settings"
	deliverySettingsDoc = "delivery_settings"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

// GetDelivery reads the singleton settings document, falling back to the
// hard-coded defaults when it has never been written.
func (r *firestoreSettingsRepository) GetDelivery(ctx context.Context) (entity.DeliverySettings, error) {
	doc, err := r.client.Collection(settingsCollection).Doc(deliverySettingsDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entity.DefaultDeliverySettings(), nil
		}
		return entity.DeliverySettings{}, errors.Internal("Failed to get delivery settings", err)
	}

	var settings entity.DeliverySettings
	if err := doc.DataTo(&settings); err != nil {
		return entity.DeliverySettings{}, errors.Internal("Failed to parse delivery settings", err)
	}

	return settings, nil
}

func (r *firestoreSettingsRepository) UpdateDelivery(ctx context.Context, settings entity.DeliverySettings) error {
	// Set acts as an upsert, so the first update also creates the document.
	_, err := r.client.Collection(settingsCollection).Doc(deliverySettingsDoc).Set(ctx, settings)
	if err != nil {
		return errors.Internal("Failed to update delivery settings", err)
	}

	return nil
}
