package usecase

import (
	"context"
	"sync"
	"time"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
)

// SettingsUseCase serves delivery settings from a time-boxed cache so hot
// paths (pricing on every placement) don't re-read the singleton document.
// The cache is owned here, not process-global, and is dropped on update.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	ttl          time.Duration

	mu        sync.Mutex
	cached    *entity.DeliverySettings
	fetchedAt time.Time
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, ttl time.Duration) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		ttl:          ttl,
	}
}

func (uc *SettingsUseCase) GetDelivery(ctx context.Context) (entity.DeliverySettings, error) {
	uc.mu.Lock()
	if uc.cached != nil && time.Since(uc.fetchedAt) < uc.ttl {
		settings := *uc.cached
		uc.mu.Unlock()
		return settings, nil
	}
	uc.mu.Unlock()

	settings, err := uc.settingsRepo.GetDelivery(ctx)
	if err != nil {
		return entity.DeliverySettings{}, err
	}

	uc.mu.Lock()
	uc.cached = &settings
	uc.fetchedAt = time.Now()
	uc.mu.Unlock()

	return settings, nil
}

func (uc *SettingsUseCase) UpdateDelivery(ctx context.Context, settings entity.DeliverySettings) error {
	if err := uc.settingsRepo.UpdateDelivery(ctx, settings); err != nil {
		return err
	}

	uc.Invalidate()
	return nil
}

func (uc *SettingsUseCase) Invalidate() {
	uc.mu.Lock()
	uc.cached = nil
	uc.mu.Unlock()
}
