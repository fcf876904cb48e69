package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dropfit/internal/domain/entity"
)

func TestSettingsCachedWithinTTL(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entity.DefaultDeliverySettings()}
	uc := NewSettingsUseCase(repo, time.Hour)

	for i := 0; i < 5; i++ {
		settings, err := uc.GetDelivery(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(60), settings.BaseCharge)
	}

	assert.Equal(t, 1, repo.calls)
}

func TestSettingsZeroTTLAlwaysRefetches(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entity.DefaultDeliverySettings()}
	uc := NewSettingsUseCase(repo, 0)

	uc.GetDelivery(context.Background())
	uc.GetDelivery(context.Background())

	assert.Equal(t, 2, repo.calls)
}

func TestUpdateDeliveryInvalidatesCache(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entity.DefaultDeliverySettings()}
	uc := NewSettingsUseCase(repo, time.Hour)

	settings, err := uc.GetDelivery(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(60), settings.BaseCharge)

	settings.BaseCharge = 80
	assert.NoError(t, uc.UpdateDelivery(context.Background(), settings))

	fresh, err := uc.GetDelivery(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(80), fresh.BaseCharge, "the stale cached value must not survive an update")
	assert.Equal(t, 2, repo.calls)
}
