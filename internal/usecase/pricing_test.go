package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dropfit/internal/domain/entity"
)

func TestDeliveryCharge(t *testing.T) {
	settings := entity.DefaultDeliverySettings()

	tests := []struct {
		name     string
		subtotal int64
		city     string
		want     int64
	}{
		{"base charge below threshold", 1500, "Dhaka", 60},
		{"free at threshold", 2000, "Dhaka", 0},
		{"free above threshold", 2500, "Dhaka", 0},
		{"remote surcharge", 1500, "Sylhet", 100},
		{"remote matched as substring", 1500, "Sylhet Sadar", 100},
		{"remote matched case-insensitively", 1500, "CHITTAGONG", 100},
		{"remote city still free at threshold", 2000, "Sylhet", 0},
		{"empty city gets base charge", 1500, "", 60},
		{"unknown city gets base charge", 1999, "Gazipur", 60},
		{"zero subtotal", 0, "Dhaka", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryCharge(tt.subtotal, tt.city, settings))
		})
	}
}

func TestDeliveryChargeSingleSurcharge(t *testing.T) {
	// A city matching two remote fragments is only surcharged once.
	settings := entity.DeliverySettings{
		BaseCharge:            60,
		FreeDeliveryThreshold: 2000,
		RemoteAreaCharge:      40,
		RemoteAreas:           []string{"sylhet", "sadar"},
	}

	assert.Equal(t, int64(100), DeliveryCharge(1000, "Sylhet Sadar", settings))
}

func TestOrderTotal(t *testing.T) {
	settings := entity.DefaultDeliverySettings()

	assert.Equal(t, int64(1600), OrderTotal(1500, "Sylhet Sadar", settings))
	assert.Equal(t, int64(2000), OrderTotal(2000, "Sylhet", settings))
	assert.Equal(t, int64(1560), OrderTotal(1500, "Dhaka", settings))
}
