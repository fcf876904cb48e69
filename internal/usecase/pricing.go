package usecase

import (
	"strings"

	"dropfit/internal/domain/entity"
)

// DeliveryCharge computes the charge to add to a subtotal. Orders at or above
// the free-delivery threshold ship free regardless of destination. Below it,
// the base charge applies, plus the remote-area surcharge when the city
// contains any configured remote-area fragment (case-insensitive substring
// match, so "North Chittagong" is remote).
func DeliveryCharge(subtotal int64, city string, settings entity.DeliverySettings) int64 {
	if subtotal >= settings.FreeDeliveryThreshold {
		return 0
	}

	charge := settings.BaseCharge

	if city != "" {
		lowered := strings.ToLower(city)
		for _, area := range settings.RemoteAreas {
			if strings.Contains(lowered, strings.ToLower(area)) {
				charge += settings.RemoteAreaCharge
				break
			}
		}
	}

	return charge
}

// OrderTotal is the subtotal plus its delivery charge.
func OrderTotal(subtotal int64, city string, settings entity.DeliverySettings) int64 {
	return subtotal + DeliveryCharge(subtotal, city, settings)
}
