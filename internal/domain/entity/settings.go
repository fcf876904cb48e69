package entity

// DeliverySettings is the singleton delivery pricing configuration. RemoteAreas
// are name fragments matched case-insensitively as substrings of the shipping
// city.
type DeliverySettings struct {
	BaseCharge            int64    `json:"base_charge" firestore:"baseCharge"`
	FreeDeliveryThreshold int64    `json:"free_delivery_threshold" firestore:"freeDeliveryThreshold"`
	RemoteAreaCharge      int64    `json:"remote_area_charge" firestore:"remoteAreaCharge"`
	RemoteAreas           []string `json:"remote_areas" firestore:"remoteAreas"`
}

// DefaultDeliverySettings is used whenever the settings document is absent.
func DefaultDeliverySettings() DeliverySettings {
	return DeliverySettings{
		BaseCharge:            60,
		FreeDeliveryThreshold: 2000,
		RemoteAreaCharge:      40,
		RemoteAreas: []string{
			"sylhet", "chittagong", "khulna", "rajshahi",
			"rangpur", "barisal", "mymensingh",
		},
	}
}
