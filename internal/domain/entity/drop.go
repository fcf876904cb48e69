package entity

import (
	"time"
)

type DropStatus string

const (
	DropStatusActive   DropStatus = "active"
	DropStatusUpcoming DropStatus = "upcoming"
	DropStatusEnded    DropStatus = "ended"
)

func (s DropStatus) Valid() bool {
	switch s {
	case DropStatusActive, DropStatusUpcoming, DropStatusEnded:
		return true
	}
	return false
}

// Drop is a time-boxed, non-restocked limited release. Purely informational,
// it drives the storefront countdown.
type Drop struct {
	ID          string     `json:"id" firestore:"id"`
	Name        string     `json:"name" firestore:"name"`
	Description string     `json:"description" firestore:"description"`
	LaunchDate  time.Time  `json:"launch_date" firestore:"launchDate"`
	ImageURL    string     `json:"image_url" firestore:"imageUrl"`
	Status      DropStatus `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
