package entity

import (
	"time"
)

// NotifyEntry is one subscriber on the drop notification list.
type NotifyEntry struct {
	ID    string `json:"id" firestore:"id"`
	Email string `json:"email" firestore:"email"`
	Name  string `json:"name,omitempty" firestore:"name,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
