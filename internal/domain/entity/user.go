package entity

import (
	"time"
)

type User struct {
	ID         string `json:"id" firestore:"id"`
	Name       string `json:"name" firestore:"name"`
	Email      string `json:"email" firestore:"email"`
	Phone      string `json:"phone" firestore:"phone"`
	Address    string `json:"address,omitempty" firestore:"address,omitempty"`
	City       string `json:"city,omitempty" firestore:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty" firestore:"postalCode,omitempty"`
	Role       string `json:"role" firestore:"role"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
