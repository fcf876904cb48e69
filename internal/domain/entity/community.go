package entity

import (
	"time"
)

type CommunityPost struct {
	ID       string `json:"id" firestore:"id"`
	UserName string `json:"user_name" firestore:"userName"`
	ImageURL string `json:"image_url" firestore:"imageUrl"`
	Caption  string `json:"caption,omitempty" firestore:"caption,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
