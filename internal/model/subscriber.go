package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter signup
type Subscriber struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
