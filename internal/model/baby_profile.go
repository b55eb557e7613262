package model

import (
	"time"

	"github.com/google/uuid"
)

// BabyProfile is a child entry owned by a household, keyed by the plain
// email entered during onboarding. Deleting a profile does not cascade to
// the diary; eating logs have no referential tie to profiles.
type BabyProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	MonthsOld int       `gorm:"not null" json:"monthsOld"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
