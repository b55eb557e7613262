package model

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

// FavoriteRecipe is a collected recipe. Title, style and search keywords
// are denormalized out of the recipe payload for querying; the embedding
// orders similarity search on postgres and is ignored elsewhere.
type FavoriteRecipe struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Style          string          `gorm:"size:20" json:"style"`
	SearchKeywords string          `gorm:"size:255" json:"searchKeywords"`
	Recipe         JSONBRecipe     `gorm:"type:jsonb;not null" json:"recipe"`
	Embedding      pgvector.Vector `gorm:"type:vector(3)" json:"-"`
	CreatedAt      time.Time       `json:"createdAt"`
}
