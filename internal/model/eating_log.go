package model

import (
	"time"

	"github.com/google/uuid"
)

// Meal types for diary entries
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"
)

// ValidMealType reports whether t is one of the four diary meal slots
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealSnack, MealDinner:
		return true
	}
	return false
}

// EatingLog is one diary entry. Entries are immutable after creation and
// removed only by an explicit delete; the stored nutrition is already
// scaled by the consumption ratio the user reported.
type EatingLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Date      string         `gorm:"size:10;not null;index" json:"date"` // calendar day, YYYY-MM-DD
	Title     string         `gorm:"size:255;not null" json:"title"`
	MealType  string         `gorm:"size:20;not null" json:"mealType"`
	Rating    int            `gorm:"not null" json:"rating"` // 0..5
	Nutrition JSONBNutrition `gorm:"type:jsonb" json:"nutrition"`
	PhotoURL  string         `gorm:"size:512" json:"photoUrl,omitempty"`
	Note      string         `gorm:"type:text" json:"note"`
	CreatedAt time.Time      `json:"createdAt"`
}
