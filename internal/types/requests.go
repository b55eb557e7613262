package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ingredient-usage modes
const (
	ModeStrict   = "strict"
	ModeCreative = "creative"
	ModeShopping = "shopping"
)

// Supported response languages
const (
	LangChinese  = "zh"
	LangEnglish  = "en"
	LangJapanese = "ja"
	LangKorean   = "ko"
)

// AgeValue accepts the baby age as either a JSON number or a string, since
// clients send whichever their profile store happened to keep.
type AgeValue struct {
	Months int
	Set    bool
}

// UnmarshalJSON implements json.Unmarshaler
func (a *AgeValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		a.Months = int(num)
		a.Set = a.Months > 0
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		months, err := strconv.Atoi(str)
		if err != nil {
			// Free-form age text falls back to the generic toddler portion.
			return nil
		}
		a.Months = months
		a.Set = months > 0
		return nil
	}

	return fmt.Errorf("invalid age format")
}

// GenerateRecipeRequest is the body of POST /api/generate-recipe
type GenerateRecipeRequest struct {
	Ingredients string   `json:"ingredients"`
	Mode        string   `json:"mode"`
	Tool        string   `json:"tool"`
	Age         AgeValue `json:"age"`
	Language    string   `json:"language"`
}

// AnalyzeMealRequest is the body of POST /api/analyze-meal
type AnalyzeMealRequest struct {
	MealName string `json:"mealName"`
	Language string `json:"language"`
}

// MealQuery is the validated, immutable form of a generation or analysis
// request. It is built once per request and discarded with the response.
type MealQuery struct {
	Text      string // ingredient list or meal name
	Mode      string
	Tool      string
	AgeMonths int // 0 means unset
	Language  string
}

// NewMealQuery normalizes raw request fields into a MealQuery. Unknown
// modes collapse to strict and unknown languages to Chinese, matching how
// the clients behave.
func NewMealQuery(text, mode, tool string, age AgeValue, language string) MealQuery {
	q := MealQuery{
		Text:     strings.TrimSpace(text),
		Mode:     mode,
		Tool:     tool,
		Language: language,
	}

	switch q.Mode {
	case ModeStrict, ModeCreative, ModeShopping:
	default:
		q.Mode = ModeStrict
	}

	switch q.Language {
	case LangChinese, LangEnglish, LangJapanese, LangKorean:
	default:
		q.Language = LangChinese
	}

	if q.Tool == "" {
		q.Tool = "any"
	}

	if age.Set {
		q.AgeMonths = age.Months
	}

	return q
}

// CreateEatingLogRequest is the body of POST /api/diary
type CreateEatingLogRequest struct {
	Date      string          `json:"date" binding:"required"`
	Title     string          `json:"title" binding:"required"`
	MealType  string          `json:"mealType" binding:"required"`
	Rating    int             `json:"rating"`
	Nutrition json.RawMessage `json:"nutrition"`
	PhotoURL  string          `json:"photoUrl"`
	Note      string          `json:"note"`
}

// CreateBabyRequest is the body of POST /api/babies
type CreateBabyRequest struct {
	Email     string `json:"email" binding:"required"`
	Name      string `json:"name" binding:"required"`
	MonthsOld int    `json:"monthsOld" binding:"required"`
}

// SubscribeRequest is the body of POST /api/subscribe
type SubscribeRequest struct {
	Email string `json:"email"`
}
