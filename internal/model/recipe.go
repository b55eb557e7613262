package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Recipe styles, matching the labels the upstream is instructed to emit
// so real and fallback responses share one vocabulary. Exactly one recipe
// per style is expected from a successful generation, three in total.
const (
	StyleChinese  = "中式"
	StyleWestern  = "西式"
	StyleJapanese = "日式"
)

// Macros holds the three macronutrients. Values are strings carrying a
// unit suffix ("15g"), matching what the upstream model is instructed to
// produce; calories alone is a bare kcal number.
type Macros struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fat     string `json:"fat"`
}

// Micronutrients holds unit-suffixed micronutrient estimates ("120mg")
type Micronutrients struct {
	Calcium  string `json:"calcium"`
	Iron     string `json:"iron"`
	VitaminC string `json:"vitamin_c"`
}

// NutritionInfo is the nutrition estimate attached to a recipe or returned
// by meal analysis
type NutritionInfo struct {
	Calories       float64         `json:"calories"`
	Tags           []string        `json:"tags"`
	Benefit        string          `json:"benefit"`
	Macros         Macros          `json:"macros"`
	Micronutrients *Micronutrients `json:"micronutrients,omitempty"`
}

// IngredientItem is a single ingredient with its amount
type IngredientItem struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// AdultsMenuOption is one adult variant of a toddler dish
type AdultsMenuOption struct {
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Steps []string `json:"steps"`
}

// AdultsMenu pairs the two adult variants: parallel keeps the same
// ingredients with adult seasoning, remix upgrades the finished baby dish.
type AdultsMenu struct {
	Parallel AdultsMenuOption `json:"parallel"`
	Remix    AdultsMenuOption `json:"remix"`
}

// Recipe is a generated toddler recipe with its adult-meal variants
type Recipe struct {
	Style          string           `json:"style"`
	Title          string           `json:"title"`
	Ingredients    []IngredientItem `json:"ingredients"`
	Nutrition      NutritionInfo    `json:"nutrition"`
	ServingInfo    string           `json:"serving_info"`
	Steps          []string         `json:"steps"`
	Time           string           `json:"time"`
	AdultsMenu     AdultsMenu       `json:"adults_menu"`
	SearchKeywords string           `json:"searchKeywords"`
}

// RecipeResponse is the payload of a recipe generation, real or fallback
type RecipeResponse struct {
	Recipes []Recipe `json:"recipes"`
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBNutrition stores a NutritionInfo in a JSONB column
type JSONBNutrition NutritionInfo

// Value implements the driver.Valuer interface
func (n JSONBNutrition) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements the sql.Scanner interface
func (n *JSONBNutrition) Scan(value interface{}) error {
	if value == nil {
		*n = JSONBNutrition{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONBNutrition: %T", value)
	}

	return json.Unmarshal(bytes, n)
}

// JSONBRecipe stores a full Recipe in a JSONB column
type JSONBRecipe Recipe

// Value implements the driver.Valuer interface
func (r JSONBRecipe) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface
func (r *JSONBRecipe) Scan(value interface{}) error {
	if value == nil {
		*r = JSONBRecipe{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONBRecipe: %T", value)
	}

	return json.Unmarshal(bytes, r)
}
