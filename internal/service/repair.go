package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pageza/tinybites/backend/internal/model"
)

// ExtractJSONObject returns the substring spanning the first "{" through
// the last "}" of raw. Upstream models occasionally wrap their JSON in
// prose or code fences; this single repair pass strips that.
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// decodeWithRepair parses raw into v, retrying once on the extracted
// object substring before giving up.
func decodeWithRepair(raw string, v interface{}) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	repaired, ok := ExtractJSONObject(raw)
	if !ok {
		return fmt.Errorf("no JSON object found in completion")
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("failed to parse repaired completion: %w", err)
	}
	return nil
}

// ParseRecipeResponse parses and validates a raw completion as a
// RecipeResponse. Partial structures are rejected outright: a response
// either satisfies every required field or the caller falls back.
func ParseRecipeResponse(raw string) (*model.RecipeResponse, error) {
	var resp model.RecipeResponse
	if err := decodeWithRepair(raw, &resp); err != nil {
		return nil, err
	}

	if len(resp.Recipes) == 0 {
		return nil, fmt.Errorf("completion missing recipes array")
	}
	for i, r := range resp.Recipes {
		if r.Title == "" || len(r.Ingredients) == 0 || len(r.Steps) == 0 {
			return nil, fmt.Errorf("recipe %d is incomplete", i)
		}
		if r.AdultsMenu.Parallel.Title == "" || r.AdultsMenu.Remix.Title == "" {
			return nil, fmt.Errorf("recipe %d missing adults_menu variants", i)
		}
	}

	return &resp, nil
}

// ParseNutritionInfo parses and validates a raw completion as a
// NutritionInfo. Calories and macros are required; anything less routes
// the caller to the fallback generator.
func ParseNutritionInfo(raw string) (*model.NutritionInfo, error) {
	var info model.NutritionInfo
	if err := decodeWithRepair(raw, &info); err != nil {
		return nil, err
	}

	if info.Calories == 0 {
		return nil, fmt.Errorf("completion missing calories")
	}
	if info.Macros.Protein == "" || info.Macros.Carbs == "" || info.Macros.Fat == "" {
		return nil, fmt.Errorf("completion missing macros")
	}

	return &info, nil
}
