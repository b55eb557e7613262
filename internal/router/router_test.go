package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pageza/tinybites/backend/config"
	"github.com/pageza/tinybites/backend/internal/database"
	"github.com/pageza/tinybites/backend/internal/model"
)

func setupTestRouter(t *testing.T) http.Handler {
	t.Setenv("ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		OpenAIAPIURL: "http://unused.invalid",
		OpenAIModel:  "gpt-4o-mini",
		UseMockData:  true,
	}

	return SetupRouter(db, nil, cfg, nil)
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

// End-to-end smoke over the full route tree: mock mode, no Redis, no S3.
func TestGenerateRecipeThroughRouter(t *testing.T) {
	router := setupTestRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"ingredients": "高麗菜、紅蘿蔔",
		"mode":        "strict",
		"age":         18,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/generate-recipe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 3)
	assert.Equal(t, float64(120), resp.Recipes[0].Nutrition.Calories)
}

func TestAnalyzeMealThroughRouter(t *testing.T) {
	router := setupTestRouter(t)

	body, _ := json.Marshal(map[string]string{"mealName": "南瓜雞肉粥"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/analyze-meal", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Nutrition model.NutritionInfo `json:"nutrition"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(250), resp.Nutrition.Calories)
}

func TestUnknownRouteIs404(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
