package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/tinybites/backend/internal/model"
)

func nutritionRouter(client *fakeCompletion) *gin.Engine {
	handler := NewNutritionHandler(generatorWith(client))
	return newTestRouter(handler.RegisterRoutes)
}

func TestAnalyzeMealMissingName(t *testing.T) {
	router := nutritionRouter(&fakeCompletion{})

	for _, body := range []map[string]interface{}{
		{},
		{"mealName": ""},
		{"mealName": "  "},
	} {
		w := doJSON(router, "POST", "/api/analyze-meal", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, "請提供有效的菜名", resp.Error)
	}
}

func TestAnalyzeMealUpstreamFailureServesTemplate(t *testing.T) {
	router := nutritionRouter(&fakeCompletion{err: errors.New("upstream down")})

	w := doJSON(router, "POST", "/api/analyze-meal", map[string]interface{}{
		"mealName": "雞蛋",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Nutrition model.NutritionInfo `json:"nutrition"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, float64(180), resp.Nutrition.Calories)
	assert.NotEmpty(t, resp.Nutrition.Macros.Protein)
	assert.NotEmpty(t, resp.Nutrition.Benefit)
}

func TestAnalyzeMealUpstreamSuccess(t *testing.T) {
	router := nutritionRouter(&fakeCompletion{
		reply: `{"calories": 320, "tags": ["高蛋白"], "benefit": "很好", "macros": {"protein": "20g", "carbs": "25g", "fat": "12g"}}`,
	})

	w := doJSON(router, "POST", "/api/analyze-meal", map[string]interface{}{
		"mealName": "親子丼",
		"language": "ja",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Nutrition model.NutritionInfo `json:"nutrition"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, float64(320), resp.Nutrition.Calories)
}
