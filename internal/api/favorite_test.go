package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/tinybites/backend/internal/model"
)

func favoriteRouter(t *testing.T) *gin.Engine {
	handler := NewFavoriteHandler(newTestDB(t))
	return newTestRouter(handler.RegisterRoutes)
}

func sampleRecipe(title, style, keywords string) map[string]interface{} {
	return map[string]interface{}{
		"style":       style,
		"title":       title,
		"ingredients": []map[string]string{{"name": "南瓜", "amount": "100g"}},
		"nutrition": map[string]interface{}{
			"calories": 200,
			"macros":   map[string]string{"protein": "15g", "carbs": "30g", "fat": "8g"},
		},
		"serving_info": "約 1 碗",
		"steps":        []string{"切塊", "蒸熟"},
		"time":         "40 分鐘",
		"adults_menu": map[string]interface{}{
			"parallel": map[string]interface{}{"title": "大人版", "desc": "d", "steps": []string{"s"}},
			"remix":    map[string]interface{}{"title": "加工版", "desc": "d", "steps": []string{"s"}},
		},
		"searchKeywords": keywords,
	}
}

func TestFavoriteCreateAndList(t *testing.T) {
	router := favoriteRouter(t)

	w := doJSON(router, "POST", "/api/favorites", sampleRecipe("南瓜雞肉粥", model.StyleJapanese, "南瓜 粥"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.FavoriteRecipe
	decodeBody(t, w, &created)
	assert.Equal(t, "南瓜雞肉粥", created.Title)
	assert.Equal(t, model.StyleJapanese, created.Style)

	w = doJSON(router, "GET", "/api/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Favorites []model.FavoriteRecipe `json:"favorites"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, "南瓜雞肉粥", resp.Favorites[0].Recipe.Title)
}

func TestFavoriteCreateRequiresTitle(t *testing.T) {
	router := favoriteRouter(t)
	w := doJSON(router, "POST", "/api/favorites", map[string]interface{}{"style": model.StyleChinese})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoriteSearchAndStyleFilter(t *testing.T) {
	router := favoriteRouter(t)

	for _, r := range []map[string]interface{}{
		sampleRecipe("pumpkin porridge", model.StyleJapanese, "pumpkin congee"),
		sampleRecipe("veggie frittata", model.StyleWestern, "egg frittata"),
	} {
		w := doJSON(router, "POST", "/api/favorites", r)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Substring search (sqlite path)
	w := doJSON(router, "GET", "/api/favorites?q=pumpkin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Favorites []model.FavoriteRecipe `json:"favorites"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, "pumpkin porridge", resp.Favorites[0].Title)

	// Style filter
	w = doJSON(router, "GET", "/api/favorites?style="+url.QueryEscape(model.StyleWestern), nil)
	decodeBody(t, w, &resp)
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, "veggie frittata", resp.Favorites[0].Title)
}

func TestFavoriteDelete(t *testing.T) {
	router := favoriteRouter(t)

	w := doJSON(router, "POST", "/api/favorites", sampleRecipe("清炒時蔬", model.StyleChinese, "時蔬"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.FavoriteRecipe
	decodeBody(t, w, &created)

	w = doJSON(router, "DELETE", "/api/favorites/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/favorites", nil)
	var resp struct {
		Favorites []model.FavoriteRecipe `json:"favorites"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Favorites)

	w = doJSON(router, "DELETE", "/api/favorites/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
