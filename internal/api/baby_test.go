package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/tinybites/backend/internal/model"
)

func babyRouter(t *testing.T) *gin.Engine {
	handler := NewBabyHandler(newTestDB(t))
	return newTestRouter(handler.RegisterRoutes)
}

func TestBabyCreateAndListByEmail(t *testing.T) {
	router := babyRouter(t)

	w := doJSON(router, "POST", "/api/babies", map[string]interface{}{
		"email":     "Parent@Example.com",
		"name":      "小寶",
		"monthsOld": 18,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.BabyProfile
	decodeBody(t, w, &created)
	assert.Equal(t, "parent@example.com", created.Email, "email is normalized")
	assert.Equal(t, 18, created.MonthsOld)

	// Lookup is case-insensitive through the same normalization
	w = doJSON(router, "GET", "/api/babies?email=PARENT@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Babies []model.BabyProfile `json:"babies"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Babies, 1)
	assert.Equal(t, "小寶", resp.Babies[0].Name)

	// A different email sees nothing
	w = doJSON(router, "GET", "/api/babies?email=other@example.com", nil)
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Babies)
}

func TestBabyListRequiresEmail(t *testing.T) {
	router := babyRouter(t)
	w := doJSON(router, "GET", "/api/babies", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBabyCreateValidation(t *testing.T) {
	router := babyRouter(t)

	tests := []map[string]interface{}{
		{"name": "小寶", "monthsOld": 18},                             // missing email
		{"email": "a@b.com", "monthsOld": 18},                       // missing name
		{"email": "a@b.com", "name": "小寶"},                          // missing months
		{"email": "a@b.com", "name": "小寶", "monthsOld": -2},         // negative months
	}

	for _, body := range tests {
		w := doJSON(router, "POST", "/api/babies", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%v", body)
	}
}

func TestBabyDelete(t *testing.T) {
	router := babyRouter(t)

	w := doJSON(router, "POST", "/api/babies", map[string]interface{}{
		"email": "a@b.com", "name": "小寶", "monthsOld": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.BabyProfile
	decodeBody(t, w, &created)

	w = doJSON(router, "DELETE", "/api/babies/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/babies?email=a@b.com", nil)
	var resp struct {
		Babies []model.BabyProfile `json:"babies"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Babies)

	w = doJSON(router, "DELETE", "/api/babies/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
