package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeCompletion implements service.ICompletionClient with a fixed script
type fakeCompletion struct {
	reply string
	err   error
}

func (f *fakeCompletion) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.EatingLog{},
		&model.BabyProfile{},
		&model.FavoriteRecipe{},
		&model.Subscriber{},
	))
	return db
}

func newTestRouter(register func(*gin.RouterGroup)) *gin.Engine {
	router := gin.New()
	register(router.Group("/api"))
	return router
}

func generatorWith(client service.ICompletionClient) *service.GeneratorService {
	return service.NewGeneratorService(client, nil, false)
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
