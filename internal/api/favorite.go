package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/service"
)

// FavoriteHandler serves the recipe collection. Search orders by embedding
// distance on postgres and falls back to a LIKE filter elsewhere.
type FavoriteHandler struct {
	db *gorm.DB
}

func NewFavoriteHandler(db *gorm.DB) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.CreateFavorite)
		favorites.DELETE("/:id", h.DeleteFavorite)
	}
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	query := h.db.Session(&gorm.Session{})

	if search := c.Query("q"); search != "" {
		if h.db.Dialector.Name() == "postgres" {
			vec := service.GenerateEmbedding(search)
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		} else {
			like := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(search_keywords) LIKE ?", like, like)
		}
	} else {
		query = query.Order("created_at DESC")
	}

	if style := c.Query("style"); style != "" {
		query = query.Where("style = ?", style)
	}

	var favorites []model.FavoriteRecipe
	if err := query.Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *FavoriteHandler) CreateFavorite(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if recipe.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe title is required"})
		return
	}

	fav := model.FavoriteRecipe{
		ID:             uuid.New(),
		Title:          recipe.Title,
		Style:          recipe.Style,
		SearchKeywords: recipe.SearchKeywords,
		Recipe:         model.JSONBRecipe(recipe),
		Embedding:      service.GenerateEmbedding(recipe.Title + " " + recipe.SearchKeywords),
		CreatedAt:      time.Now(),
	}

	if err := h.db.Create(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

func (h *FavoriteHandler) DeleteFavorite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return
	}

	if err := h.db.Delete(&model.FavoriteRecipe{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
