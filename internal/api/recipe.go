package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/service"
	"github.com/pageza/tinybites/backend/internal/types"
)

// RecipeHandler serves recipe generation. The endpoint never surfaces
// upstream failures: a missing ingredient list is the only 400, a denied
// ingredient travels in a 200 body, and everything else returns recipes.
type RecipeHandler struct {
	generator service.IGeneratorService
}

func NewRecipeHandler(generator service.IGeneratorService) *RecipeHandler {
	return &RecipeHandler{generator: generator}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-recipe", h.GenerateRecipe)
}

func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "請提供食材資訊",
			"recipes": []model.Recipe{},
		})
		return
	}

	q := types.NewMealQuery(req.Ingredients, req.Mode, req.Tool, req.Age, req.Language)

	resp, err := h.generator.GenerateRecipes(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "請提供食材資訊",
				"recipes": []model.Recipe{},
			})
		case errors.Is(err, service.ErrInvalidIngredient):
			// Deliberately a 200: the client renders this as a playful
			// in-page message, not a failure state.
			c.JSON(http.StatusOK, gin.H{
				"error":   "這好像不能吃喔，請輸入真正的食材。",
				"recipes": []model.Recipe{},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
