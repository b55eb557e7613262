package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/tinybites/backend/internal/service"
	"github.com/pageza/tinybites/backend/internal/types"
)

// NutritionHandler serves nutrition analysis for a named meal
type NutritionHandler struct {
	generator service.IGeneratorService
}

func NewNutritionHandler(generator service.IGeneratorService) *NutritionHandler {
	return &NutritionHandler{generator: generator}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analyze-meal", h.AnalyzeMeal)
}

func (h *NutritionHandler) AnalyzeMeal(c *gin.Context) {
	var req types.AnalyzeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請提供有效的菜名"})
		return
	}

	q := types.NewMealQuery(req.MealName, "", "", types.AgeValue{}, req.Language)

	info, err := h.generator.AnalyzeMeal(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "請提供有效的菜名"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"nutrition": info})
}
