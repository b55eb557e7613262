package api

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/types"
)

// SubscribeHandler records newsletter signups. Subscribing twice with the
// same address succeeds and stays a single row.
type SubscribeHandler struct {
	db *gorm.DB
}

func NewSubscribeHandler(db *gorm.DB) *SubscribeHandler {
	return &SubscribeHandler{db: db}
}

func (h *SubscribeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/subscribe", h.Subscribe)
}

func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req types.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}

	sub := model.Subscriber{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now(),
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
