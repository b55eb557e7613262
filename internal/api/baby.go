package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/types"
)

// BabyHandler serves baby profiles. Profiles are keyed by the parent's
// email; there are no accounts, the email is the whole identity.
type BabyHandler struct {
	db *gorm.DB
}

func NewBabyHandler(db *gorm.DB) *BabyHandler {
	return &BabyHandler{db: db}
}

func (h *BabyHandler) RegisterRoutes(router *gin.RouterGroup) {
	babies := router.Group("/babies")
	{
		babies.GET("", h.ListBabies)
		babies.POST("", h.CreateBaby)
		babies.DELETE("/:id", h.DeleteBaby)
	}
}

func (h *BabyHandler) ListBabies(c *gin.Context) {
	email := strings.TrimSpace(strings.ToLower(c.Query("email")))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	var babies []model.BabyProfile
	if err := h.db.Where("email = ?", email).Order("created_at ASC").Find(&babies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"babies": babies})
}

func (h *BabyHandler) CreateBaby(c *gin.Context) {
	var req types.CreateBabyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MonthsOld <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "monthsOld must be positive"})
		return
	}

	baby := model.BabyProfile{
		ID:        uuid.New(),
		Email:     strings.TrimSpace(strings.ToLower(req.Email)),
		Name:      strings.TrimSpace(req.Name),
		MonthsOld: req.MonthsOld,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.db.Create(&baby).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusCreated, baby)
}

func (h *BabyHandler) DeleteBaby(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	if err := h.db.Delete(&model.BabyProfile{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
