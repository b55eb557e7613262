package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/service"
	"github.com/pageza/tinybites/backend/internal/types"
)

// maxPhotoBytes caps uploaded meal photos at 5 MB
const maxPhotoBytes = 5 << 20

// DiaryHandler serves the eating diary: append-only logs plus an optional
// photo upload that runs before the log is created.
type DiaryHandler struct {
	store  service.IDiaryStore
	photos *service.PhotoService
}

func NewDiaryHandler(store service.IDiaryStore, photos *service.PhotoService) *DiaryHandler {
	return &DiaryHandler{store: store, photos: photos}
}

func (h *DiaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	diary := router.Group("/diary")
	{
		diary.GET("", h.ListLogs)
		diary.POST("", h.CreateLog)
		diary.DELETE("/:id", h.DeleteLog)
		diary.POST("/photo", h.UploadPhoto)
	}
}

func (h *DiaryHandler) ListLogs(c *gin.Context) {
	var (
		logs []model.EatingLog
		err  error
	)

	if date := c.Query("date"); date != "" {
		logs, err = h.store.ListByDate(c.Request.Context(), date)
	} else {
		logs, err = h.store.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch eating logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *DiaryHandler) CreateLog(c *gin.Context) {
	var req types.CreateEatingLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !model.ValidMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal type"})
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 0 and 5"})
		return
	}

	entry := model.EatingLog{
		Date:     req.Date,
		Title:    req.Title,
		MealType: req.MealType,
		Rating:   req.Rating,
		PhotoURL: req.PhotoURL,
		Note:     req.Note,
	}
	if len(req.Nutrition) > 0 {
		var info model.JSONBNutrition
		if err := info.Scan([]byte(req.Nutrition)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nutrition payload"})
			return
		}
		entry.Nutrition = info
	}

	if err := h.store.Append(c.Request.Context(), &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save eating log"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DiaryHandler) DeleteLog(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid eating log id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// UploadPhoto stores a meal photo and returns its public URL. Clients call
// this before creating the log and pass the URL in photoUrl. With no photo
// storage configured the endpoint answers 200 with an empty URL and the
// client keeps its inline copy.
func (h *DiaryHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil || !h.photos.Enabled() {
		c.JSON(http.StatusOK, gin.H{"url": ""})
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	if len(data) > maxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds 5MB limit"})
		return
	}

	url, err := h.photos.UploadMealPhoto(c.Request.Context(), data, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
