package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/tinybites/backend/config"
	"github.com/pageza/tinybites/backend/internal/api"
	"github.com/pageza/tinybites/backend/internal/middleware"
	"github.com/pageza/tinybites/backend/internal/service"
)

// SetupRouter configures the application routes. redisClient and s3Config
// may be nil: caching, rate limiting and photo uploads degrade, the rest
// of the API is unaffected.
func SetupRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, s3Config *config.S3Config) *gin.Engine {
	gin.SetMode(config.GinMode())

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Services
	completionClient := service.NewCompletionClient(cfg)
	generator := service.NewGeneratorService(completionClient, redisClient, cfg.UseMockData)
	diaryStore := service.NewDiaryStore(db)
	photoService := service.NewPhotoService(s3Config)

	// Handlers
	recipeHandler := api.NewRecipeHandler(generator)
	nutritionHandler := api.NewNutritionHandler(generator)
	diaryHandler := api.NewDiaryHandler(diaryStore, photoService)
	babyHandler := api.NewBabyHandler(db)
	favoriteHandler := api.NewFavoriteHandler(db)
	subscribeHandler := api.NewSubscribeHandler(db)

	root := router.Group("/api")

	// The AI endpoints share one rate limit pool per client IP
	limiter := middleware.NewGenerationRateLimiter(redisClient)
	generation := root.Group("")
	generation.Use(limiter.RateLimitMiddleware())
	{
		recipeHandler.RegisterRoutes(generation)
		nutritionHandler.RegisterRoutes(generation)
	}

	diaryHandler.RegisterRoutes(root)
	babyHandler.RegisterRoutes(root)
	favoriteHandler.RegisterRoutes(root)
	subscribeHandler.RegisterRoutes(root)

	return router
}
