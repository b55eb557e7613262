package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/types"
)

// nutritionCacheTTL bounds how long a real upstream analysis is reused
const nutritionCacheTTL = 24 * time.Hour

// GeneratorService runs the shared resilient pipeline behind both AI
// endpoints: validate input, build the prompt, call the upstream once,
// validate and repair the reply, and degrade to the fallback generator on
// any failure. Fallback results look exactly like real ones to callers.
type GeneratorService struct {
	client  ICompletionClient
	cache   INutritionCache // optional; nil disables caching
	useMock bool
}

// NewGeneratorService creates a GeneratorService. redisClient may be nil;
// useMock forces fallback mode for every request.
func NewGeneratorService(client ICompletionClient, redisClient *redis.Client, useMock bool) *GeneratorService {
	svc := &GeneratorService{
		client:  client,
		useMock: useMock,
	}
	if redisClient != nil {
		svc.cache = &redisNutritionCache{client: redisClient}
	}
	return svc
}

// GenerateRecipes runs the pipeline for recipe generation. It returns
// ErrMissingField or ErrInvalidIngredient for input problems; every other
// failure is absorbed by the fallback generator and the result is always a
// complete RecipeResponse.
func (s *GeneratorService) GenerateRecipes(ctx context.Context, q types.MealQuery) (*model.RecipeResponse, error) {
	if err := ValidateRequiredText(q.Text); err != nil {
		return nil, err
	}
	if err := CheckIngredients(q.Text); err != nil {
		return nil, err
	}

	resp, _ := s.generateRecipes(ctx, q)
	return resp, nil
}

func (s *GeneratorService) generateRecipes(ctx context.Context, q types.MealQuery) (*model.RecipeResponse, bool) {
	if s.useMock {
		log.Printf("[Generator] mock mode enabled, serving template recipes")
		return FallbackRecipes(q), true
	}

	systemPrompt, userPrompt := BuildRecipePrompt(q)

	raw, err := s.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[Generator] recipe completion failed, degrading to fallback: %v", err)
		return FallbackRecipes(q), true
	}

	resp, err := ParseRecipeResponse(raw)
	if err != nil {
		log.Printf("[Generator] recipe completion invalid, degrading to fallback: %v", err)
		return FallbackRecipes(q), true
	}

	return resp, false
}

// AnalyzeMeal runs the pipeline for nutrition analysis. Only real upstream
// answers are cached, so a recovered upstream is used on the next request
// after an outage.
func (s *GeneratorService) AnalyzeMeal(ctx context.Context, q types.MealQuery) (*model.NutritionInfo, error) {
	if err := ValidateRequiredText(q.Text); err != nil {
		return nil, err
	}

	if cached := s.cachedNutrition(ctx, q); cached != nil {
		return cached, nil
	}

	info, fromFallback := s.analyzeMeal(ctx, q)
	if !fromFallback {
		s.cacheNutrition(ctx, q, info)
	}
	return info, nil
}

func (s *GeneratorService) analyzeMeal(ctx context.Context, q types.MealQuery) (*model.NutritionInfo, bool) {
	if s.useMock {
		log.Printf("[Generator] mock mode enabled, serving template nutrition")
		return FallbackNutrition(q), true
	}

	systemPrompt, userPrompt := BuildNutritionPrompt(q)

	raw, err := s.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[Generator] nutrition completion failed, degrading to fallback: %v", err)
		return FallbackNutrition(q), true
	}

	info, err := ParseNutritionInfo(raw)
	if err != nil {
		log.Printf("[Generator] nutrition completion invalid, degrading to fallback: %v", err)
		return FallbackNutrition(q), true
	}

	return info, false
}

func nutritionCacheKey(q types.MealQuery) string {
	return fmt.Sprintf("nutrition:%s:%s", q.Language, strings.ToLower(strings.TrimSpace(q.Text)))
}

func (s *GeneratorService) cachedNutrition(ctx context.Context, q types.MealQuery) *model.NutritionInfo {
	if s.cache == nil {
		return nil
	}

	data, ok := s.cache.Get(ctx, nutritionCacheKey(q))
	if !ok {
		return nil
	}

	var info model.NutritionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		log.Printf("[Generator] dropping corrupt nutrition cache entry: %v", err)
		return nil
	}
	return &info
}

func (s *GeneratorService) cacheNutrition(ctx context.Context, q types.MealQuery, info *model.NutritionInfo) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	s.cache.Set(ctx, nutritionCacheKey(q), data, nutritionCacheTTL)
}
