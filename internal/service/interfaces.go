package service

import (
	"context"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/types"
)

// ICompletionClient is the upstream boundary of the generation pipeline;
// tests swap in a scripted implementation.
type ICompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// IGeneratorService is what the API handlers depend on
type IGeneratorService interface {
	GenerateRecipes(ctx context.Context, q types.MealQuery) (*model.RecipeResponse, error)
	AnalyzeMeal(ctx context.Context, q types.MealQuery) (*model.NutritionInfo, error)
}

// IDiaryStore abstracts eating-log persistence so the backing store can be
// swapped without touching the handlers.
type IDiaryStore interface {
	List(ctx context.Context) ([]model.EatingLog, error)
	ListByDate(ctx context.Context, date string) ([]model.EatingLog, error)
	Append(ctx context.Context, entry *model.EatingLog) error
	Delete(ctx context.Context, id string) error
}
