package ports

import (
	"context"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// NutritionalFactInput is one nutrient line of a food.
type NutritionalFactInput struct {
	Nutrient string
	Value    float64
	Unit     string
}

// CreateFoodInput carries the data for a new catalogue entry.
type CreateFoodInput struct {
	Ingredient       string
	Description      string
	Category         string
	FDCID            string
	Image            string
	Enabled          bool
	NutritionalFacts []NutritionalFactInput
}

// ListFoodsInput carries the parameters for the list endpoint.
type ListFoodsInput struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// ListFoodsResult is returned by ListFoods.
type ListFoodsResult struct {
	Items      []*domain.Food
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// FoodService defines use-case operations for the food catalogue.
type FoodService interface {
	CreateFood(ctx context.Context, input CreateFoodInput) (*domain.Food, error)
	GetFood(ctx context.Context, id string) (*domain.Food, error)
	ListFoods(ctx context.Context, input ListFoodsInput) (*ListFoodsResult, error)
	DeleteFood(ctx context.Context, id string) error
}
