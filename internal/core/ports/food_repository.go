package ports

import (
	"context"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// ListFoodsFilter carries the query parameters for listing foods.
type ListFoodsFilter struct {
	Search   string // optional: partial match on ingredient
	Category string // optional
	Page     int
	Limit    int
}

// FoodRepository defines persistence operations for the food catalogue.
type FoodRepository interface {
	Create(ctx context.Context, f *domain.Food) error
	FindByID(ctx context.Context, id string) (*domain.Food, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFoodsFilter) ([]*domain.Food, int64, error)
}
