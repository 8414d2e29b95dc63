package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

type FoodService struct {
	repo   ports.FoodRepository
	logger zerolog.Logger
}

func NewFoodService(repo ports.FoodRepository, logger zerolog.Logger) *FoodService {
	return &FoodService{repo: repo, logger: logger}
}

func (s *FoodService) CreateFood(ctx context.Context, input ports.CreateFoodInput) (*domain.Food, error) {
	if strings.TrimSpace(input.Ingredient) == "" {
		return nil, fmt.Errorf("create food: %w: ingredient is required", domain.ErrInvalidValue)
	}

	f := &domain.Food{
		ID:               uuid.NewString(),
		Ingredient:       strings.TrimSpace(input.Ingredient),
		Description:      input.Description,
		Category:         input.Category,
		FDCID:            input.FDCID,
		Image:            input.Image,
		Enabled:          input.Enabled,
		NutritionalFacts: make([]domain.NutritionalFact, 0, len(input.NutritionalFacts)),
		CreatedAt:        time.Now().UTC(),
	}
	for _, n := range input.NutritionalFacts {
		f.NutritionalFacts = append(f.NutritionalFacts, domain.NutritionalFact{
			Nutrient: n.Nutrient,
			Value:    n.Value,
			Unit:     n.Unit,
		})
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error().Err(err).Msg("failed to create food")
		return nil, err
	}

	s.logger.Info().Str("food_id", f.ID).Str("ingredient", f.Ingredient).Msg("food created")
	return f, nil
}

func (s *FoodService) GetFood(ctx context.Context, id string) (*domain.Food, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FoodService) ListFoods(ctx context.Context, input ports.ListFoodsInput) (*ports.ListFoodsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, ports.ListFoodsFilter{
		Search:   input.Search,
		Category: input.Category,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	return &ports.ListFoodsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *FoodService) DeleteFood(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
