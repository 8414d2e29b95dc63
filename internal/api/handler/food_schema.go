package handler

import "github.com/ptcoach/personal-trainer/internal/core/domain"

type nutritionalFactRequest struct {
	Nutrient string  `json:"nutrient" validate:"required"`
	Value    float64 `json:"value"    validate:"gte=0"`
	Unit     string  `json:"unit"     validate:"required"`
}

type createFoodRequest struct {
	Ingredient       string                   `json:"ingredient"        validate:"required"`
	Description      string                   `json:"description"`
	Category         string                   `json:"category"`
	FDCID            string                   `json:"fdcid"`
	Image            string                   `json:"image"`
	Enabled          *bool                    `json:"enabled"`
	NutritionalFacts []nutritionalFactRequest `json:"nutritional_facts" validate:"dive"`
}

type listFoodsQuery struct {
	ListQuery
	Category string `query:"category"`
}

type listFoodsResponse struct {
	Data       []*domain.Food     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
