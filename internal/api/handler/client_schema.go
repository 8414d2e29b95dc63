package handler

import (
	"time"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

type createClientRequest struct {
	ClientName         string   `json:"client_name"         validate:"required"`
	Email              string   `json:"email"               validate:"omitempty,email"`
	Mobile             string   `json:"mobile"`
	Location           string   `json:"location"`
	Image              string   `json:"image"`
	DateOfBirth        string   `json:"date_of_birth"`
	Height             float64  `json:"height"              validate:"gte=0"`
	Gender             string   `json:"gender"`
	Goal               string   `json:"goal"                validate:"omitempty,oneof='Weight Loss' 'Weight Gain' 'Muscle Building' 'Weight Maintenance'"`
	WeightGoal         float64  `json:"weight_goal"         validate:"gte=0"`
	WorkoutPreference  string   `json:"workout_preference"`
	WorkoutSplit       string   `json:"workout_split"`
	MealSplit          string   `json:"meal_split"`
	RecoveryPreference string   `json:"recovery_preference"`
	Multiplier         float64  `json:"multiplier"          validate:"gte=0"`
	Weight             *float64 `json:"weight"              validate:"omitempty,gt=0"`
}

// updateClientRequest is a partial update; absent fields stay unchanged.
type updateClientRequest struct {
	ClientName         *string  `json:"client_name"         validate:"omitempty,min=1"`
	Email              *string  `json:"email"               validate:"omitempty,email"`
	Mobile             *string  `json:"mobile"`
	Location           *string  `json:"location"`
	Image              *string  `json:"image"`
	DateOfBirth        *string  `json:"date_of_birth"`
	Height             *float64 `json:"height"              validate:"omitempty,gte=0"`
	Gender             *string  `json:"gender"`
	Goal               *string  `json:"goal"                validate:"omitempty,oneof='Weight Loss' 'Weight Gain' 'Muscle Building' 'Weight Maintenance'"`
	WeightGoal         *float64 `json:"weight_goal"         validate:"omitempty,gte=0"`
	WorkoutPreference  *string  `json:"workout_preference"`
	WorkoutSplit       *string  `json:"workout_split"`
	MealSplit          *string  `json:"meal_split"`
	RecoveryPreference *string  `json:"recovery_preference"`
	Multiplier         *float64 `json:"multiplier"          validate:"omitempty,gte=0"`
}

type listClientsQuery struct {
	ListQuery
	Goal string `query:"goal" validate:"omitempty,oneof='Weight Loss' 'Weight Gain' 'Muscle Building' 'Weight Maintenance'"`
}

type listClientsResponse struct {
	Data       []*domain.Client   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type weightSampleRequest struct {
	Weight     float64   `json:"weight"      validate:"required,gt=0"`
	RecordedAt time.Time `json:"recorded_at"`
}

type batchWeightSampleRequest struct {
	ClientID       string    `json:"client_id"       validate:"required"`
	Weight         float64   `json:"weight"          validate:"required,gt=0"`
	RecordedAt     time.Time `json:"recorded_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

type weightSampleResponse struct {
	Client   *domain.Client `json:"client"`
	Replayed bool           `json:"replayed"`
}
