package handler

import (
	"fmt"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// --- Request → Service input ---

func toCreateClientInput(req createClientRequest) (ports.CreateClientInput, error) {
	in := ports.CreateClientInput{
		Profile: ports.ClientProfile{
			ClientName:         req.ClientName,
			Email:              req.Email,
			Mobile:             req.Mobile,
			Location:           req.Location,
			Image:              req.Image,
			Height:             req.Height,
			Gender:             req.Gender,
			Goal:               req.Goal,
			WeightGoal:         req.WeightGoal,
			WorkoutPreference:  req.WorkoutPreference,
			WorkoutSplit:       req.WorkoutSplit,
			MealSplit:          req.MealSplit,
			RecoveryPreference: req.RecoveryPreference,
			Multiplier:         req.Multiplier,
		},
		InitialWeight: req.Weight,
	}
	if req.DateOfBirth != "" {
		dob, err := domain.ParseDate(req.DateOfBirth)
		if err != nil {
			return in, fmt.Errorf("date_of_birth: %w", err)
		}
		in.Profile.DateOfBirth = &dob
	}
	return in, nil
}

func toUpdateClientInput(req updateClientRequest) (ports.UpdateClientInput, error) {
	in := ports.UpdateClientInput{
		ClientName:         req.ClientName,
		Email:              req.Email,
		Mobile:             req.Mobile,
		Location:           req.Location,
		Image:              req.Image,
		Height:             req.Height,
		Gender:             req.Gender,
		Goal:               req.Goal,
		WeightGoal:         req.WeightGoal,
		WorkoutPreference:  req.WorkoutPreference,
		WorkoutSplit:       req.WorkoutSplit,
		MealSplit:          req.MealSplit,
		RecoveryPreference: req.RecoveryPreference,
		Multiplier:         req.Multiplier,
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := domain.ParseDate(*req.DateOfBirth)
		if err != nil {
			return in, fmt.Errorf("date_of_birth: %w", err)
		}
		in.DateOfBirth = &dob
	}
	return in, nil
}

func toBatchInputs(reqs []batchWeightSampleRequest) []ports.WeightSampleInput {
	out := make([]ports.WeightSampleInput, len(reqs))
	for i, r := range reqs {
		out[i] = ports.WeightSampleInput{
			ClientID:       r.ClientID,
			Weight:         r.Weight,
			RecordedAt:     r.RecordedAt,
			IdempotencyKey: r.IdempotencyKey,
		}
	}
	return out
}

// --- Service result → HTTP response ---

func toListClientsResponse(r *ports.ListClientsResult) listClientsResponse {
	items := r.Items
	if items == nil {
		items = []*domain.Client{}
	}
	return listClientsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
