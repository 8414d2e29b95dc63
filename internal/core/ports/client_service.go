package ports

import (
	"context"
	"time"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// ClientProfile holds the trainer-editable fields of a client.
type ClientProfile struct {
	ClientName         string
	Email              string
	Mobile             string
	Location           string
	Image              string
	DateOfBirth        *time.Time
	Height             float64
	Gender             string
	Goal               string
	WeightGoal         float64
	WorkoutPreference  string
	WorkoutSplit       string
	MealSplit          string
	RecoveryPreference string
	Multiplier         float64
}

// CreateClientInput carries the data for a new client. InitialWeight, when
// set, becomes the first weight_log entry.
type CreateClientInput struct {
	Profile       ClientProfile
	InitialWeight *float64
}

// UpdateClientInput is a partial update; nil fields are left unchanged.
type UpdateClientInput struct {
	ClientName         *string
	Email              *string
	Mobile             *string
	Location           *string
	Image              *string
	DateOfBirth        *time.Time
	Height             *float64
	Gender             *string
	Goal               *string
	WeightGoal         *float64
	WorkoutPreference  *string
	WorkoutSplit       *string
	MealSplit          *string
	RecoveryPreference *string
	Multiplier         *float64
}

// WeightSampleInput is a single weight reading for a client.
type WeightSampleInput struct {
	ClientID   string
	Weight     float64
	RecordedAt time.Time // zero means now
	// IdempotencyKey, when set, makes retries of the same sample a no-op.
	IdempotencyKey string
}

// ListClientsInput carries the parameters for the list endpoint.
type ListClientsInput struct {
	Search string
	Goal   string
	Page   int
	Limit  int
}

// ListClientsResult is returned by ListClients.
type ListClientsResult struct {
	Items      []*domain.Client
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context, input ListClientsInput) (*ListClientsResult, error)
	UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	// UpdateField sets one field from its raw string form and saves the
	// client. A weight_log update appends a sample.
	UpdateField(ctx context.Context, id, field, value string) error
	// AppendWeight adds a sample and re-derives targets. replayed is true when
	// the idempotency key was already used and nothing was appended.
	AppendWeight(ctx context.Context, input WeightSampleInput) (client *domain.Client, replayed bool, err error)
}
