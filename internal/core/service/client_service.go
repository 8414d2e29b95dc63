package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// maxSaveAttempts bounds the read-modify-save retries after a revision conflict.
const maxSaveAttempts = 5

// DedupChecker abstracts the idempotency store (Redis) for weight samples.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, clientID, key string) (bool, error)
	Mark(ctx context.Context, clientID, key string) error
}

type ClientService struct {
	repo   ports.ClientRepository
	dedup  DedupChecker
	logger zerolog.Logger
	now    func() time.Time
}

func NewClientService(repo ports.ClientRepository, dedup DedupChecker, logger zerolog.Logger) *ClientService {
	return &ClientService{
		repo:   repo,
		dedup:  dedup,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateClient stores a new client with its targets already derived.
func (s *ClientService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	goal := domain.Goal(input.Profile.Goal)
	if !goal.Valid() {
		return nil, fmt.Errorf("create client: %w: goal %q", domain.ErrInvalidValue, input.Profile.Goal)
	}

	now := s.now()
	c := &domain.Client{
		ID:        uuid.NewString(),
		WeightLog: []domain.WeightSample{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProfile(c, input.Profile)
	if input.InitialWeight != nil {
		if *input.InitialWeight <= 0 {
			return nil, fmt.Errorf("create client: %w: weight must be positive", domain.ErrInvalidValue)
		}
		c.AppendWeight(*input.InitialWeight, now)
	}
	c.Validate(now)

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", c.ID).Str("goal", string(c.Goal)).Msg("client created")
	return c, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// ListClients returns a page of clients. Limit is capped at maxPageSize.
func (s *ClientService) ListClients(ctx context.Context, input ports.ListClientsInput) (*ports.ListClientsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, ports.ListClientsFilter{
		Search: input.Search,
		Goal:   input.Goal,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return &ports.ListClientsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateClient applies a partial update and re-derives the targets.
func (s *ClientService) UpdateClient(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	return s.modify(ctx, id, func(c *domain.Client) error {
		if err := applyUpdate(c, input); err != nil {
			return fmt.Errorf("update client: %w", err)
		}
		return nil
	})
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

// UpdateField sets a single field from its raw string value and commits.
func (s *ClientService) UpdateField(ctx context.Context, id, field, value string) error {
	_, err := s.modify(ctx, id, func(c *domain.Client) error {
		return c.SetField(field, value, s.now())
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("client_id", id).Str("field", field).Msg("client field updated")
	return nil
}

// AppendWeight records a weight sample. When an idempotency key is supplied
// and has been seen before, the stored client is returned unchanged.
func (s *ClientService) AppendWeight(ctx context.Context, in ports.WeightSampleInput) (*domain.Client, bool, error) {
	if in.Weight <= 0 {
		return nil, false, fmt.Errorf("append weight: %w: weight must be positive", domain.ErrInvalidValue)
	}

	if in.IdempotencyKey != "" && s.dedup != nil {
		dup, err := s.dedup.IsDuplicate(ctx, in.ClientID, in.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("client_id", in.ClientID).Msg("dedup check failed, appending anyway")
		} else if dup {
			c, err := s.repo.FindByID(ctx, in.ClientID)
			if err != nil {
				return nil, false, err
			}
			s.logger.Debug().Str("client_id", in.ClientID).Str("idempotency_key", in.IdempotencyKey).Msg("duplicate weight sample skipped")
			return c, true, nil
		}
	}

	at := in.RecordedAt
	if at.IsZero() {
		at = s.now()
	}
	c, err := s.modify(ctx, in.ClientID, func(c *domain.Client) error {
		c.AppendWeight(in.Weight, at.UTC())
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if in.IdempotencyKey != "" && s.dedup != nil {
		if err := s.dedup.Mark(ctx, in.ClientID, in.IdempotencyKey); err != nil {
			s.logger.Warn().Err(err).Str("client_id", in.ClientID).Msg("failed to set dedup key")
		}
	}

	s.logger.Info().Str("client_id", c.ID).Float64("weight", in.Weight).Msg("weight sample appended")
	return c, false, nil
}

// modify loads the client, applies fn and saves it. When another writer saved
// in between, the whole cycle is repeated on a fresh copy so no change is lost.
func (s *ClientService) modify(ctx context.Context, id string, fn func(c *domain.Client) error) (*domain.Client, error) {
	var lastErr error
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		c, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := fn(c); err != nil {
			return nil, err
		}
		err = s.save(ctx, c)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		lastErr = err
		s.logger.Debug().Str("client_id", id).Int("attempt", attempt).Msg("client save conflict, retrying")
	}
	return nil, fmt.Errorf("save client %s: %w", id, lastErr)
}

// save runs the pre-save derivation and persists the client.
func (s *ClientService) save(ctx context.Context, c *domain.Client) error {
	now := s.now()
	c.Validate(now)
	c.UpdatedAt = now
	if err := s.repo.Save(ctx, c); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		s.logger.Error().Err(err).Str("client_id", c.ID).Msg("failed to save client")
		return err
	}
	return nil
}

func applyProfile(c *domain.Client, p ports.ClientProfile) {
	c.ClientName = p.ClientName
	c.Email = p.Email
	c.Mobile = p.Mobile
	c.Location = p.Location
	c.Image = p.Image
	c.DateOfBirth = p.DateOfBirth
	c.Height = p.Height
	c.Gender = p.Gender
	c.Goal = domain.Goal(p.Goal)
	c.WeightGoal = p.WeightGoal
	c.WorkoutPreference = p.WorkoutPreference
	c.WorkoutSplit = p.WorkoutSplit
	c.MealSplit = p.MealSplit
	c.RecoveryPreference = p.RecoveryPreference
	c.Multiplier = p.Multiplier
}

func applyUpdate(c *domain.Client, in ports.UpdateClientInput) error {
	if in.Goal != nil {
		g := domain.Goal(*in.Goal)
		if !g.Valid() {
			return fmt.Errorf("%w: goal %q", domain.ErrInvalidValue, *in.Goal)
		}
		c.Goal = g
	}
	setIf(&c.ClientName, in.ClientName)
	setIf(&c.Email, in.Email)
	setIf(&c.Mobile, in.Mobile)
	setIf(&c.Location, in.Location)
	setIf(&c.Image, in.Image)
	setIf(&c.Gender, in.Gender)
	setIf(&c.WorkoutPreference, in.WorkoutPreference)
	setIf(&c.WorkoutSplit, in.WorkoutSplit)
	setIf(&c.MealSplit, in.MealSplit)
	setIf(&c.RecoveryPreference, in.RecoveryPreference)
	setIf(&c.Height, in.Height)
	setIf(&c.WeightGoal, in.WeightGoal)
	setIf(&c.Multiplier, in.Multiplier)
	if in.DateOfBirth != nil {
		dob := *in.DateOfBirth
		c.DateOfBirth = &dob
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
