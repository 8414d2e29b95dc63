package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

type MembershipService struct {
	memberships ports.MembershipRepository
	packages    ports.PackageRepository
	clients     ports.ClientRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewMembershipService(
	memberships ports.MembershipRepository,
	packages ports.PackageRepository,
	clients ports.ClientRepository,
	logger zerolog.Logger,
) *MembershipService {
	return &MembershipService{
		memberships: memberships,
		packages:    packages,
		clients:     clients,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateMembership opens a membership for an existing client. The window
// starts now when the referenced package has a duration.
func (s *MembershipService) CreateMembership(ctx context.Context, input ports.CreateMembershipInput) (*domain.Membership, error) {
	if _, err := s.clients.FindByID(ctx, input.Client); err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}

	now := s.now()
	m := &domain.Membership{
		ID:                  uuid.NewString(),
		Client:              input.Client,
		SubscriptionPackage: input.SubscriptionPackage,
		CreatedAt:           now,
	}
	if err := s.beforeSave(ctx, nil, m, now); err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}

	if err := s.memberships.Create(ctx, m); err != nil {
		s.logger.Error().Err(err).Msg("failed to create membership")
		return nil, err
	}

	s.logger.Info().
		Str("membership_id", m.ID).
		Str("client_id", m.Client).
		Str("package", m.SubscriptionPackage).
		Bool("enabled", m.Enabled).
		Msg("membership created")
	return m, nil
}

func (s *MembershipService) GetMembership(ctx context.Context, id string) (*domain.Membership, error) {
	return s.memberships.FindByID(ctx, id)
}

// UpdateMembership changes the references of a membership. Only a change of
// subscription_package restarts the window.
func (s *MembershipService) UpdateMembership(ctx context.Context, id string, input ports.UpdateMembershipInput) (*domain.Membership, error) {
	current, err := s.memberships.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := current.Clone()

	if input.Client != nil && *input.Client != current.Client {
		if _, err := s.clients.FindByID(ctx, *input.Client); err != nil {
			return nil, fmt.Errorf("update membership: %w", err)
		}
		current.Client = *input.Client
	}
	if input.SubscriptionPackage != nil {
		current.SubscriptionPackage = *input.SubscriptionPackage
	}

	if err := s.save(ctx, prev, current); err != nil {
		return nil, err
	}
	return current, nil
}

// RefreshMembership re-saves a membership unchanged so that its enabled flag
// follows the clock.
func (s *MembershipService) RefreshMembership(ctx context.Context, id string) (*domain.Membership, error) {
	current, err := s.memberships.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, current.Clone(), current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *MembershipService) ListClientMemberships(ctx context.Context, clientID string) ([]*domain.Membership, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.memberships.ListByClient(ctx, clientID)
}

// Authenticate resolves a membership id into the membership and its client.
// The membership id itself is the only credential; the stored enabled flag
// decides the outcome.
func (s *MembershipService) Authenticate(ctx context.Context, membershipID string) (*ports.AuthenticatedMembership, error) {
	m, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if !m.Enabled {
		s.logger.Debug().Str("membership_id", membershipID).Msg("membership disabled")
		return nil, nil
	}

	c, err := s.clients.FindByID(ctx, m.Client)
	if err != nil {
		return nil, fmt.Errorf("authenticate membership: %w", err)
	}

	s.logger.Info().Str("membership_id", m.ID).Str("client_id", c.ID).Msg("membership authenticated")
	return &ports.AuthenticatedMembership{Client: c, Membership: m}, nil
}

func (s *MembershipService) save(ctx context.Context, prev, m *domain.Membership) error {
	now := s.now()
	if err := s.beforeSave(ctx, prev, m, now); err != nil {
		return fmt.Errorf("save membership: %w", err)
	}
	if err := s.memberships.Save(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("membership_id", m.ID).Msg("failed to save membership")
		return err
	}
	s.logger.Debug().Str("membership_id", m.ID).Bool("enabled", m.Enabled).Msg("membership saved")
	return nil
}

// beforeSave loads the package only when the window has to be recomputed.
func (s *MembershipService) beforeSave(ctx context.Context, prev, m *domain.Membership, now time.Time) error {
	var pkg *domain.SubscriptionPackage
	if m.NeedsWindow(prev) && m.SubscriptionPackage != "" {
		p, err := s.packages.FindByID(ctx, m.SubscriptionPackage)
		if err != nil {
			return err
		}
		pkg = p
	}
	m.Refresh(prev, pkg, now)
	m.UpdatedAt = now
	return nil
}
