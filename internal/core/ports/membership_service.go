package ports

import (
	"context"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// CreateMembershipInput carries the references for a new membership.
type CreateMembershipInput struct {
	Client              string
	SubscriptionPackage string
}

// UpdateMembershipInput is a partial update; nil fields are left unchanged.
type UpdateMembershipInput struct {
	Client              *string
	SubscriptionPackage *string
}

// AuthenticatedMembership is returned when a membership id authenticates.
type AuthenticatedMembership struct {
	Client     *domain.Client     `json:"client"`
	Membership *domain.Membership `json:"membership"`
}

// MembershipService defines use-case operations for memberships.
type MembershipService interface {
	CreateMembership(ctx context.Context, input CreateMembershipInput) (*domain.Membership, error)
	GetMembership(ctx context.Context, id string) (*domain.Membership, error)
	UpdateMembership(ctx context.Context, id string, input UpdateMembershipInput) (*domain.Membership, error)
	// RefreshMembership re-saves the membership so its enabled flag reflects
	// the current clock.
	RefreshMembership(ctx context.Context, id string) (*domain.Membership, error)
	ListClientMemberships(ctx context.Context, clientID string) ([]*domain.Membership, error)
	// Authenticate returns the membership and its client when the membership
	// is enabled, and (nil, nil) when it is disabled. An unknown id yields
	// domain.ErrMembershipNotFound.
	Authenticate(ctx context.Context, membershipID string) (*AuthenticatedMembership, error)
}

// CreatePackageInput carries the data for a new subscription package.
type CreatePackageInput struct {
	PackageName string
	Duration    int64 // seconds
	Price       float64
	Currency    string
}

// PackageService defines use-case operations for subscription packages.
type PackageService interface {
	CreatePackage(ctx context.Context, input CreatePackageInput) (*domain.SubscriptionPackage, error)
	GetPackage(ctx context.Context, id string) (*domain.SubscriptionPackage, error)
	ListPackages(ctx context.Context) ([]*domain.SubscriptionPackage, error)
}
