package ports

import (
	"context"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// MembershipRepository defines persistence operations for memberships.
type MembershipRepository interface {
	Create(ctx context.Context, m *domain.Membership) error
	FindByID(ctx context.Context, id string) (*domain.Membership, error)
	Save(ctx context.Context, m *domain.Membership) error
	ListByClient(ctx context.Context, clientID string) ([]*domain.Membership, error)
}

// PackageRepository defines persistence operations for subscription packages.
type PackageRepository interface {
	Create(ctx context.Context, p *domain.SubscriptionPackage) error
	FindByID(ctx context.Context, id string) (*domain.SubscriptionPackage, error)
	List(ctx context.Context) ([]*domain.SubscriptionPackage, error)
}
