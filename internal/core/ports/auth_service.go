package ports

import (
	"context"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// EnsureAdmin creates the bootstrap admin account unless it already exists.
	EnsureAdmin(ctx context.Context, username, password string) error
}
