package ports

import (
	"context"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// ListClientsFilter carries the query parameters for listing clients.
type ListClientsFilter struct {
	Search string // optional: partial match on client_name or email
	Goal   string // optional: exact goal
	Page   int    // 1-based
	Limit  int
}

// ClientRepository defines persistence operations for clients.
// Save replaces the stored document with c only if its stored revision still
// equals c.Revision, then bumps c.Revision. A mismatch yields domain.ErrConflict.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Save(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListClientsFilter) ([]*domain.Client, int64, error)
}
