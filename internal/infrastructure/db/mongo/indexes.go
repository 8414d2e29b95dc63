package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureIndexes creates the indexes of every collection the service owns.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for name, ix := range map[string]indexer{
		collectionClients:     NewClientRepository(db),
		collectionMemberships: NewMembershipRepository(db),
		authCollection:        NewAuthRepository(db),
	} {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}
