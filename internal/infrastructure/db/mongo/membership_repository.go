package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

const collectionMemberships = "memberships"

type MembershipRepository struct {
	col *mongo.Collection
}

func NewMembershipRepository(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{col: db.Collection(collectionMemberships)}
}

func (r *MembershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MembershipRepository) FindByID(ctx context.Context, id string) (*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Membership
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Save replaces the stored membership with m.
func (r *MembershipRepository) Save(ctx context.Context, m *domain.Membership) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}

// ListByClient returns the memberships of a client, newest first.
func (r *MembershipRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"client": clientID}, opts)
	if err != nil {
		return nil, err
	}
	items := []*domain.Membership{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MembershipRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
