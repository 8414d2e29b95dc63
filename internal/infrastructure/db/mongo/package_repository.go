package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

const collectionPackages = "subscription_packages"

type PackageRepository struct {
	col *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) *PackageRepository {
	return &PackageRepository{col: db.Collection(collectionPackages)}
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.SubscriptionPackage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PackageRepository) FindByID(ctx context.Context, id string) (*domain.SubscriptionPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.SubscriptionPackage
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]*domain.SubscriptionPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "duration", Value: 1}}))
	if err != nil {
		return nil, err
	}
	items := []*domain.SubscriptionPackage{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
