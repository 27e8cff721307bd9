package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

type shareRepository struct {
	database *mongo.Database
}

func NewShareRepository(database *mongo.Database) domain.ShareRepository {
	return &shareRepository{database: database}
}

func (r *shareRepository) collection() *mongo.Collection {
	return r.database.Collection(sharesCollection)
}

func (r *shareRepository) Insert(ctx context.Context, link domain.ShareLink) error {
	if _, err := r.collection().InsertOne(ctx, link); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *shareRepository) GetByToken(ctx context.Context, token string) (domain.ShareLink, error) {
	var link domain.ShareLink

	err := r.collection().FindOne(ctx, bson.M{"token": token}).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ShareLink{}, domain.ErrNotFound
		}
		return domain.ShareLink{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return link, nil
}

func (r *shareRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.collection().DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return result.DeletedCount, nil
}
