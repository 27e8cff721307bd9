package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

type portfolioRepository struct {
	database *mongo.Database
}

func NewPortfolioRepository(database *mongo.Database) domain.PortfolioRepository {
	return &portfolioRepository{database: database}
}

func (r *portfolioRepository) collection() *mongo.Collection {
	return r.database.Collection(portfoliosCollection)
}

func (r *portfolioRepository) Insert(ctx context.Context, portfolio domain.Portfolio) error {
	if _, err := r.collection().InsertOne(ctx, portfolio); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *portfolioRepository) Get(ctx context.Context, userID, portfolioID string) (domain.Portfolio, error) {
	var portfolio domain.Portfolio

	err := r.collection().FindOne(ctx, bson.M{"id": portfolioID, "user_id": userID}).Decode(&portfolio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Portfolio{}, domain.ErrNotFound
		}
		return domain.Portfolio{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return portfolio, nil
}

func (r *portfolioRepository) GetBySlug(ctx context.Context, slug string) (domain.Portfolio, error) {
	var portfolio domain.Portfolio

	err := r.collection().FindOne(ctx, bson.M{"slug": slug}).Decode(&portfolio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Portfolio{}, domain.ErrNotFound
		}
		return domain.Portfolio{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return portfolio, nil
}

func (r *portfolioRepository) List(ctx context.Context, userID string) ([]domain.Portfolio, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	portfolios := []domain.Portfolio{}
	if err := cursor.All(ctx, &portfolios); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return portfolios, nil
}

// SlugExists checks the slug across all owners. Slugs are globally unique
// because the public /p/:slug route resolves without an owner.
func (r *portfolioRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return count > 0, nil
}

func (r *portfolioRepository) Update(ctx context.Context, portfolio domain.Portfolio) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"id": portfolio.ID, "user_id": portfolio.UserID}, portfolio)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, userID, portfolioID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": portfolioID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
