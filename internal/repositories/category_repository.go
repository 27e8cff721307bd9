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

type categoryRepository struct {
	database *mongo.Database
}

func NewCategoryRepository(database *mongo.Database) domain.CategoryRepository {
	return &categoryRepository{database: database}
}

func (r *categoryRepository) collection() *mongo.Collection {
	return r.database.Collection(categoriesCollection)
}

func (r *categoryRepository) Insert(ctx context.Context, category domain.FileCategory) error {
	if _, err := r.collection().InsertOne(ctx, category); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *categoryRepository) Get(ctx context.Context, userID, categoryID string) (domain.FileCategory, error) {
	var category domain.FileCategory

	err := r.collection().FindOne(ctx, bson.M{"id": categoryID, "user_id": userID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.FileCategory{}, domain.ErrNotFound
		}
		return domain.FileCategory{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context, userID string) ([]domain.FileCategory, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection().Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	categories := []domain.FileCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category domain.FileCategory) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"id": category.ID, "user_id": category.UserID}, category)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, userID, categoryID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": categoryID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
