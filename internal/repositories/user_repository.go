package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

type userRepository struct {
	database *mongo.Database
}

func NewUserRepository(database *mongo.Database) domain.UserRepository {
	return &userRepository{database: database}
}

func (r *userRepository) collection() *mongo.Collection {
	return r.database.Collection(usersCollection)
}

func (r *userRepository) Insert(ctx context.Context, user domain.User) error {
	if _, err := r.collection().InsertOne(ctx, user); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, userID string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"id": userID})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (domain.User, error) {
	var user domain.User

	err := r.collection().FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return user, nil
}
