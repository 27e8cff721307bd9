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

type clientRepository struct {
	database *mongo.Database
}

func NewClientRepository(database *mongo.Database) domain.ClientRepository {
	return &clientRepository{database: database}
}

func (r *clientRepository) collection() *mongo.Collection {
	return r.database.Collection(clientsCollection)
}

func (r *clientRepository) Insert(ctx context.Context, client domain.Client) error {
	if _, err := r.collection().InsertOne(ctx, client); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, userID, clientID string) (domain.Client, error) {
	var client domain.Client

	err := r.collection().FindOne(ctx, bson.M{"id": clientID, "user_id": userID}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Client{}, domain.ErrNotFound
		}
		return domain.Client{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return client, nil
}

func (r *clientRepository) List(ctx context.Context, userID string, status *domain.ClientStatus) ([]domain.Client, error) {
	filter := bson.M{"user_id": userID}
	if status != nil {
		filter["status"] = *status
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	clients := []domain.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client domain.Client) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"id": client.ID, "user_id": client.UserID}, client)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, userID, clientID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": clientID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
