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

type conversationRepository struct {
	database *mongo.Database
}

func NewConversationRepository(database *mongo.Database) domain.ConversationRepository {
	return &conversationRepository{database: database}
}

func (r *conversationRepository) collection() *mongo.Collection {
	return r.database.Collection(conversationsCollection)
}

func (r *conversationRepository) Upsert(ctx context.Context, conversation domain.Conversation) error {
	filter := bson.M{"id": conversation.ID, "user_id": conversation.UserID}
	updateOptions := options.Replace().SetUpsert(true)

	if _, err := r.collection().ReplaceOne(ctx, filter, conversation, updateOptions); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return nil
}

func (r *conversationRepository) Get(ctx context.Context, userID, conversationID string) (domain.Conversation, error) {
	var conversation domain.Conversation

	err := r.collection().FindOne(ctx, bson.M{"id": conversationID, "user_id": userID}).Decode(&conversation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Conversation{}, domain.ErrNotFound
		}
		return domain.Conversation{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return conversation, nil
}

func (r *conversationRepository) List(ctx context.Context, userID string) ([]domain.Conversation, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	conversations := []domain.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return conversations, nil
}

func (r *conversationRepository) Delete(ctx context.Context, userID, conversationID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": conversationID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
