package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rs/zerolog/log"
)

const (
	filesCollection         = "file_entries"
	categoriesCollection    = "file_categories"
	sharesCollection        = "share_links"
	usersCollection         = "users"
	clientsCollection       = "clients"
	projectsCollection      = "projects"
	invoicesCollection      = "invoices"
	expensesCollection      = "expenses"
	tasksCollection         = "tasks"
	portfoliosCollection    = "portfolios"
	conversationsCollection = "ai_conversations"
)

// Connect dials MongoDB and returns the application database handle.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client.Database(database), nil
}

func mongoReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// EnsureIndexes creates the indexes every repository relies on. Failures are
// logged, not fatal; queries still work without them.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		filesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "parent_folder_id", Value: 1}, {Key: "is_archived", Value: 1}}},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		sharesCollection: {
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		portfoliosCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for _, name := range []string{categoriesCollection, clientsCollection, projectsCollection, invoicesCollection, expensesCollection, tasksCollection, conversationsCollection} {
		indexes[name] = []mongo.IndexModel{
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		}
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			log.Warn().Err(err).Str("collection", collection).Msg("Failed to create indexes")
		}
	}
}
