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

type taskRepository struct {
	database *mongo.Database
}

func NewTaskRepository(database *mongo.Database) domain.TaskRepository {
	return &taskRepository{database: database}
}

func (r *taskRepository) collection() *mongo.Collection {
	return r.database.Collection(tasksCollection)
}

func (r *taskRepository) Insert(ctx context.Context, task domain.Task) error {
	if _, err := r.collection().InsertOne(ctx, task); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *taskRepository) Get(ctx context.Context, userID, taskID string) (domain.Task, error) {
	var task domain.Task

	err := r.collection().FindOne(ctx, bson.M{"id": taskID, "user_id": userID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return task, nil
}

func (r *taskRepository) List(ctx context.Context, userID string, status *domain.TaskStatus) ([]domain.Task, error) {
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

	tasks := []domain.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task domain.Task) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"id": task.ID, "user_id": task.UserID}, task)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, taskID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": taskID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepository) CountOpen(ctx context.Context, userID string) (int64, error) {
	filter := bson.M{"user_id": userID, "status": bson.M{"$ne": domain.TaskStatusDone}}

	count, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return count, nil
}
