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

type projectRepository struct {
	database *mongo.Database
}

func NewProjectRepository(database *mongo.Database) domain.ProjectRepository {
	return &projectRepository{database: database}
}

func (r *projectRepository) collection() *mongo.Collection {
	return r.database.Collection(projectsCollection)
}

func (r *projectRepository) Insert(ctx context.Context, project domain.Project) error {
	if _, err := r.collection().InsertOne(ctx, project); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *projectRepository) Get(ctx context.Context, userID, projectID string) (domain.Project, error) {
	var project domain.Project

	err := r.collection().FindOne(ctx, bson.M{"id": projectID, "user_id": userID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Project{}, domain.ErrNotFound
		}
		return domain.Project{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return project, nil
}

func (r *projectRepository) List(ctx context.Context, userID string, status *domain.ProjectStatus) ([]domain.Project, error) {
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

	projects := []domain.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return projects, nil
}

func (r *projectRepository) CountByClient(ctx context.Context, userID, clientID string) (int64, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{"user_id": userID, "client_id": clientID})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return count, nil
}

func (r *projectRepository) Update(ctx context.Context, project domain.Project) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"id": project.ID, "user_id": project.UserID}, project)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, userID, projectID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": projectID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
