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

type fileRepository struct {
	database *mongo.Database
}

func NewFileRepository(database *mongo.Database) domain.FileRepository {
	return &fileRepository{database: database}
}

func (r *fileRepository) collection() *mongo.Collection {
	return r.database.Collection(filesCollection)
}

func (r *fileRepository) Insert(ctx context.Context, entry domain.FileEntry) error {
	if _, err := r.collection().InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *fileRepository) Get(ctx context.Context, userID, entryID string) (domain.FileEntry, error) {
	var entry domain.FileEntry

	err := r.collection().FindOne(ctx, bson.M{"id": entryID, "user_id": userID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.FileEntry{}, domain.ErrNotFound
		}
		return domain.FileEntry{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return entry, nil
}

func (r *fileRepository) List(ctx context.Context, filter domain.FileEntryFilter) ([]domain.FileEntry, error) {
	mongoFilter := bson.M{"user_id": filter.UserID}

	if filter.HasParent {
		if filter.ParentFolderID == nil {
			mongoFilter["parent_folder_id"] = bson.M{"$exists": false}
		} else {
			mongoFilter["parent_folder_id"] = *filter.ParentFolderID
		}
	}
	if filter.IsArchived != nil {
		mongoFilter["is_archived"] = *filter.IsArchived
	}
	if filter.IsFolder != nil {
		mongoFilter["is_folder"] = *filter.IsFolder
	}
	if filter.CategoryID != nil {
		mongoFilter["category_id"] = *filter.CategoryID
	}

	cursor, err := r.collection().Find(ctx, mongoFilter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	entries := []domain.FileEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return entries, nil
}

func (r *fileRepository) Update(ctx context.Context, userID, entryID string, patch domain.FileEntryPatch) (domain.FileEntry, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.IsStarred != nil {
		set["is_starred"] = *patch.IsStarred
	}
	if patch.IsArchived != nil {
		set["is_archived"] = *patch.IsArchived
	}
	if patch.LastAccessedAt != nil {
		set["last_accessed_at"] = *patch.LastAccessedAt
	}
	if patch.ParentFolderID != nil {
		if *patch.ParentFolderID == nil {
			unset["parent_folder_id"] = ""
		} else {
			set["parent_folder_id"] = **patch.ParentFolderID
		}
	}
	if patch.CategoryID != nil {
		if *patch.CategoryID == nil {
			unset["category_id"] = ""
		} else {
			set["category_id"] = **patch.CategoryID
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result := r.collection().FindOneAndUpdate(ctx,
		bson.M{"id": entryID, "user_id": userID},
		update,
		mongoReturnAfter(),
	)

	var entry domain.FileEntry
	if err := result.Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.FileEntry{}, domain.ErrNotFound
		}
		return domain.FileEntry{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return entry, nil
}

func (r *fileRepository) Delete(ctx context.Context, userID, entryID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": entryID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *fileRepository) ClearCategory(ctx context.Context, userID, categoryID string) error {
	_, err := r.collection().UpdateMany(ctx,
		bson.M{"user_id": userID, "category_id": categoryID},
		bson.M{"$unset": bson.M{"category_id": ""}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}
