package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

type expenseRepository struct {
	database *mongo.Database
}

func NewExpenseRepository(database *mongo.Database) domain.ExpenseRepository {
	return &expenseRepository{database: database}
}

func (r *expenseRepository) collection() *mongo.Collection {
	return r.database.Collection(expensesCollection)
}

func (r *expenseRepository) Insert(ctx context.Context, expense domain.Expense) error {
	if _, err := r.collection().InsertOne(ctx, expense); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *expenseRepository) Get(ctx context.Context, userID, expenseID string) (domain.Expense, error) {
	var expense domain.Expense

	err := r.collection().FindOne(ctx, bson.M{"id": expenseID, "user_id": userID}).Decode(&expense)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return expense, nil
}

func (r *expenseRepository) List(ctx context.Context, userID string, from, to *time.Time) ([]domain.Expense, error) {
	filter := bson.M{"user_id": userID}

	dateFilter := bson.M{}
	if from != nil {
		dateFilter["$gte"] = *from
	}
	if to != nil {
		dateFilter["$lte"] = *to
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	expenses := []domain.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense domain.Expense) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"id": expense.ID, "user_id": expense.UserID}, expense)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, userID, expenseID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": expenseID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *expenseRepository) SumSince(ctx context.Context, userID string, since time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID, "date": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
