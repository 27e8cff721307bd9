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

type invoiceRepository struct {
	database *mongo.Database
}

func NewInvoiceRepository(database *mongo.Database) domain.InvoiceRepository {
	return &invoiceRepository{database: database}
}

func (r *invoiceRepository) collection() *mongo.Collection {
	return r.database.Collection(invoicesCollection)
}

func (r *invoiceRepository) Insert(ctx context.Context, invoice domain.Invoice) error {
	if _, err := r.collection().InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, userID, invoiceID string) (domain.Invoice, error) {
	var invoice domain.Invoice

	err := r.collection().FindOne(ctx, bson.M{"id": invoiceID, "user_id": userID}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Invoice{}, domain.ErrNotFound
		}
		return domain.Invoice{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, userID string, status *domain.InvoiceStatus) ([]domain.Invoice, error) {
	filter := bson.M{"user_id": userID}
	if status != nil {
		filter["status"] = *status
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "issue_date", Value: -1}})

	cursor, err := r.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer cursor.Close(ctx)

	invoices := []domain.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return invoices, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice domain.Invoice) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"id": invoice.ID, "user_id": invoice.UserID}, invoice)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, userID, invoiceID string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"id": invoiceID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkOverdueBefore flips sent invoices with a due date before the cutoff.
func (r *invoiceRepository) MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.collection().UpdateMany(ctx,
		bson.M{"status": domain.InvoiceStatusSent, "due_date": bson.M{"$lt": cutoff}},
		bson.M{"$set": bson.M{"status": domain.InvoiceStatusOverdue, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return result.ModifiedCount, nil
}
