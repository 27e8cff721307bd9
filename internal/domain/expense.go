package domain

import (
	"context"
	"time"
)

type Expense struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	ProjectID     *string   `bson:"project_id,omitempty" json:"project_id,omitempty"`
	Description   string    `bson:"description" json:"description"`
	Category      string    `bson:"category,omitempty" json:"category,omitempty"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	Date          time.Time `bson:"date" json:"date"`
	ReceiptFileID *string   `bson:"receipt_file_id,omitempty" json:"receipt_file_id,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

type ExpenseService interface {
	ListExpenses(ctx context.Context, userID string, from, to *time.Time) ([]Expense, error)
	GetExpense(ctx context.Context, userID, expenseID string) (Expense, error)
	CreateExpense(ctx context.Context, expense Expense) (Expense, error)
	UpdateExpense(ctx context.Context, expense Expense) (Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
	ExportExpenses(ctx context.Context, userID string) ([]byte, error)
}

type ExpenseRepository interface {
	Insert(ctx context.Context, expense Expense) error
	Get(ctx context.Context, userID, expenseID string) (Expense, error)
	List(ctx context.Context, userID string, from, to *time.Time) ([]Expense, error)
	Update(ctx context.Context, expense Expense) error
	Delete(ctx context.Context, userID, expenseID string) error
	SumSince(ctx context.Context, userID string, since time.Time) (float64, error)
}
