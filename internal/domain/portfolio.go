package domain

import (
	"context"
	"time"
)

type PortfolioSection struct {
	Title       string  `bson:"title" json:"title"`
	Body        string  `bson:"body" json:"body"`
	ImageFileID *string `bson:"image_file_id,omitempty" json:"image_file_id,omitempty"`
}

type Portfolio struct {
	ID        string             `bson:"id" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Headline  string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Sections  []PortfolioSection `bson:"sections" json:"sections"`
	Theme     string             `bson:"theme,omitempty" json:"theme,omitempty"`
	Published bool               `bson:"published" json:"published"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type PortfolioService interface {
	ListPortfolios(ctx context.Context, userID string) ([]Portfolio, error)
	GetPortfolio(ctx context.Context, userID, portfolioID string) (Portfolio, error)
	GetPublished(ctx context.Context, slug string) (Portfolio, error)
	CreatePortfolio(ctx context.Context, portfolio Portfolio) (Portfolio, error)
	UpdatePortfolio(ctx context.Context, portfolio Portfolio) (Portfolio, error)
	SetPublished(ctx context.Context, userID, portfolioID string, published bool) (Portfolio, error)
	DeletePortfolio(ctx context.Context, userID, portfolioID string) error
	ExportPDF(ctx context.Context, userID, portfolioID string) ([]byte, error)
}

type PortfolioRepository interface {
	Insert(ctx context.Context, portfolio Portfolio) error
	Get(ctx context.Context, userID, portfolioID string) (Portfolio, error)
	GetBySlug(ctx context.Context, slug string) (Portfolio, error)
	List(ctx context.Context, userID string) ([]Portfolio, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, portfolio Portfolio) error
	Delete(ctx context.Context, userID, portfolioID string) error
}
