package domain

import (
	"context"
	"time"
)

type ClientStatus string

const (
	ClientStatusLead     ClientStatus = "lead"
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

type Client struct {
	ID        string       `bson:"id" json:"id"`
	UserID    string       `bson:"user_id" json:"user_id"`
	Name      string       `bson:"name" json:"name"`
	Company   string       `bson:"company,omitempty" json:"company,omitempty"`
	Email     string       `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Status    ClientStatus `bson:"status" json:"status"`
	Notes     string       `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}

type ClientService interface {
	ListClients(ctx context.Context, userID string, status *ClientStatus) ([]Client, error)
	GetClient(ctx context.Context, userID, clientID string) (Client, error)
	CreateClient(ctx context.Context, client Client) (Client, error)
	UpdateClient(ctx context.Context, client Client) (Client, error)
	DeleteClient(ctx context.Context, userID, clientID string) error
}

type ClientRepository interface {
	Insert(ctx context.Context, client Client) error
	Get(ctx context.Context, userID, clientID string) (Client, error)
	List(ctx context.Context, userID string, status *ClientStatus) ([]Client, error)
	Update(ctx context.Context, client Client) error
	Delete(ctx context.Context, userID, clientID string) error
}
