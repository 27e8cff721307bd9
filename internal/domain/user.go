package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	DisplayName  string    `bson:"display_name" json:"display_name"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

type RegisterParams struct {
	Email       string
	Password    string
	DisplayName string
}

type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (LoginResult, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	GetUser(ctx context.Context, userID string) (User, error)
}

type UserRepository interface {
	Insert(ctx context.Context, user User) error
	Get(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
