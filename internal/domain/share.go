package domain

import (
	"context"
	"time"
)

type ShareAccessLevel string

const (
	ShareAccessView ShareAccessLevel = "view"
	ShareAccessEdit ShareAccessLevel = "edit"
)

// ShareLink is a capability granting access to one FileEntry without the
// grantee authenticating as the owner. A link is valid iff expires_at is
// unset or in the future; validity is re-derived at resolution time, never
// cached. Expiry is the only termination mechanism.
type ShareLink struct {
	ID          string           `bson:"id" json:"id"`
	FileID      string           `bson:"file_id" json:"file_id"`
	UserID      string           `bson:"user_id" json:"user_id"`
	AccessLevel ShareAccessLevel `bson:"access_level" json:"access_level"`
	Token       string           `bson:"token" json:"token"`
	ExpiresAt   *time.Time       `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
}

type CreateShareLinkParams struct {
	UserID      string
	FileID      string
	AccessLevel ShareAccessLevel
	ExpiresAt   *time.Time
}

type CreateShareLinkResult struct {
	Token    string `json:"token"`
	ShareURL string `json:"share_url"`
}

// SharedFile is a resolved share: the referenced entry at the granted level.
type SharedFile struct {
	Entry       FileEntry        `json:"entry"`
	AccessLevel ShareAccessLevel `json:"access_level"`
}

type ShareService interface {
	CreateShareLink(ctx context.Context, params CreateShareLinkParams) (CreateShareLinkResult, error)
	ResolveShareLink(ctx context.Context, token string) (SharedFile, error)
	PurgeExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

type ShareRepository interface {
	Insert(ctx context.Context, link ShareLink) error
	GetByToken(ctx context.Context, token string) (ShareLink, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
