package managers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
)

// shareTokenBytes sizes the random token. 32 bytes of entropy makes tokens
// unguessable; they are never sequential.
const shareTokenBytes = 32

type shareManager struct {
	shareRepository domain.ShareRepository
	fileRepository  domain.FileRepository
	publicBaseURL   string
}

type ShareManagerDependencies struct {
	ShareRepository domain.ShareRepository
	FileRepository  domain.FileRepository
	PublicBaseURL   string
}

func NewShareManager(deps ShareManagerDependencies) domain.ShareService {
	return &shareManager{
		shareRepository: deps.ShareRepository,
		fileRepository:  deps.FileRepository,
		publicBaseURL:   deps.PublicBaseURL,
	}
}

func (m *shareManager) CreateShareLink(ctx context.Context, params domain.CreateShareLinkParams) (domain.CreateShareLinkResult, error) {
	if params.AccessLevel != domain.ShareAccessView && params.AccessLevel != domain.ShareAccessEdit {
		return domain.CreateShareLinkResult{}, domain.NewValidationError("access_level", "must be view or edit")
	}
	if params.ExpiresAt != nil && !params.ExpiresAt.After(time.Now()) {
		return domain.CreateShareLinkResult{}, domain.NewValidationError("expires_at", "must be in the future")
	}

	if _, err := m.fileRepository.Get(ctx, params.UserID, params.FileID); err != nil {
		return domain.CreateShareLinkResult{}, fmt.Errorf("failed to resolve file: %w", err)
	}

	token, err := newShareToken()
	if err != nil {
		return domain.CreateShareLinkResult{}, fmt.Errorf("failed to generate share token: %w", err)
	}

	link := domain.ShareLink{
		ID:          xid.New().String(),
		FileID:      params.FileID,
		UserID:      params.UserID,
		AccessLevel: params.AccessLevel,
		Token:       token,
		ExpiresAt:   params.ExpiresAt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := m.shareRepository.Insert(ctx, link); err != nil {
		return domain.CreateShareLinkResult{}, fmt.Errorf("failed to persist share link: %w", err)
	}

	return domain.CreateShareLinkResult{
		Token:    token,
		ShareURL: fmt.Sprintf("%s/share?token=%s", m.publicBaseURL, url.QueryEscape(token)),
	}, nil
}

func newShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// ResolveShareLink returns the referenced entry at the granted access level.
// Validity is re-derived from expires_at on every call. Callers must surface
// ErrExpired and ErrNotFound identically to visitors.
func (m *shareManager) ResolveShareLink(ctx context.Context, token string) (domain.SharedFile, error) {
	link, err := m.shareRepository.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.SharedFile{}, domain.ErrNotFound
		}
		return domain.SharedFile{}, fmt.Errorf("failed to look up share token: %w", err)
	}

	if link.ExpiresAt != nil && !time.Now().Before(*link.ExpiresAt) {
		return domain.SharedFile{}, domain.ErrExpired
	}

	entry, err := m.fileRepository.Get(ctx, link.UserID, link.FileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The file was deleted after the link was minted.
			return domain.SharedFile{}, domain.ErrNotFound
		}
		return domain.SharedFile{}, fmt.Errorf("failed to load shared file: %w", err)
	}

	return domain.SharedFile{Entry: entry, AccessLevel: link.AccessLevel}, nil
}

func (m *shareManager) PurgeExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	purged, err := m.shareRepository.DeleteExpiredBefore(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired share links: %w", err)
	}
	return purged, nil
}
