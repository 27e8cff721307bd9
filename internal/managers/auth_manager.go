package managers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/auth"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
)

type authManager struct {
	userRepository domain.UserRepository
	tokenIssuer    *auth.TokenIssuer
}

type AuthManagerDependencies struct {
	UserRepository domain.UserRepository
	TokenIssuer    *auth.TokenIssuer
}

func NewAuthManager(deps AuthManagerDependencies) domain.AuthService {
	return &authManager{
		userRepository: deps.UserRepository,
		tokenIssuer:    deps.TokenIssuer,
	}
}

func (m *authManager) Register(ctx context.Context, params domain.RegisterParams) (domain.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.LoginResult{}, domain.NewValidationError("email", "must be a valid address")
	}
	if len(params.Password) < 8 {
		return domain.LoginResult{}, domain.NewValidationError("password", "must be at least 8 characters")
	}

	if _, err := m.userRepository.GetByEmail(ctx, email); err == nil {
		return domain.LoginResult{}, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.LoginResult{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return domain.LoginResult{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           xid.New().String(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(params.DisplayName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := m.userRepository.Insert(ctx, user); err != nil {
		return domain.LoginResult{}, fmt.Errorf("failed to insert user: %w", err)
	}

	token, err := m.tokenIssuer.Issue(user.ID)
	if err != nil {
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{User: user, Token: token}, nil
}

func (m *authManager) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	user, err := m.userRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.LoginResult{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResult{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}

	token, err := m.tokenIssuer.Issue(user.ID)
	if err != nil {
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{User: user, Token: token}, nil
}

func (m *authManager) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := m.userRepository.Get(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
