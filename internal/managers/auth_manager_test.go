package managers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/auth"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

func newAuthManagerForTest(t *testing.T) (domain.AuthService, *auth.TokenIssuer) {
	t.Helper()

	issuer, err := auth.NewTokenIssuer("test-secret-do-not-use", time.Hour)
	require.NoError(t, err)

	service := NewAuthManager(AuthManagerDependencies{
		UserRepository: newFakeUserRepository(),
		TokenIssuer:    issuer,
	})

	return service, issuer
}

func TestRegister(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		service, issuer := newAuthManagerForTest(t)

		result, err := service.Register(context.Background(), domain.RegisterParams{
			Email:       "  Jordan@Example.COM ",
			Password:    "correct horse",
			DisplayName: " Jordan ",
		})
		require.NoError(t, err)

		assert.Equal(t, "jordan@example.com", result.User.Email)
		assert.Equal(t, "Jordan", result.User.DisplayName)
		assert.NotEqual(t, "correct horse", result.User.PasswordHash, "password must not be stored in clear")

		userID, err := issuer.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, userID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, _ := newAuthManagerForTest(t)

		params := domain.RegisterParams{Email: "jordan@example.com", Password: "correct horse"}
		_, err := service.Register(context.Background(), params)
		require.NoError(t, err)

		_, err = service.Register(context.Background(), params)
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("validation", func(t *testing.T) {
		service, _ := newAuthManagerForTest(t)

		_, err := service.Register(context.Background(), domain.RegisterParams{Email: "not-an-address", Password: "correct horse"})
		assert.True(t, domain.IsValidation(err))

		_, err = service.Register(context.Background(), domain.RegisterParams{Email: "jordan@example.com", Password: "short"})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestLogin(t *testing.T) {
	service, issuer := newAuthManagerForTest(t)

	registered, err := service.Register(context.Background(), domain.RegisterParams{
		Email:    "jordan@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := service.Login(context.Background(), "Jordan@Example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, result.User.ID)

		userID, err := issuer.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), "jordan@example.com", "battery staple")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestGetUser(t *testing.T) {
	service, _ := newAuthManagerForTest(t)

	registered, err := service.Register(context.Background(), domain.RegisterParams{
		Email:    "jordan@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	user, err := service.GetUser(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", user.Email)

	_, err = service.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
