package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monlivredecuisine/backend/internal/service"
	"github.com/monlivredecuisine/backend/internal/testhelpers"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Nom)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	token, err := authSvc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "Al", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = authSvc.Register(ctx, "Bo", "a@x.com", "secret2")
	assert.ErrorIs(t, err, service.ErrDuplicateEmail)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// Wrong password and unknown email fail with the same error.
	_, err = authSvc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = authSvc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenExpired(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", -time.Minute)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	token, err := authSvc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = authSvc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	other := service.NewAuthService(db, "other-secret", time.Hour)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	token, err := authSvc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestGetUserByIDNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)

	_, err := authSvc.GetUserByID(context.Background(), 9999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
