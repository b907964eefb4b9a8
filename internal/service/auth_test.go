package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriflow/backend/internal/models"
	"github.com/nutriflow/backend/internal/testhelpers"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	token, err := svc.Register(ctx, "Alex", "alex@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Registration creates an empty profile row for onboarding to fill.
	var user models.User
	require.NoError(t, db.Where("email = ?", "alex@example.com").First(&user).Error)
	var profile models.UserProfile
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)

	// Password is stored hashed.
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	loginToken, err := svc.Login(ctx, "alex@example.com", "hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alex", "alex@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "alex@example.com", "different-pass")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alex", "alex@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alex@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	token, err := svc.Register(ctx, "Alex", "alex@example.com", "hunter2hunter2")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", claims.Email)

	_, err = svc.ValidateToken("invalid.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A token signed with a different secret must be rejected.
	other := NewAuthService(db, "other-secret")
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
