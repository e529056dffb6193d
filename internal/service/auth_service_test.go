package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/internal/model"
)

func TestAuthSignupLoginRoundtrip(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, "test-secret")
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &model.SignupRequest{
		Name:     "Asha",
		Email:    "  Asha@Example.com ",
		Password: "s3cret",
		Language: "hi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, signup.Token)
	assert.NotEmpty(t, signup.UserID)
	assert.False(t, signup.HasProfile)

	stored := repo.users[signup.UserID]
	require.NotNil(t, stored)
	assert.Equal(t, "asha@example.com", stored.Email)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)

	login, err := svc.Login(ctx, &model.LoginRequest{Email: "ASHA@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, signup.UserID, login.UserID)

	claims, err := svc.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.UserID, claims.UserID)
	assert.Equal(t, "hi", claims.Language)
}

func TestAuthSignupDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo(&model.User{ID: "user_1", Email: "asha@example.com"})
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.Signup(context.Background(), &model.SignupRequest{
		Name: "Asha", Email: "asha@example.com", Password: "s3cret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthSignupRejectsEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")

	for _, req := range []*model.SignupRequest{
		{Email: "", Password: "s3cret"},
		{Email: "asha@example.com", Password: ""},
	} {
		_, err := svc.Signup(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, "test-secret")
	ctx := context.Background()

	_, err := svc.Signup(ctx, &model.SignupRequest{
		Name: "Asha", Email: "asha@example.com", Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLoginReportsExistingProfile(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, "test-secret")
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &model.SignupRequest{
		Name: "Asha", Email: "asha@example.com", Password: "s3cret",
	})
	require.NoError(t, err)
	require.NoError(t, repo.UpsertProfile(ctx, signup.UserID, "Skill Level: Ready\nGood work."))

	login, err := svc.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.True(t, login.HasProfile)
}

func TestAuthValidateTokenRejectsForgedToken(t *testing.T) {
	repo := newMemUserRepo()
	issuer := NewAuthService(repo, "real-secret")
	verifier := NewAuthService(repo, "other-secret")
	ctx := context.Background()

	signup, err := issuer.Signup(ctx, &model.SignupRequest{
		Name: "Asha", Email: "asha@example.com", Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(signup.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
