package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/tokens"
	"github.com/skillbridge/skillbridge/internal/transport"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Repo: newTestRepo(t),
		Tokens: &tokens.Manager{
			Secret:   []byte("test-signing-secret"),
			Issuer:   "skillbridge-test",
			Audience: "skillbridge-test",
		},
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	base := transport.RegisterRequest{
		Name:       "Ana Souza",
		Email:      "ana@example.com",
		Password:   "Secret123",
		NationalID: "12345678901",
	}

	tests := []struct {
		name   string
		mutate func(*transport.RegisterRequest)
	}{
		{name: "empty name", mutate: func(r *transport.RegisterRequest) { r.Name = "" }},
		{name: "empty email", mutate: func(r *transport.RegisterRequest) { r.Email = "" }},
		{name: "empty password", mutate: func(r *transport.RegisterRequest) { r.Password = "" }},
		{name: "empty national id", mutate: func(r *transport.RegisterRequest) { r.NationalID = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			_, err := svc.Register(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	assert.EqualValues(t, 0, countRows(t, svc.Repo, &models.User{}))
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, transport.RegisterRequest{
		Name:       "Ana Souza",
		Email:      "ana@example.com",
		Password:   "Secret123",
		NationalID: "12345678901",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	assert.NotEqual(t, "Secret123", user.PasswordHash)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2"))
	assert.False(t, user.RegisteredAt.IsZero())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	first := transport.RegisterRequest{
		Name:       "Ana Souza",
		Email:      "ana@example.com",
		Password:   "Secret123",
		NationalID: "12345678901",
	}
	_, err := svc.Register(ctx, first)
	require.NoError(t, err)

	second := first
	second.NationalID = "98765432109"
	_, err = svc.Register(ctx, second)
	require.Error(t, err)

	var conflict *dberr.Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)
	assert.Equal(t, dberr.KindUnique, conflict.Kind)
	assert.Equal(t, "Email already registered", conflict.Message)

	assert.EqualValues(t, 1, countRows(t, svc.Repo, &models.User{}))
}

func TestAuthService_Register_DuplicateNationalID(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	first := transport.RegisterRequest{
		Name:       "Ana Souza",
		Email:      "ana@example.com",
		Password:   "Secret123",
		NationalID: "12345678901",
	}
	_, err := svc.Register(ctx, first)
	require.NoError(t, err)

	second := first
	second.Email = "other@example.com"
	_, err = svc.Register(ctx, second)
	require.Error(t, err)

	var conflict *dberr.Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "national_id", conflict.Field)
	assert.Equal(t, "National ID already registered", conflict.Message)

	// A rejected attempt does not burn the values of the failed request.
	third := first
	third.Email = "other@example.com"
	third.NationalID = "98765432109"
	_, err = svc.Register(ctx, third)
	require.NoError(t, err)
	assert.EqualValues(t, 2, countRows(t, svc.Repo, &models.User{}))
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, transport.RegisterRequest{
		Name:       "Ana Souza",
		Email:      "ana@example.com",
		Password:   "Secret123",
		NationalID: "12345678901",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ana@example.com", "Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, user.ID, res.User.ID)

	claims, err := svc.Tokens.Parse(res.Token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, transport.RegisterRequest{
		Name:       "Ana Souza",
		Email:      "ana@example.com",
		Password:   "Secret123",
		NationalID: "12345678901",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "ana@example.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "Secret123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "Secret123")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(ctx, "ana@example.com", "")
	assert.ErrorIs(t, err, ErrValidation)
}
