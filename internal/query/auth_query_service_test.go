package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/st10068763/APDS-PEO/internal/auth"
	"github.com/st10068763/APDS-PEO/internal/cqrs"
	"github.com/st10068763/APDS-PEO/internal/models"
	"github.com/st10068763/APDS-PEO/internal/repository"
)

type stubCredentialReader struct {
	users map[string]*models.User
	err   error
}

func (s *stubCredentialReader) GetByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.users[identifier]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func newAuthService(t *testing.T) *AuthQueryService {
	t.Helper()
	hash, err := auth.HashPassword("securepass123")
	require.NoError(t, err)

	alice := &models.User{
		ID:           "usr-abc123",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
	reader := &stubCredentialReader{users: map[string]*models.User{
		"alice":             alice,
		"alice@example.com": alice,
	}}
	issuer := auth.NewTokenIssuer([]byte("unit-test-signing-secret"), time.Hour)
	return NewAuthQueryService(reader, issuer)
}

func TestLogin_ByUsername(t *testing.T) {
	svc := newAuthService(t)

	result, err := svc.Login(context.Background(), cqrs.LoginCommand{
		Identifier: "alice",
		Password:   "securepass123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "usr-abc123", result.User.ID)
}

func TestLogin_ByEmail(t *testing.T) {
	svc := newAuthService(t)

	result, err := svc.Login(context.Background(), cqrs.LoginCommand{
		Identifier: "alice@example.com",
		Password:   "securepass123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	svc := newAuthService(t)

	result, err := svc.Login(context.Background(), cqrs.LoginCommand{
		Identifier: "alice",
		Password:   "securepass123",
	})
	require.NoError(t, err)

	issuer := auth.NewTokenIssuer([]byte("unit-test-signing-secret"), time.Hour)
	claims, err := issuer.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "usr-abc123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_StorageFailureIsNotAuthFailure(t *testing.T) {
	storageErr := errors.New("failed to get user: connection refused")
	reader := &stubCredentialReader{err: storageErr}
	issuer := auth.NewTokenIssuer([]byte("unit-test-signing-secret"), time.Hour)
	svc := NewAuthQueryService(reader, issuer)

	_, err := svc.Login(context.Background(), cqrs.LoginCommand{
		Identifier: "alice",
		Password:   "securepass123",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, storageErr)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, unknownErr := svc.Login(ctx, cqrs.LoginCommand{Identifier: "nobody", Password: "securepass123"})
	_, wrongPassErr := svc.Login(ctx, cqrs.LoginCommand{Identifier: "alice", Password: "wrongpass"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	// Same sentinel either way, so the API layer cannot leak which part failed.
	assert.Equal(t, unknownErr, wrongPassErr)
}
