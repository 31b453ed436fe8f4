package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/st10068763/APDS-PEO/internal/auth"
	"github.com/st10068763/APDS-PEO/internal/cqrs"
	"github.com/st10068763/APDS-PEO/internal/models"
	"github.com/st10068763/APDS-PEO/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown identifier and for a wrong
// password alike, so responses cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialReader is the slice of the user repository needed for login.
type CredentialReader interface {
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}

// LoginResult carries the issued token and the authenticated user's profile.
type LoginResult struct {
	Token string
	User  *models.User
}

// AuthQueryService handles login. There is no command service for auth
// because logging in does not mutate application state.
type AuthQueryService struct {
	users  CredentialReader
	issuer *auth.TokenIssuer
}

func NewAuthQueryService(users CredentialReader, issuer *auth.TokenIssuer) *AuthQueryService {
	return &AuthQueryService{users: users, issuer: issuer}
}

func (s *AuthQueryService) Login(ctx context.Context, cmd cqrs.LoginCommand) (*LoginResult, error) {
	user, err := s.users.GetByIdentifier(ctx, cmd.Identifier)
	if err != nil {
		// Only a missing user is an authentication failure; a storage outage
		// must surface as an internal error, not a 401.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !auth.CheckPassword(cmd.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}
