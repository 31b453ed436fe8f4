package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/st10068763/APDS-PEO/internal/auth"
	"github.com/st10068763/APDS-PEO/internal/cqrs"
	"github.com/st10068763/APDS-PEO/internal/events"
	"github.com/st10068763/APDS-PEO/internal/models"
	"github.com/st10068763/APDS-PEO/internal/repository"
	"github.com/st10068763/APDS-PEO/internal/utils"
)

// UserWriter is the slice of the user repository needed for registration.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// EventPublisher publishes domain events; failures must not fail the request.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// UserCommandService registers new users. The plaintext password never leaves
// this service: it is hashed before the user record is built.
type UserCommandService struct {
	users     UserWriter
	publisher EventPublisher
}

func NewUserCommandService(users UserWriter, publisher EventPublisher) *UserCommandService {
	return &UserCommandService{users: users, publisher: publisher}
}

func (s *UserCommandService) RegisterUser(ctx context.Context, cmd cqrs.RegisterUserCommand) (*models.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrDuplicateUsername
	}

	passwordHash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:            utils.GenerateID("usr"),
		FirstName:     cmd.FirstName,
		LastName:      cmd.LastName,
		Email:         cmd.Email,
		Username:      cmd.Username,
		PasswordHash:  passwordHash,
		AccountNumber: cmd.AccountNumber,
		IDNumber:      cmd.IDNumber,
		CreatedAt:     time.Now().UTC(),
	}
	// The unique constraint on username backstops the ExistsByUsername check
	// against concurrent registrations.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserRegistered, events.UserRegisteredEvent{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}); err != nil {
		slog.Warn("failed to publish user.registered event", "userId", user.ID, "error", err)
	}
	return user, nil
}
