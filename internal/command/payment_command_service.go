package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/st10068763/APDS-PEO/internal/cqrs"
	"github.com/st10068763/APDS-PEO/internal/events"
	"github.com/st10068763/APDS-PEO/internal/models"
	"github.com/st10068763/APDS-PEO/internal/payments"
	"github.com/st10068763/APDS-PEO/internal/utils"
)

// UserDirectory is the slice of the user repository needed to confirm the
// paying user exists.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// TransactionAppender is the append-only write path for payment records.
type TransactionAppender interface {
	Create(ctx context.Context, transaction *models.Transaction) error
}

// TransactionCacheInvalidator drops the cached history view after a write.
type TransactionCacheInvalidator interface {
	InvalidateUserTransactions(ctx context.Context, userID string)
}

// PaymentCommandService validates and records payment submissions. Recorded
// transactions are immutable; there is no update or cancel path.
type PaymentCommandService struct {
	users       UserDirectory
	writeRepo   TransactionAppender
	invalidator TransactionCacheInvalidator
	publisher   EventPublisher
}

func NewPaymentCommandService(
	users UserDirectory,
	writeRepo TransactionAppender,
	invalidator TransactionCacheInvalidator,
	publisher EventPublisher,
) *PaymentCommandService {
	return &PaymentCommandService{
		users:       users,
		writeRepo:   writeRepo,
		invalidator: invalidator,
		publisher:   publisher,
	}
}

func (s *PaymentCommandService) CreatePayment(ctx context.Context, cmd cqrs.CreatePaymentCommand) (*models.Transaction, error) {
	if err := payments.ValidateAccountNumber(cmd.AccountNumber); err != nil {
		return nil, err
	}
	if cmd.International {
		if err := payments.ValidateSwiftCode(cmd.SwiftCode); err != nil {
			return nil, err
		}
	}
	amount, err := payments.ParseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	transactionType := models.TypeLocalPayment
	swiftCode := ""
	if cmd.International {
		transactionType = models.TypeInternationalPayment
		swiftCode = cmd.SwiftCode
	}
	transaction := &models.Transaction{
		ID:            utils.GenerateID("tan"),
		UserID:        cmd.UserID,
		Recipient:     cmd.Recipient,
		Amount:        amount,
		Currency:      cmd.Currency,
		AccountNumber: cmd.AccountNumber,
		SwiftCode:     swiftCode,
		Type:          transactionType,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.writeRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}
	s.invalidator.InvalidateUserTransactions(ctx, cmd.UserID)

	if err := s.publisher.Publish(ctx, events.PaymentEventsStream, events.PaymentCreated, events.PaymentCreatedEvent{
		TransactionID: transaction.ID,
		UserID:        transaction.UserID,
		Amount:        transaction.Amount.String(),
		Currency:      transaction.Currency,
		Type:          transaction.Type,
	}); err != nil {
		slog.Warn("failed to publish payment.created event", "transactionId", transaction.ID, "error", err)
	}
	return transaction, nil
}
