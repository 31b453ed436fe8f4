package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/st10068763/APDS-PEO/internal/models"
)

// TransactionWriteRepository handles the append-only write path for payment
// records. It operates exclusively against the PostgreSQL write store
// (source of truth); transactions are never updated or deleted.
type TransactionWriteRepository struct {
	db *sql.DB
}

func NewTransactionWriteRepository(db *sql.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

func (r *TransactionWriteRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, recipient, amount, currency, account_number, swift_code, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		transaction.ID, transaction.UserID, transaction.Recipient,
		transaction.Amount, transaction.Currency, transaction.AccountNumber,
		nullString(transaction.SwiftCode), transaction.Type, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
