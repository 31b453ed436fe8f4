package repository

import (
	"context"
	"database/sql"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/st10068763/APDS-PEO/internal/cache"
	"github.com/st10068763/APDS-PEO/internal/models"
)

const transactionViewKeyPrefix = "transactions:view:user:"

// RecentTransactionLimit caps how many history entries are served per user.
const RecentTransactionLimit = 10

// TransactionReadRepository serves transaction history. It uses Redis as the
// primary read store, falling back to PostgreSQL on a miss.
type TransactionReadRepository struct {
	db    *sql.DB
	cache *cache.ViewCache[[]models.TransactionView]
}

func NewTransactionReadRepository(db *sql.DB, redisClient *goredis.Client) *TransactionReadRepository {
	return &TransactionReadRepository{
		db:    db,
		cache: cache.NewViewCache[[]models.TransactionView](redisClient, 0),
	}
}

// ListByUser returns the user's most recent transactions, newest first,
// from Redis first and PostgreSQL on a miss.
func (r *TransactionReadRepository) ListByUser(ctx context.Context, userID string) ([]models.TransactionView, error) {
	cacheKey := transactionViewKeyPrefix + userID

	if views, ok := r.cache.Get(ctx, cacheKey); ok {
		return *views, nil
	}

	// Fallback: PostgreSQL
	query := `
		SELECT id, user_id, recipient, amount, currency, account_number, swift_code, type, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	views := make([]models.TransactionView, 0, RecentTransactionLimit)
	for rows.Next() {
		var view models.TransactionView
		var swiftCode sql.NullString
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.Recipient, &view.Amount, &view.Currency,
			&view.AccountNumber, &swiftCode, &view.Type, &view.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if swiftCode.Valid {
			view.SwiftCode = swiftCode.String
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// Warm the cache
	r.cache.Set(ctx, cacheKey, &views)
	return views, nil
}

// InvalidateUserTransactions drops the cached history after a new payment so
// the next read repopulates from PostgreSQL.
func (r *TransactionReadRepository) InvalidateUserTransactions(ctx context.Context, userID string) {
	r.cache.Delete(ctx, transactionViewKeyPrefix+userID)
}
