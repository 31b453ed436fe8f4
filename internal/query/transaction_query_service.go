package query

import (
	"context"

	"github.com/st10068763/APDS-PEO/internal/cqrs"
	"github.com/st10068763/APDS-PEO/internal/models"
)

// TransactionLister is the read path for transaction history.
type TransactionLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.TransactionView, error)
}

// TransactionQueryService serves transaction history reads.
type TransactionQueryService struct {
	reads TransactionLister
}

func NewTransactionQueryService(reads TransactionLister) *TransactionQueryService {
	return &TransactionQueryService{reads: reads}
}

// ListRecent returns the user's most recent transactions, newest first.
func (s *TransactionQueryService) ListRecent(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.TransactionView, error) {
	return s.reads.ListByUser(ctx, q.UserID)
}
