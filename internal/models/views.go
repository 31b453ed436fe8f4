package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionView is the read-optimised projection of a transaction, as served
// by the history endpoint and cached in Redis. UserID is populated for
// ownership checks but never serialised to the API response.
type TransactionView struct {
	ID            string          `json:"id"`
	UserID        string          `json:"-"`
	Recipient     string          `json:"recipient"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"accountNumber"`
	SwiftCode     string          `json:"swiftCode,omitempty"`
	Type          string          `json:"type"`
	CreatedAt     time.Time       `json:"date"`
}
