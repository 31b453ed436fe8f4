package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type strings stored alongside each payment record.
const (
	TypeLocalPayment         = "Local Payment"
	TypeInternationalPayment = "International Payment"
)

type User struct {
	ID            string    `json:"userId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	AccountNumber string    `json:"accountNumber"`
	IDNumber      string    `json:"idNumber"`
	CreatedAt     time.Time `json:"createdTimestamp"`
}

type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Recipient     string          `json:"recipient"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"accountNumber"`
	SwiftCode     string          `json:"swiftCode,omitempty"`
	Type          string          `json:"type"`
	CreatedAt     time.Time       `json:"date"`
}
