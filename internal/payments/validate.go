// Package payments holds the field-level validation rules for payment
// submissions. All checks are pure functions so they can be exercised
// directly and reused by the request-validation middleware.
package payments

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAccountNumber = errors.New("account number must be 10 digits")
	ErrInvalidSwiftCode     = errors.New("SWIFT code must be 11 characters")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
)

var accountNumberPattern = regexp.MustCompile(`^\d{10}$`)

// ValidateAccountNumber requires exactly 10 decimal digits.
func ValidateAccountNumber(accountNumber string) error {
	if !accountNumberPattern.MatchString(accountNumber) {
		return ErrInvalidAccountNumber
	}
	return nil
}

// ValidateSwiftCode requires exactly 11 characters.
// Real BIC codes may also be 8 characters; the upstream rule only ever
// accepted 11 and that behaviour is kept pending product clarification.
func ValidateSwiftCode(swiftCode string) error {
	if len(swiftCode) != 11 {
		return ErrInvalidSwiftCode
	}
	return nil
}

// ParseAmount parses a payment amount and requires it to be strictly positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
