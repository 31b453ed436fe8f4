package cqrs

type RegisterUserCommand struct {
	FirstName     string
	LastName      string
	Email         string
	Username      string
	Password      string
	AccountNumber string
	IDNumber      string
}

type LoginCommand struct {
	Identifier string
	Password   string
}

// CreatePaymentCommand covers both local and international payments;
// International controls whether a SWIFT code is required.
type CreatePaymentCommand struct {
	UserID        string
	Recipient     string
	Amount        string
	AccountNumber string
	Currency      string
	SwiftCode     string
	International bool
}
