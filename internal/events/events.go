package events

import "time"

// Event types
const (
	UserRegistered = "user.registered"
	PaymentCreated = "payment.created"
)

// Stream names
const (
	UserEventsStream    = "user.events"
	PaymentEventsStream = "payment.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type UserRegisteredEvent struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PaymentCreatedEvent struct {
	TransactionID string `json:"transactionId"`
	UserID        string `json:"userId"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Type          string `json:"type"`
}
