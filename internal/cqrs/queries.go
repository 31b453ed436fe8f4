package cqrs

// ListTransactionsQuery fetches the most recent transactions for a user,
// newest first.
type ListTransactionsQuery struct {
	UserID string
}
