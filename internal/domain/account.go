package domain

import "time"

// Account represents a client account that movements are posted against.
// The ledger treats it as read-only context: Number is immutable after
// creation and OpeningBalance never changes once the account exists.
type Account struct {
	ID             string
	Number         string
	Kind           string
	OpeningBalance Money
	Active         bool
	ClientID       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
