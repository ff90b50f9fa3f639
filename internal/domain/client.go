package domain

import "time"

// Person holds the identity fields shared by everyone the bank deals with.
// It is a value object embedded in Client rather than a base type.
type Person struct {
	Name       string
	Gender     string
	Age        int
	NationalID string
	Address    string
	Phone      string
}

// Client represents a bank client who can own accounts.
type Client struct {
	ID        string
	Person    Person
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
