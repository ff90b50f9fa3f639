package dto

import (
	"time"

	"github.com/iho/corebank/internal/domain"
	"github.com/iho/corebank/internal/usecase"
)

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	Age        int       `json:"age"`
	NationalID string    `json:"national_id"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientFromDomain converts a domain client to a response.
func ClientFromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:         c.ID,
		Name:       c.Person.Name,
		Gender:     c.Person.Gender,
		Age:        c.Person.Age,
		NationalID: c.Person.NationalID,
		Address:    c.Person.Address,
		Phone:      c.Person.Phone,
		Active:     c.Active,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ClientsFromDomain converts domain clients to responses.
func ClientsFromDomain(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}

	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID             string       `json:"id"`
	Number         string       `json:"number"`
	Kind           string       `json:"kind"`
	OpeningBalance domain.Money `json:"opening_balance"`
	Active         bool         `json:"active"`
	ClientID       string       `json:"client_id"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		Number:         a.Number,
		Kind:           a.Kind,
		OpeningBalance: a.OpeningBalance,
		Active:         a.Active,
		ClientID:       a.ClientID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}

	return result
}

// MovementResponse represents a movement in API responses.
type MovementResponse struct {
	ID        string       `json:"id"`
	AccountID string       `json:"account_id"`
	Kind      string       `json:"kind"`
	Amount    domain.Money `json:"amount"`
	Balance   domain.Money `json:"balance"`
	CreatedAt time.Time    `json:"created_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:        m.ID,
		AccountID: m.AccountID,
		Kind:      m.Kind,
		Amount:    m.Amount,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}

	return result
}

// BalanceResponse carries an account's derived balance.
type BalanceResponse struct {
	AccountID string       `json:"account_id"`
	Balance   domain.Money `json:"balance"`
}

// StatementLineResponse is one row of a client statement.
type StatementLineResponse struct {
	Date             time.Time    `json:"date"`
	Client           string       `json:"client"`
	AccountNumber    string       `json:"account_number"`
	AccountKind      string       `json:"account_kind"`
	OpeningBalance   domain.Money `json:"opening_balance"`
	Active           bool         `json:"active"`
	Amount           domain.Money `json:"amount"`
	AvailableBalance domain.Money `json:"available_balance"`
}

// StatementFromUseCase converts statement lines to responses.
func StatementFromUseCase(lines []usecase.StatementLine) []*StatementLineResponse {
	result := make([]*StatementLineResponse, len(lines))
	for i, l := range lines {
		result[i] = &StatementLineResponse{
			Date:             l.Date,
			Client:           l.Client,
			AccountNumber:    l.AccountNumber,
			AccountKind:      l.AccountKind,
			OpeningBalance:   l.OpeningBalance,
			Active:           l.Active,
			Amount:           l.Amount,
			AvailableBalance: l.AvailableBalance,
		}
	}

	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
