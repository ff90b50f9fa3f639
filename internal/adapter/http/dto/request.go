package dto

import (
	"github.com/iho/corebank/internal/domain"
	"github.com/iho/corebank/internal/usecase"
)

// PersonPayload carries the person fields shared by client requests.
type PersonPayload struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

func (p *PersonPayload) toDomain() domain.Person {
	return domain.Person{
		Name:       p.Name,
		Gender:     p.Gender,
		Age:        p.Age,
		NationalID: p.NationalID,
		Address:    p.Address,
		Phone:      p.Phone,
	}
}

// CreateClientRequest represents a request to create a client.
type CreateClientRequest struct {
	PersonPayload
}

// ToUseCaseInput converts to use case input.
func (r *CreateClientRequest) ToUseCaseInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{Person: r.toDomain()}
}

// UpdateClientRequest represents a request to update a client.
type UpdateClientRequest struct {
	PersonPayload
	Active bool `json:"active"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateClientRequest) ToUseCaseInput() usecase.UpdateClientInput {
	return usecase.UpdateClientInput{Person: r.toDomain(), Active: r.Active}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Number         string       `json:"number"`
	Kind           string       `json:"kind"`
	OpeningBalance domain.Money `json:"opening_balance"`
	ClientID       string       `json:"client_id"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Number:         r.Number,
		Kind:           r.Kind,
		OpeningBalance: r.OpeningBalance,
		ClientID:       r.ClientID,
	}
}

// SetAccountActiveRequest flips an account's active flag.
type SetAccountActiveRequest struct {
	Active bool `json:"active"`
}

// PostMovementRequest represents a proposed movement. Amount is signed:
// positive deposits, negative withdrawals.
type PostMovementRequest struct {
	AccountNumber string       `json:"account_number"`
	Kind          string       `json:"kind"`
	Amount        domain.Money `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *PostMovementRequest) ToUseCaseInput() usecase.PostMovementInput {
	return usecase.PostMovementInput{
		AccountNumber: r.AccountNumber,
		Kind:          r.Kind,
		Amount:        r.Amount,
	}
}

// RelabelMovementRequest corrects a movement's kind label.
type RelabelMovementRequest struct {
	Kind string `json:"kind"`
}
