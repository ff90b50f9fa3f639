package usecase

import (
	"context"

	"github.com/iho/corebank/internal/domain"
)

// AccountUseCase handles account CRUD. Opening balances and account numbers
// are immutable once the account exists; the only mutable field is the active
// flag.
type AccountUseCase struct {
	accounts AccountRepository
	clients  ClientRepository
	clock    Clock
	idGen    IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accounts AccountRepository, clients ClientRepository, clock Clock, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, clients: clients, clock: clock, idGen: idGen}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Number         string
	Kind           string
	OpeningBalance domain.Money
	ClientID       string
}

// CreateAccount creates a new active account for an existing client.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if _, err := uc.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	account := &domain.Account{
		ID:             uc.idGen.Generate(),
		Number:         input.Number,
		Kind:           input.Kind,
		OpeningBalance: input.OpeningBalance,
		Active:         true,
		ClientID:       input.ClientID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accounts.GetByID(ctx, id)
}

// GetAccountByNumber retrieves an account by its account number.
func (uc *AccountUseCase) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	return uc.accounts.GetByNumber(ctx, number)
}

// SetAccountActive flips the account's active flag.
func (uc *AccountUseCase) SetAccountActive(ctx context.Context, id string, active bool) (*domain.Account, error) {
	account, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := uc.accounts.SetActive(ctx, id, active, now); err != nil {
		return nil, err
	}

	account.Active = active
	account.UpdatedAt = now

	return account, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := clampPagination(input.Limit, input.Offset)

	return uc.accounts.List(ctx, limit, offset)
}

// ListClientAccounts lists every account owned by a client.
func (uc *AccountUseCase) ListClientAccounts(ctx context.Context, clientID string) ([]*domain.Account, error) {
	if _, err := uc.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	return uc.accounts.ListByClient(ctx, clientID)
}
