package usecase

import (
	"context"
	"time"

	"github.com/iho/corebank/internal/domain"
)

// StatementLine is one movement of a client's statement, joined with the
// context of the account it was posted against.
type StatementLine struct {
	Date             time.Time
	Client           string
	AccountNumber    string
	AccountKind      string
	OpeningBalance   domain.Money
	Active           bool
	Amount           domain.Money
	AvailableBalance domain.Money
}

// ReportUseCase builds movement statements per client and date range.
type ReportUseCase struct {
	clients   ClientRepository
	accounts  AccountRepository
	movements MovementRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(clients ClientRepository, accounts AccountRepository, movements MovementRepository) *ReportUseCase {
	return &ReportUseCase{clients: clients, accounts: accounts, movements: movements}
}

// Statement returns the client's movements in [from, to], newest first, each
// line carrying the owning account's context.
func (uc *ReportUseCase) Statement(ctx context.Context, clientID string, from, to time.Time) ([]StatementLine, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.accounts.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	movements, err := uc.movements.ListByClientBetween(ctx, clientID, from, to)
	if err != nil {
		return nil, err
	}

	lines := make([]StatementLine, 0, len(movements))
	for _, m := range movements {
		account := byID[m.AccountID]
		if account == nil {
			continue
		}

		lines = append(lines, StatementLine{
			Date:             m.CreatedAt,
			Client:           client.Person.Name,
			AccountNumber:    account.Number,
			AccountKind:      account.Kind,
			OpeningBalance:   account.OpeningBalance,
			Active:           account.Active,
			Amount:           m.Amount,
			AvailableBalance: m.Balance,
		})
	}

	return lines, nil
}
