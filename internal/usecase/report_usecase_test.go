package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/corebank/internal/domain"
	"github.com/iho/corebank/internal/usecase"
	"github.com/iho/corebank/internal/usecase/mocks"
)

func TestReportUseCase_Statement(t *testing.T) {
	clients := mocks.NewMockClientRepository()
	accounts := mocks.NewMockAccountRepository()
	movements := mocks.NewMockMovementRepository()
	uc := usecase.NewReportUseCase(clients, accounts, movements)

	clients.Create(context.Background(), &domain.Client{
		ID:     "cli-1",
		Person: domain.Person{Name: "Jose Lema"},
		Active: true,
	})
	accounts.Create(context.Background(), &domain.Account{
		ID:             "acc-1",
		Number:         "478758",
		Kind:           "savings",
		OpeningBalance: domain.MustMoney("2000.00"),
		Active:         true,
		ClientID:       "cli-1",
	})

	feb := time.Date(2024, 2, 8, 10, 0, 0, 0, time.UTC)
	movements.ListByClientFn = func(ctx context.Context, clientID string, from, to time.Time) ([]*domain.Movement, error) {
		return []*domain.Movement{
			{
				ID:        "mov-2",
				AccountID: "acc-1",
				Kind:      "Retiro",
				Amount:    domain.MustMoney("-575.00"),
				Balance:   domain.MustMoney("1425.00"),
				CreatedAt: feb.Add(24 * time.Hour),
			},
			{
				ID:        "mov-1",
				AccountID: "acc-1",
				Kind:      "Deposito",
				Amount:    domain.MustMoney("0.00"),
				Balance:   domain.MustMoney("2000.00"),
				CreatedAt: feb,
			},
		}, nil
	}

	lines, err := uc.Statement(context.Background(), "cli-1", feb.Add(-time.Hour), feb.Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Jose Lema", lines[0].Client)
	assert.Equal(t, "478758", lines[0].AccountNumber)
	assert.Equal(t, "savings", lines[0].AccountKind)
	assert.Equal(t, "2000.00", lines[0].OpeningBalance.String())
	assert.True(t, lines[0].Active)
	assert.Equal(t, "-575.00", lines[0].Amount.String())
	assert.Equal(t, "1425.00", lines[0].AvailableBalance.String())

	// Newest first, matching the history listing order.
	assert.True(t, lines[0].Date.After(lines[1].Date))
}

func TestReportUseCase_Statement_UnknownClient(t *testing.T) {
	uc := usecase.NewReportUseCase(mocks.NewMockClientRepository(), mocks.NewMockAccountRepository(), mocks.NewMockMovementRepository())

	_, err := uc.Statement(context.Background(), "cli-missing", time.Time{}, time.Now())
	assert.True(t, errors.Is(err, domain.ErrClientNotFound))
}

func TestReportUseCase_Statement_EmptyRange(t *testing.T) {
	clients := mocks.NewMockClientRepository()
	clients.Create(context.Background(), &domain.Client{ID: "cli-1", Active: true})

	uc := usecase.NewReportUseCase(clients, mocks.NewMockAccountRepository(), mocks.NewMockMovementRepository())

	lines, err := uc.Statement(context.Background(), "cli-1", time.Time{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, lines)
}
