package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/corebank/internal/domain"
)

// LedgerUseCase is the sole mutation path for an account's movement history.
// It serializes accept operations per account, derives the current balance
// from the stored movements and stamps every accepted movement with the
// balance it leaves behind.
type LedgerUseCase struct {
	accounts   AccountRepository
	movements  MovementRepository
	locks      *accountLocks
	clock      Clock
	idGen      IDGenerator
	dailyLimit domain.Money
	dayZone    *time.Location
}

// LedgerConfig holds the construction-time constants of the ledger.
type LedgerConfig struct {
	// DailyWithdrawalLimit caps the sum of absolute debit amounts accepted
	// for one account within one calendar day.
	DailyWithdrawalLimit domain.Money

	// DayZone is the time zone whose calendar date defines the withdrawal
	// window. Defaults to the host's local zone.
	DayZone *time.Location
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	accounts AccountRepository,
	movements MovementRepository,
	clock Clock,
	idGen IDGenerator,
	cfg LedgerConfig,
) *LedgerUseCase {
	zone := cfg.DayZone
	if zone == nil {
		zone = time.Local
	}

	return &LedgerUseCase{
		accounts:   accounts,
		movements:  movements,
		locks:      newAccountLocks(),
		clock:      clock,
		idGen:      idGen,
		dailyLimit: cfg.DailyWithdrawalLimit,
		dayZone:    zone,
	}
}

// PostMovementInput represents a proposed movement.
type PostMovementInput struct {
	AccountNumber string
	Kind          string
	Amount        domain.Money
}

// PostMovement validates and records a movement against an account.
//
// At most one accept operation per account is in flight at a time: the
// account's lock is taken before the ledger state is read and released only
// after the movement is persisted or the operation fails. Rejections persist
// nothing.
func (uc *LedgerUseCase) PostMovement(ctx context.Context, input PostMovementInput) (*domain.Movement, error) {
	account, err := uc.accounts.GetByNumber(ctx, input.AccountNumber)
	if err != nil {
		return nil, err
	}

	lock := uc.locks.get(account.ID)
	lock.Lock()
	defer lock.Unlock()

	balance, err := uc.deriveBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	from, to := uc.dayWindow(now)
	debitsToday, err := uc.movements.SumDebitsBetween(ctx, account.ID, from, to)
	if err != nil {
		return nil, err
	}

	newBalance, err := domain.EvaluateMovement(account, balance, debitsToday, input.Amount, uc.dailyLimit)
	if err != nil {
		return nil, err
	}

	movement := &domain.Movement{
		ID:        uc.idGen.Generate(),
		AccountID: account.ID,
		Kind:      input.Kind,
		Amount:    input.Amount,
		Balance:   newBalance,
		CreatedAt: now,
	}

	if err := uc.movements.Append(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

// CurrentBalance returns the account's derived balance: the balance stamped on
// the latest movement, or the opening balance when no movement exists.
func (uc *LedgerUseCase) CurrentBalance(ctx context.Context, accountID string) (domain.Money, error) {
	account, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		return domain.Money{}, err
	}

	return uc.deriveBalance(ctx, account)
}

// History returns the account's movements newest first. An account with no
// movements yields an empty slice, not an error.
func (uc *LedgerUseCase) History(ctx context.Context, accountID string) ([]*domain.Movement, error) {
	movements, err := uc.movements.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if movements == nil {
		movements = []*domain.Movement{}
	}

	return movements, nil
}

// RelabelMovement corrects the kind label of an existing movement. It is the
// one permitted post-hoc mutation; amount, stamped balance, account and
// timestamp are never touched.
func (uc *LedgerUseCase) RelabelMovement(ctx context.Context, movementID, kind string) (*domain.Movement, error) {
	movement, err := uc.movements.GetByID(ctx, movementID)
	if err != nil {
		return nil, err
	}

	if err := uc.movements.UpdateKind(ctx, movementID, kind); err != nil {
		return nil, err
	}

	movement.Kind = kind

	return movement, nil
}

// DeleteMovement removes a movement. Stamped balances are derived from the
// immediately preceding movement, so only the latest movement of an account
// may go; anything earlier returns ErrMovementNotLatest. This is an
// administrative override, not part of normal ledger operation.
func (uc *LedgerUseCase) DeleteMovement(ctx context.Context, movementID string) error {
	movement, err := uc.movements.GetByID(ctx, movementID)
	if err != nil {
		return err
	}

	lock := uc.locks.get(movement.AccountID)
	lock.Lock()
	defer lock.Unlock()

	latest, err := uc.movements.Latest(ctx, movement.AccountID)
	if err != nil {
		return err
	}

	if latest.ID != movement.ID {
		return domain.ErrMovementNotLatest
	}

	return uc.movements.Delete(ctx, movementID)
}

func (uc *LedgerUseCase) deriveBalance(ctx context.Context, account *domain.Account) (domain.Money, error) {
	latest, err := uc.movements.Latest(ctx, account.ID)
	if err != nil {
		if errors.Is(err, domain.ErrMovementNotFound) {
			return account.OpeningBalance, nil
		}

		return domain.Money{}, err
	}

	return latest.Balance, nil
}

// dayWindow returns [start, end) of the calendar day containing t in the
// configured zone. A debit at 23:59:59 and one at 00:00:01 the next day land
// in separate windows.
func (uc *LedgerUseCase) dayWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(uc.dayZone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, uc.dayZone)

	return start, start.AddDate(0, 0, 1)
}
