package domain

import "time"

// Movement is a single credit or debit against an account. Movements are
// append-only: once persisted, Amount, Balance, AccountID and CreatedAt never
// change. Kind is a free-form label and is the one field that may be corrected
// after the fact.
type Movement struct {
	ID        string
	AccountID string
	Kind      string
	Amount    Money // signed: positive = credit, negative = debit
	Balance   Money // account balance immediately after this movement
	CreatedAt time.Time
}

// IsDebit reports whether the movement withdraws funds.
func (m *Movement) IsDebit() bool { return m.Amount.IsNegative() }

// EvaluateMovement decides whether a proposed movement is acceptable and
// returns the balance it would leave on the account. It is pure: the caller
// supplies the derived current balance and the sum of today's debits.
//
// Credits only require the account to be active. Debits must not drive the
// balance negative and, together with the debits already accepted today, must
// not exceed dailyLimit.
func EvaluateMovement(account *Account, currentBalance, debitsToday, amount, dailyLimit Money) (Money, error) {
	if !account.Active {
		return Money{}, ErrAccountInactive
	}

	newBalance := currentBalance.Add(amount)

	if amount.IsNegative() {
		if newBalance.IsNegative() {
			return Money{}, ErrInsufficientFunds
		}

		totalDebits := debitsToday.Add(amount.Abs())
		if totalDebits.Cmp(dailyLimit) > 0 {
			return Money{}, ErrDailyLimitExceeded
		}
	}

	return newBalance, nil
}
