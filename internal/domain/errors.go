package domain

import (
	"errors"
	"fmt"
)

var (
	// Lookup errors
	ErrClientNotFound   = errors.New("client not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrMovementNotFound = errors.New("movement not found")

	// Movement errors
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")
	ErrInvalidAmount      = errors.New("invalid amount")

	// ErrMovementNotLatest guards the balance chain: only the most recent
	// movement of an account may be deleted.
	ErrMovementNotLatest = errors.New("movement is not the latest for its account")

	// ErrDuplicateAccountNumber signals a uniqueness violation on account numbers.
	ErrDuplicateAccountNumber = errors.New("account number already exists")

	// ErrUnavailable marks collaborator faults (store unreachable, query failed).
	// Callers can retry these; business rejections above are final.
	ErrUnavailable = errors.New("collaborator unavailable")
)

// UnavailableError wraps a collaborator fault with the operation that hit it.
// It matches ErrUnavailable via errors.Is.
type UnavailableError struct {
	Op  string
	Err error
}

// Unavailable wraps err as an UnavailableError for operation op.
func Unavailable(op string, err error) error {
	return &UnavailableError{Op: op, Err: err}
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrUnavailable) hold for every UnavailableError.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }
