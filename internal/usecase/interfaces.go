package usecase

import (
	"context"
	"time"

	"github.com/iho/corebank/internal/domain"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Account, error)
}

// MovementRepository defines data access for movements.
type MovementRepository interface {
	Append(ctx context.Context, movement *domain.Movement) error
	GetByID(ctx context.Context, id string) (*domain.Movement, error)
	// Latest returns the most recent movement for the account, or
	// domain.ErrMovementNotFound when the account has none.
	Latest(ctx context.Context, accountID string) (*domain.Movement, error)
	// ListByAccount returns movements newest first.
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Movement, error)
	// SumDebitsBetween returns the sum of absolute debit amounts whose
	// timestamp falls in [from, to).
	SumDebitsBetween(ctx context.Context, accountID string, from, to time.Time) (domain.Money, error)
	UpdateKind(ctx context.Context, id, kind string) error
	Delete(ctx context.Context, id string) error
	// ListByClientBetween returns movements across all of a client's accounts
	// with timestamps in [from, to], newest first.
	ListByClientBetween(ctx context.Context, clientID string, from, to time.Time) ([]*domain.Movement, error)
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used outside tests.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
