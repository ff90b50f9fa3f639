package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/corebank/internal/domain"
)

// MovementRepository implements usecase.MovementRepository. Movements are
// append-only rows; ordering relies on (created_at, id) where IDs are ULIDs
// and therefore sort by creation within the same timestamp.
type MovementRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool, retrier *Retrier) *MovementRepository {
	return &MovementRepository{pool: pool, retrier: retrier}
}

const movementColumns = `id, account_id, kind, amount, balance, created_at`

// Append persists a new movement. Transient failures on the write path are
// retried; the insert is idempotent on the movement ID.
func (r *MovementRepository) Append(ctx context.Context, movement *domain.Movement) error {
	err := r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO movements (`+movementColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			movement.ID,
			movement.AccountID,
			movement.Kind,
			moneyToNumeric(movement.Amount),
			moneyToNumeric(movement.Balance),
			timeToPgTimestamptz(movement.CreatedAt),
		)

		return err
	})
	if err != nil {
		return domain.Unavailable("append movement", err)
	}

	return nil
}

// GetByID retrieves a movement by ID.
func (r *MovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements WHERE id = $1`, id)

	movement, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}

		return nil, domain.Unavailable("get movement", err)
	}

	return movement, nil
}

// Latest returns the most recent movement for an account.
func (r *MovementRepository) Latest(ctx context.Context, accountID string) (*domain.Movement, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+movementColumns+` FROM movements
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, accountID)

	movement, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}

		return nil, domain.Unavailable("latest movement", err)
	}

	return movement, nil
}

// ListByAccount returns an account's movements newest first.
func (r *MovementRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+movementColumns+` FROM movements
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC`, accountID)
	if err != nil {
		return nil, domain.Unavailable("list movements", err)
	}

	return scanMovements(rows, "list movements")
}

// SumDebitsBetween sums the absolute debit amounts in [from, to).
func (r *MovementRepository) SumDebitsBetween(ctx context.Context, accountID string, from, to time.Time) (domain.Money, error) {
	var total pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(ABS(amount)), 0) FROM movements
		WHERE account_id = $1 AND amount < 0
		  AND created_at >= $2 AND created_at < $3`,
		accountID, timeToPgTimestamptz(from), timeToPgTimestamptz(to)).Scan(&total)
	if err != nil {
		return domain.Money{}, domain.Unavailable("sum debits", err)
	}

	sum, err := numericToMoney(total)
	if err != nil {
		return domain.Money{}, domain.Unavailable("sum debits", err)
	}

	return sum, nil
}

// UpdateKind corrects the label of a movement. No other column is touched.
func (r *MovementRepository) UpdateKind(ctx context.Context, id, kind string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE movements SET kind = $2 WHERE id = $1`, id, kind)
	if err != nil {
		return domain.Unavailable("update movement kind", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// Delete removes a movement by ID.
func (r *MovementRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return domain.Unavailable("delete movement", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// ListByClientBetween returns the movements across all of a client's accounts
// with timestamps in [from, to], newest first.
func (r *MovementRepository) ListByClientBetween(ctx context.Context, clientID string, from, to time.Time) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.account_id, m.kind, m.amount, m.balance, m.created_at
		FROM movements m
		JOIN accounts a ON a.id = m.account_id
		WHERE a.client_id = $1
		  AND m.created_at BETWEEN $2 AND $3
		ORDER BY m.created_at DESC, m.id DESC`,
		clientID, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, domain.Unavailable("list client movements", err)
	}

	return scanMovements(rows, "list client movements")
}

func scanMovements(rows pgx.Rows, op string) ([]*domain.Movement, error) {
	defer rows.Close()

	movements := make([]*domain.Movement, 0)
	for rows.Next() {
		movement, err := scanMovement(rows)
		if err != nil {
			return nil, domain.Unavailable(op, err)
		}

		movements = append(movements, movement)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable(op, err)
	}

	return movements, nil
}

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var (
		movement domain.Movement
		amount   pgtype.Numeric
		balance  pgtype.Numeric
	)

	err := row.Scan(
		&movement.ID,
		&movement.AccountID,
		&movement.Kind,
		&amount,
		&balance,
		&movement.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if movement.Amount, err = numericToMoney(amount); err != nil {
		return nil, err
	}

	if movement.Balance, err = numericToMoney(balance); err != nil {
		return nil, err
	}

	return &movement, nil
}
