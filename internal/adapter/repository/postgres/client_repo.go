package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/corebank/internal/domain"
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, name, gender, age, national_id, address, phone, active, created_at, updated_at`

// Create creates a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		client.ID,
		client.Person.Name,
		client.Person.Gender,
		client.Person.Age,
		client.Person.NationalID,
		client.Person.Address,
		client.Person.Phone,
		client.Active,
		timeToPgTimestamptz(client.CreatedAt),
		timeToPgTimestamptz(client.UpdatedAt),
	)
	if err != nil {
		return domain.Unavailable("create client", err)
	}

	return nil
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)

	client, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}

		return nil, domain.Unavailable("get client", err)
	}

	return client, nil
}

// Update replaces the mutable fields of a client.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE clients
		SET name = $2, gender = $3, age = $4, national_id = $5, address = $6,
		    phone = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		client.ID,
		client.Person.Name,
		client.Person.Gender,
		client.Person.Age,
		client.Person.NationalID,
		client.Person.Address,
		client.Person.Phone,
		client.Active,
		timeToPgTimestamptz(client.UpdatedAt),
	)
	if err != nil {
		return domain.Unavailable("update client", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// List lists clients with pagination, newest first.
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+clientColumns+` FROM clients
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, domain.Unavailable("list clients", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, domain.Unavailable("list clients", err)
		}

		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable("list clients", err)
	}

	return clients, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client

	err := row.Scan(
		&client.ID,
		&client.Person.Name,
		&client.Person.Gender,
		&client.Person.Age,
		&client.Person.NationalID,
		&client.Person.Address,
		&client.Person.Phone,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &client, nil
}
