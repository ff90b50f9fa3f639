package usecase

import (
	"context"

	"github.com/iho/corebank/internal/domain"
)

// ClientUseCase handles client CRUD.
type ClientUseCase struct {
	clients ClientRepository
	clock   Clock
	idGen   IDGenerator
}

// NewClientUseCase creates a new ClientUseCase.
func NewClientUseCase(clients ClientRepository, clock Clock, idGen IDGenerator) *ClientUseCase {
	return &ClientUseCase{clients: clients, clock: clock, idGen: idGen}
}

// CreateClientInput represents input for creating a client.
type CreateClientInput struct {
	Person domain.Person
}

// CreateClient creates a new active client.
func (uc *ClientUseCase) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	now := uc.clock.Now()

	client := &domain.Client{
		ID:        uc.idGen.Generate(),
		Person:    input.Person,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID.
func (uc *ClientUseCase) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return uc.clients.GetByID(ctx, id)
}

// UpdateClientInput represents the mutable client fields.
type UpdateClientInput struct {
	Person domain.Person
	Active bool
}

// UpdateClient replaces a client's person data and active flag.
func (uc *ClientUseCase) UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Person = input.Person
	client.Active = input.Active
	client.UpdatedAt = uc.clock.Now()

	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeactivateClient marks a client inactive. Client records are never deleted.
func (uc *ClientUseCase) DeactivateClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Active = false
	client.UpdatedAt = uc.clock.Now()

	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// ListClientsInput represents input for listing clients.
type ListClientsInput struct {
	Limit  int
	Offset int
}

// ListClients lists clients with pagination.
func (uc *ClientUseCase) ListClients(ctx context.Context, input ListClientsInput) ([]*domain.Client, error) {
	limit, offset := clampPagination(input.Limit, input.Offset)

	return uc.clients.List(ctx, limit, offset)
}
