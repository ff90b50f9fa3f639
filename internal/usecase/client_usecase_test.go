package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/corebank/internal/domain"
	"github.com/iho/corebank/internal/usecase"
	"github.com/iho/corebank/internal/usecase/mocks"
)

func newClientUseCase() (*usecase.ClientUseCase, *mocks.MockClientRepository) {
	clients := mocks.NewMockClientRepository()
	clock := mocks.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	return usecase.NewClientUseCase(clients, clock, mocks.NewMockIDGenerator()), clients
}

func TestClientUseCase_CreateClient(t *testing.T) {
	uc, _ := newClientUseCase()

	client, err := uc.CreateClient(context.Background(), usecase.CreateClientInput{
		Person: domain.Person{
			Name:       "Marianela Montalvo",
			Gender:     "F",
			Age:        32,
			NationalID: "097548965",
			Address:    "Amazonas y NNUU",
			Phone:      "097548965",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.ID == "" {
		t.Error("expected assigned ID")
	}
	if !client.Active {
		t.Error("new client should be active")
	}
	if client.Person.Name != "Marianela Montalvo" {
		t.Errorf("unexpected name %s", client.Person.Name)
	}
}

func TestClientUseCase_UpdateClient(t *testing.T) {
	uc, clients := newClientUseCase()
	clients.Create(context.Background(), &domain.Client{
		ID:     "cli-1",
		Person: domain.Person{Name: "Jose Lema", Address: "Otavalo sn y principal"},
		Active: true,
	})

	updated, err := uc.UpdateClient(context.Background(), "cli-1", usecase.UpdateClientInput{
		Person: domain.Person{Name: "Jose Lema", Address: "Av. 10 de Agosto"},
		Active: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Person.Address != "Av. 10 de Agosto" {
		t.Errorf("address not updated: %s", updated.Person.Address)
	}

	if _, err := uc.UpdateClient(context.Background(), "missing", usecase.UpdateClientInput{}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientUseCase_DeactivateClient(t *testing.T) {
	uc, clients := newClientUseCase()
	clients.Create(context.Background(), &domain.Client{ID: "cli-1", Active: true})

	client, err := uc.DeactivateClient(context.Background(), "cli-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Active {
		t.Error("expected client to be inactive")
	}
}
