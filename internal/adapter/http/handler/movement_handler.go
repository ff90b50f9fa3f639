package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/corebank/internal/adapter/http/dto"
	"github.com/iho/corebank/internal/domain"
	"github.com/iho/corebank/internal/infrastructure/metrics"
	"github.com/iho/corebank/internal/usecase"
)

// LedgerService defines the behavior needed by MovementHandler.
type LedgerService interface {
	PostMovement(ctx context.Context, input usecase.PostMovementInput) (*domain.Movement, error)
	CurrentBalance(ctx context.Context, accountID string) (domain.Money, error)
	History(ctx context.Context, accountID string) ([]*domain.Movement, error)
	RelabelMovement(ctx context.Context, movementID, kind string) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, movementID string) error
}

// MovementHandler handles movement-related HTTP requests.
type MovementHandler struct {
	ledgerUC LedgerService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(ledgerUC LedgerService) *MovementHandler {
	return &MovementHandler{ledgerUC: ledgerUC}
}

// Post validates and records a movement.
func (h *MovementHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.PostMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.ledgerUC.PostMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		metrics.RecordMovementRejected(err)
		writeError(w, mapDomainError(err), "movement rejected", err.Error())

		return
	}

	metrics.RecordMovementAccepted(movement)
	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// Relabel corrects a movement's kind label, the one permitted mutation.
func (h *MovementHandler) Relabel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.RelabelMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.ledgerUC.RelabelMovement(r.Context(), id, req.Kind)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to relabel movement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromDomain(movement))
}

// Delete removes a movement. Only the latest movement of an account may go.
func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ledgerUC.DeleteMovement(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete movement", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History lists an account's movements newest first.
func (h *MovementHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	movements, err := h.ledgerUC.History(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}

// Balance returns an account's derived balance.
func (h *MovementHandler) Balance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	balance, err := h.ledgerUC.CurrentBalance(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}
