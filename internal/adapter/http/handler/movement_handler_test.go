package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/corebank/internal/adapter/http/dto"
	"github.com/iho/corebank/internal/domain"
	"github.com/iho/corebank/internal/usecase"
)

type ledgerServiceStub struct {
	postFn    func(ctx context.Context, input usecase.PostMovementInput) (*domain.Movement, error)
	balanceFn func(ctx context.Context, accountID string) (domain.Money, error)
	historyFn func(ctx context.Context, accountID string) ([]*domain.Movement, error)
	relabelFn func(ctx context.Context, movementID, kind string) (*domain.Movement, error)
	deleteFn  func(ctx context.Context, movementID string) error
}

func (s *ledgerServiceStub) PostMovement(ctx context.Context, input usecase.PostMovementInput) (*domain.Movement, error) {
	return s.postFn(ctx, input)
}

func (s *ledgerServiceStub) CurrentBalance(ctx context.Context, accountID string) (domain.Money, error) {
	return s.balanceFn(ctx, accountID)
}

func (s *ledgerServiceStub) History(ctx context.Context, accountID string) ([]*domain.Movement, error) {
	return s.historyFn(ctx, accountID)
}

func (s *ledgerServiceStub) RelabelMovement(ctx context.Context, movementID, kind string) (*domain.Movement, error) {
	return s.relabelFn(ctx, movementID, kind)
}

func (s *ledgerServiceStub) DeleteMovement(ctx context.Context, movementID string) error {
	return s.deleteFn(ctx, movementID)
}

func TestMovementHandler_Post_Success(t *testing.T) {
	movement := &domain.Movement{
		ID:        "mov-1",
		AccountID: "acc-1",
		Kind:      "withdrawal",
		Amount:    domain.MustMoney("-50.00"),
		Balance:   domain.MustMoney("450.00"),
	}

	var captured usecase.PostMovementInput
	handler := NewMovementHandler(&ledgerServiceStub{
		postFn: func(ctx context.Context, input usecase.PostMovementInput) (*domain.Movement, error) {
			captured = input
			return movement, nil
		},
	})

	body, _ := json.Marshal(dto.PostMovementRequest{
		AccountNumber: "478758",
		Amount:        domain.MustMoney("-50.00"),
	})

	req := httptest.NewRequest(http.MethodPost, "/movements", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Post(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountNumber != "478758" || captured.Amount.String() != "-50.00" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.MovementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "mov-1" || resp.Balance.String() != "450.00" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestMovementHandler_Post_InvalidJSON(t *testing.T) {
	handler := NewMovementHandler(&ledgerServiceStub{
		postFn: func(ctx context.Context, input usecase.PostMovementInput) (*domain.Movement, error) {
			t.Fatal("PostMovement should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/movements", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Post(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovementHandler_Post_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "insufficient funds", err: domain.ErrInsufficientFunds, wantStatus: http.StatusBadRequest},
		{name: "daily limit", err: domain.ErrDailyLimitExceeded, wantStatus: http.StatusBadRequest},
		{name: "inactive account", err: domain.ErrAccountInactive, wantStatus: http.StatusBadRequest},
		{name: "unknown account", err: domain.ErrAccountNotFound, wantStatus: http.StatusNotFound},
		{name: "storage down", err: domain.Unavailable("append", errors.New("conn refused")), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMovementHandler(&ledgerServiceStub{
				postFn: func(ctx context.Context, input usecase.PostMovementInput) (*domain.Movement, error) {
					return nil, tt.err
				},
			})

			body, _ := json.Marshal(dto.PostMovementRequest{
				AccountNumber: "478758",
				Amount:        domain.MustMoney("-575.00"),
			})

			req := httptest.NewRequest(http.MethodPost, "/movements", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Post(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Error != "movement rejected" {
				t.Fatalf("unexpected error body: %+v", resp)
			}
		})
	}
}

func TestMovementHandler_Relabel(t *testing.T) {
	handler := NewMovementHandler(&ledgerServiceStub{
		relabelFn: func(ctx context.Context, movementID, kind string) (*domain.Movement, error) {
			if movementID != "mov-1" || kind != "transferencia" {
				t.Fatalf("unexpected relabel args: %s %s", movementID, kind)
			}
			return &domain.Movement{ID: "mov-1", Kind: kind}, nil
		},
	})

	body, _ := json.Marshal(dto.RelabelMovementRequest{Kind: "transferencia"})
	req := httptest.NewRequest(http.MethodPatch, "/movements/mov-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "mov-1")
	rec := httptest.NewRecorder()

	handler.Relabel(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMovementHandler_Relabel_NotFound(t *testing.T) {
	handler := NewMovementHandler(&ledgerServiceStub{
		relabelFn: func(ctx context.Context, movementID, kind string) (*domain.Movement, error) {
			return nil, domain.ErrMovementNotFound
		},
	})

	body, _ := json.Marshal(dto.RelabelMovementRequest{Kind: "x"})
	req := httptest.NewRequest(http.MethodPatch, "/movements/missing", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Relabel(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMovementHandler_Delete(t *testing.T) {
	handler := NewMovementHandler(&ledgerServiceStub{
		deleteFn: func(ctx context.Context, movementID string) error { return nil },
	})

	req := httptest.NewRequest(http.MethodDelete, "/movements/mov-1", nil)
	req = setChiURLParam(req, "id", "mov-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestMovementHandler_Delete_NotLatest(t *testing.T) {
	handler := NewMovementHandler(&ledgerServiceStub{
		deleteFn: func(ctx context.Context, movementID string) error { return domain.ErrMovementNotLatest },
	})

	req := httptest.NewRequest(http.MethodDelete, "/movements/mov-1", nil)
	req = setChiURLParam(req, "id", "mov-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestMovementHandler_History(t *testing.T) {
	handler := NewMovementHandler(&ledgerServiceStub{
		historyFn: func(ctx context.Context, accountID string) ([]*domain.Movement, error) {
			return []*domain.Movement{{ID: "mov-2"}, {ID: "mov-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/movements", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.MovementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "mov-2" {
		t.Fatalf("expected newest first, got %+v", resp)
	}
}

func TestMovementHandler_Balance(t *testing.T) {
	handler := NewMovementHandler(&ledgerServiceStub{
		balanceFn: func(ctx context.Context, accountID string) (domain.Money, error) {
			return domain.MustMoney("1725.00"), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/balance", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Balance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccountID != "acc-1" || resp.Balance.String() != "1725.00" {
		t.Fatalf("unexpected balance response: %+v", resp)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
