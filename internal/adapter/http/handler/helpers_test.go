package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/corebank/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrMovementNotFound, http.StatusNotFound},
		{domain.ErrDuplicateAccountNumber, http.StatusConflict},
		{domain.ErrMovementNotLatest, http.StatusConflict},
		{domain.ErrAccountInactive, http.StatusBadRequest},
		{domain.ErrInsufficientFunds, http.StatusBadRequest},
		{domain.ErrDailyLimitExceeded, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.Unavailable("query", errors.New("timeout")), http.StatusServiceUnavailable},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestMapDomainError_Wrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrInsufficientFunds)
	if got := mapDomainError(wrapped); got != http.StatusBadRequest {
		t.Fatalf("expected wrapped sentinel to map to 400, got %d", got)
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=25&bad=xyz", nil)

	if got := parseIntQuery(req, "limit", 50); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 50); got != 50 {
		t.Errorf("expected default 50, got %d", got)
	}
	if got := parseIntQuery(req, "bad", 50); got != 50 {
		t.Errorf("expected default for unparsable, got %d", got)
	}
}
