package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/corebank/internal/adapter/http/dto"
	"github.com/iho/corebank/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Statement(ctx context.Context, clientID string, from, to time.Time) ([]usecase.StatementLine, error)
}

// ReportHandler handles statement report requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Statement builds a client's movement statement for a date range.
// Query parameters: client_id, from, to (RFC 3339 or YYYY-MM-DD).
func (h *ReportHandler) Statement(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "missing client_id", "")
		return
	}

	from, err := parseDateQuery(r.URL.Query().Get("from"), false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}

	to, err := parseDateQuery(r.URL.Query().Get("to"), true)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	lines, err := h.reportUC.Statement(r.Context(), clientID, from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(lines))
}

// parseDateQuery accepts RFC 3339 timestamps or bare dates. A bare "to" date
// is pushed to the end of that day so the range is inclusive. An empty value
// leaves that end of the range open.
func parseDateQuery(value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		if endOfDay {
			return time.Now(), nil
		}
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}

	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return t, nil
}
