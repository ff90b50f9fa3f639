package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/corebank/internal/domain"
)

var (
	movementsPosted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corebank_movements_posted_total",
			Help: "Total number of accepted movements by kind of flow",
		},
		[]string{"flow"},
	)

	movementsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corebank_movements_rejected_total",
			Help: "Total number of rejected movements by reason",
		},
		[]string{"reason"},
	)

	movementAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "corebank_movement_amount",
		Help:    "Absolute movement amounts",
		Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
	})
)

// RecordMovementAccepted counts an accepted movement.
func RecordMovementAccepted(m *domain.Movement) {
	flow := "credit"
	if m.IsDebit() {
		flow = "debit"
	}

	movementsPosted.WithLabelValues(flow).Inc()
	movementAmount.Observe(m.Amount.Abs().Decimal().InexactFloat64())
}

// RecordMovementRejected counts a rejected movement by its reason.
func RecordMovementRejected(err error) {
	movementsRejected.WithLabelValues(rejectionReason(err)).Inc()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrAccountInactive):
		return "account_inactive"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return "daily_limit_exceeded"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrUnavailable):
		return "store_unavailable"
	default:
		return "other"
	}
}
