package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/corebank/internal/domain"
)

// Type conversion helpers.
func moneyToNumeric(m domain.Money) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(m.String())

	return n
}

func numericToMoney(n pgtype.Numeric) (domain.Money, error) {
	if !n.Valid {
		return domain.Money{}, nil
	}

	d, err := decimal.NewFromString(n.Int.String())
	if err != nil {
		return domain.Money{}, err
	}

	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return domain.NewMoney(d)
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
