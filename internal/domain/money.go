package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal digits carried by monetary amounts.
const MoneyScale = 2

// maxUnits bounds amounts to +-10^15 whole currency units, which keeps every
// sum and difference of valid amounts far from int64 overflow.
const maxUnits = 1_000_000_000_000_000 * 100

// Money is a monetary amount held as an integer count of minor units (cents).
// The zero value is zero money. Arithmetic on amounts within the construction
// bounds cannot overflow.
type Money struct {
	units int64
}

// NewMoneyFromUnits builds Money from a raw minor-unit count.
func NewMoneyFromUnits(units int64) Money {
	return Money{units: units}
}

// NewMoney converts a decimal into Money. It rejects values with more than
// MoneyScale fractional digits and values outside the representable range.
func NewMoney(d decimal.Decimal) (Money, error) {
	scaled := d.Shift(MoneyScale)
	if !scaled.IsInteger() {
		return Money{}, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, d, MoneyScale)
	}

	units := scaled.IntPart()
	if units > maxUnits || units < -maxUnits || !scaled.Equal(decimal.NewFromInt(units)) {
		return Money{}, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, d)
	}

	return Money{units: units}, nil
}

// ParseMoney converts a decimal string into Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}

	return NewMoney(d)
}

// MustMoney parses a decimal string and panics on failure. For tests and
// compile-time constants only.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Units returns the raw minor-unit count.
func (m Money) Units() int64 { return m.units }

func (m Money) Add(other Money) Money { return Money{units: m.units + other.units} }

func (m Money) Sub(other Money) Money { return Money{units: m.units - other.units} }

func (m Money) Neg() Money { return Money{units: -m.units} }

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m.units < 0 {
		return Money{units: -m.units}
	}

	return m
}

// Cmp returns -1, 0 or 1 as m is less than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	switch {
	case m.units < other.units:
		return -1
	case m.units > other.units:
		return 1
	default:
		return 0
	}
}

func (m Money) Equal(other Money) bool { return m.units == other.units }

func (m Money) IsNegative() bool { return m.units < 0 }

func (m Money) IsPositive() bool { return m.units > 0 }

func (m Money) IsZero() bool { return m.units == 0 }

// Decimal returns the amount as a shopspring decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.units, -MoneyScale)
}

// String renders the amount with exactly MoneyScale decimal places.
func (m Money) String() string {
	return m.Decimal().StringFixed(MoneyScale)
}

// MarshalJSON encodes the amount as a decimal string, e.g. "150.75".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
