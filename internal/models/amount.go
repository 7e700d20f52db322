package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// amountScale is the number of fractional digits stored for invoice amounts
const amountScale = 2

// Amount is a fixed-point money value with two fractional digits.
// It is rendered as a string ("100.00") in JSON and when written to the store.
type Amount struct {
	d decimal.Decimal
}

// NewAmount builds an Amount from a whole number of units
func NewAmount(units int64) Amount {
	return Amount{d: decimal.NewFromInt(units)}
}

// NewAmountFromCents builds an Amount from a number of hundredths
func NewAmountFromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -amountScale)}
}

// ParseAmount parses a decimal string such as "9999" or "12.5"
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// IsZero reports whether the amount equals zero
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// Equal reports whether two amounts have the same value
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// String returns the amount rounded to two decimals
func (a Amount) String() string {
	return a.d.StringFixed(amountScale)
}

// MarshalJSON renders the amount as a quoted two-decimal string
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return fmt.Errorf("amount must not be null")
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	a.d = d
	return nil
}

// Scan implements sql.Scanner. Drivers return NUMERIC columns as int64,
// float64, string or []byte depending on the store.
func (a *Amount) Scan(value interface{}) error {
	if value == nil {
		a.d = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("scan amount: %w", err)
	}
	a.d = d
	return nil
}

// Value implements driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}
