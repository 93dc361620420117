// Package money holds monetary amounts as integer cents so that budget
// aggregation stays exact regardless of how many transactions are summed.
package money

import (
	"fmt"
	"math"
)

// Cents is a monetary amount in hundredths of the account currency.
// Negative values are allowed; the sign convention (expense vs income)
// belongs to the transaction type, not to the amount itself.
type Cents int64

// FromFloat converts a currency-unit amount, as carried by JSON DTOs, to
// Cents, rounding to the nearest cent.
func FromFloat(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Float returns the amount in currency units as a float64. Intended for
// percentage math and JSON DTOs, not for further accumulation.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

// String renders the amount with two decimal places, e.g. "1234.50".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
