package income

import "github.com/centavo/centavo/pkg/money"

// Source is an expected monthly income, e.g. a salary or a rental payment.
type Source struct {
	Id     int
	Name   string
	Amount money.Cents
	// PayDay is the day-of-month (1..31) the income is expected on,
	// clipped to shorter months when dates are generated.
	PayDay     int
	CategoryId *int
	AccountId  *int
}
