package fixedexpense

import (
	"time"

	"github.com/centavo/centavo/pkg/money"
)

type FixedExpense struct {
	Id          int
	Description string
	Amount      money.Cents
	// DueDay is the day-of-month (1..31) the expense is expected on,
	// clipped to shorter months when dates are generated.
	DueDay int
	// AutoCreate makes the materializer record the month's transaction
	// automatically once the due day has been reached.
	AutoCreate bool
	CategoryId *int
	AccountId  *int
	// LastAutoCreated is the due date of the last automatically recorded
	// transaction; it guards against double materialization.
	LastAutoCreated *time.Time
}
