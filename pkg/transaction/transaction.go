package transaction

import (
	"time"

	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/money"
)

type Transaction struct {
	Id          int
	Date        time.Time
	Amount      money.Cents
	Type        category.Type
	Description string
	// CategoryId and AccountId are weak references; a transaction survives
	// the deletion of the category or account it pointed at.
	CategoryId *int
	AccountId  *int
}
