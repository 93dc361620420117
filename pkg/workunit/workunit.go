package workunit

import (
	"time"

	"github.com/centavo/centavo/pkg/money"
)

// WorkUnit is a sellable block of work, e.g. a freelance engagement, priced
// as a whole and estimated in hours.
type WorkUnit struct {
	Id             int
	Name           string
	Price          money.Cents
	EstimatedHours time.Duration
	CategoryId     *int
	AccountId      *int
}
