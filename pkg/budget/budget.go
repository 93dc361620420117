package budget

import "github.com/centavo/centavo/pkg/money"

type Status string

const (
	StatusNormal   Status = "NORMAL"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
)

// CategoryStatus is one category's aggregated budget figures for a period.
// It is recomputed on every query and never persisted.
type CategoryStatus struct {
	CategoryId int
	Name       string
	Spent      money.Cents
	Limit      money.Cents
	Percentage float64
	Status     Status
	// Depth is the node's distance from its root, for indented rendering.
	Depth int
	// HasChildren marks the limit as derived from children; such a limit is
	// not directly editable.
	HasChildren bool
	// Faulted marks a subtree whose transaction data could not be fully
	// aggregated. Siblings are unaffected.
	Faulted bool
}

// StatusFor maps a spent/limit percentage onto the status ladder. The 90
// and 100 tiers both report CRITICAL; there is no separate over-budget tier
// above 90.
func StatusFor(percentage float64) Status {
	switch {
	case percentage >= 100:
		return StatusCritical
	case percentage >= 90:
		return StatusCritical
	case percentage >= 75:
		return StatusWarning
	}
	return StatusNormal
}
