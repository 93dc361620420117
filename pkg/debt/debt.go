package debt

import (
	"time"

	"github.com/centavo/centavo/pkg/money"
)

type Debt struct {
	Id   int
	Name string
	// InstallmentsTotal is the number of installments the debt is repaid in.
	InstallmentsTotal int
	// InstallmentsPaid counts the paid installments. Paid installments
	// always form a contiguous prefix 1..InstallmentsPaid; this counter is
	// the only persisted payment state, the schedule is derived from it.
	InstallmentsPaid     int
	FirstInstallmentDate *time.Time
	DueDay               int
	MinimumPayment       money.Cents
	CategoryId           *int
	AccountId            *int
}

type InstallmentStatus string

const (
	StatusPaid    InstallmentStatus = "PAID"
	StatusPending InstallmentStatus = "PENDING"
)

// Installment is a derived schedule entry; it is never persisted.
type Installment struct {
	Number  int
	DueDate time.Time
	Status  InstallmentStatus
}
