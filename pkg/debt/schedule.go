package debt

import (
	"time"

	"github.com/centavo/centavo/pkg/recurrence"
)

// Schedule derives the full installment list of a debt. Installment 1 falls
// on FirstInstallmentDate when one is set (used verbatim, even if it does not
// match the due day); later installments follow the monthly due-day rule
// anchored at that date. Without a first date the anchor is chosen so the
// first installment is not in the past relative to now.
//
// A stored InstallmentsPaid beyond InstallmentsTotal is clamped and reported
// through the inconsistent flag instead of failing the call.
func Schedule(d Debt, now time.Time) (installments []Installment, inconsistent bool) {
	if d.InstallmentsTotal < 1 {
		return nil, false
	}

	paid := d.InstallmentsPaid
	if paid < 0 {
		paid = 0
		inconsistent = true
	}
	if paid > d.InstallmentsTotal {
		paid = d.InstallmentsTotal
		inconsistent = true
	}

	var anchor time.Time
	explicitFirst := d.FirstInstallmentDate != nil
	if explicitFirst {
		anchor = *d.FirstInstallmentDate
	} else {
		anchor = recurrence.DefaultAnchor(d.DueDay, now)
	}

	installments = make([]Installment, 0, d.InstallmentsTotal)
	for number := 1; number <= d.InstallmentsTotal; number++ {
		var dueDate time.Time
		if explicitFirst && number == 1 {
			dueDate = anchor
		} else {
			dueDate = recurrence.NthOccurrence(d.DueDay, anchor, number-1)
		}

		status := StatusPending
		if number <= paid {
			status = StatusPaid
		}
		installments = append(installments, Installment{Number: number, DueDate: dueDate, Status: status})
	}
	return installments, inconsistent
}

// TogglePaid flips the status of installment number and returns the new
// value for InstallmentsPaid. Marking an installment paid also marks every
// earlier one paid; marking it pending leaves only the installments before
// it paid. Paid installments therefore always stay a contiguous prefix.
func TogglePaid(d Debt, number int) (int, bool) {
	if number < 1 || number > d.InstallmentsTotal {
		return d.InstallmentsPaid, false
	}
	if number > d.InstallmentsPaid {
		return number, true
	}
	return number - 1, true
}
