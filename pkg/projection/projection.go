package projection

import (
	"sort"
	"time"

	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/debt"
	"github.com/centavo/centavo/pkg/fixedexpense"
	"github.com/centavo/centavo/pkg/income"
	"github.com/centavo/centavo/pkg/money"
	"github.com/centavo/centavo/pkg/recurrence"
)

type Kind string

const (
	KindFixedExpense Kind = "FIXED_EXPENSE"
	KindIncome       Kind = "INCOME"
	KindDebt         Kind = "DEBT"
	KindWorkUnit     Kind = "WORK_UNIT"
)

// Entry is one dated, typed amount projected from a recurring source. It is
// derived for a requested window and never persisted.
type Entry struct {
	Date   time.Time
	Amount money.Cents
	Kind   Kind
	Flow   category.Type
	// SourceId identifies the originating entity within its kind.
	SourceId   int
	CategoryId *int
}

// WorkUnitAllocation is a single day's monetary share of a distributed work
// unit, prepared by the caller from the day distributor's output.
type WorkUnitAllocation struct {
	WorkUnitId int
	CategoryId *int
	Date       time.Time
	Amount     money.Cents
}

// Compose merges the recurring sources into one chronological sequence of
// entries inside the half-open window [from, to). Same-date entries are
// never merged, and the sort is stable, so entries of one source keep their
// occurrence order and sources keep the enumeration order listed here:
// fixed expenses, incomes, debts, work units.
//
// now only matters for debts without an explicit first installment date.
func Compose(
	fixedExpenses []fixedexpense.FixedExpense,
	incomes []income.Source,
	debts []debt.Debt,
	allocations []WorkUnitAllocation,
	from, to time.Time,
	now time.Time,
) []Entry {
	var entries []Entry

	for _, e := range fixedExpenses {
		for _, date := range occurrencesInWindow(e.DueDay, from, to) {
			entries = append(entries, Entry{
				Date:       date,
				Amount:     e.Amount,
				Kind:       KindFixedExpense,
				Flow:       category.TypeExpense,
				SourceId:   e.Id,
				CategoryId: e.CategoryId,
			})
		}
	}

	for _, s := range incomes {
		for _, date := range occurrencesInWindow(s.PayDay, from, to) {
			entries = append(entries, Entry{
				Date:       date,
				Amount:     s.Amount,
				Kind:       KindIncome,
				Flow:       category.TypeIncome,
				SourceId:   s.Id,
				CategoryId: s.CategoryId,
			})
		}
	}

	for _, d := range debts {
		installments, _ := debt.Schedule(d, now)
		for _, i := range installments {
			if i.DueDate.Before(from) || !i.DueDate.Before(to) {
				continue
			}
			entries = append(entries, Entry{
				Date:       i.DueDate,
				Amount:     d.MinimumPayment,
				Kind:       KindDebt,
				Flow:       category.TypeExpense,
				SourceId:   d.Id,
				CategoryId: d.CategoryId,
			})
		}
	}

	for _, a := range allocations {
		if a.Date.Before(from) || !a.Date.Before(to) {
			continue
		}
		entries = append(entries, Entry{
			Date:       a.Date,
			Amount:     a.Amount,
			Kind:       KindWorkUnit,
			Flow:       category.TypeIncome,
			SourceId:   a.WorkUnitId,
			CategoryId: a.CategoryId,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// occurrencesInWindow enumerates the monthly due-day dates inside [from, to),
// anchored at the first month of the window. Clipped dates are monotonic in
// the occurrence index, so enumeration stops at the first date beyond the
// window.
func occurrencesInWindow(dueDay int, from, to time.Time) []time.Time {
	anchor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())

	var dates []time.Time
	for i := 0; ; i++ {
		date := recurrence.NthOccurrence(dueDay, anchor, i)
		if !date.Before(to) {
			return dates
		}
		if !date.Before(from) {
			dates = append(dates, date)
		}
	}
}
