package projection

import (
	"testing"
	"time"

	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/debt"
	"github.com/centavo/centavo/pkg/fixedexpense"
	"github.com/centavo/centavo/pkg/income"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompose(t *testing.T) {
	now := date(2024, time.January, 2)
	from := date(2024, time.January, 1)
	to := date(2024, time.March, 1)

	t.Run("enumerates monthly occurrences inside the window", func(t *testing.T) {
		expenses := []fixedexpense.FixedExpense{{Id: 1, Description: "Rent", Amount: 120000, DueDay: 10}}

		entries := Compose(expenses, nil, nil, nil, from, to, now)

		require.Len(t, entries, 2)
		assert.Equal(t, date(2024, time.January, 10), entries[0].Date)
		assert.Equal(t, date(2024, time.February, 10), entries[1].Date)
		assert.Equal(t, KindFixedExpense, entries[0].Kind)
		assert.Equal(t, category.TypeExpense, entries[0].Flow)
	})

	t.Run("the window end is exclusive", func(t *testing.T) {
		expenses := []fixedexpense.FixedExpense{{Id: 1, Description: "Rent", Amount: 120000, DueDay: 1}}

		entries := Compose(expenses, nil, nil, nil, from, date(2024, time.February, 1), now)

		require.Len(t, entries, 1)
		assert.Equal(t, date(2024, time.January, 1), entries[0].Date)
	})

	t.Run("clips due days in short months", func(t *testing.T) {
		expenses := []fixedexpense.FixedExpense{{Id: 1, Description: "Rent", Amount: 120000, DueDay: 31}}

		entries := Compose(expenses, nil, nil, nil, from, date(2024, time.March, 31), now)

		require.Len(t, entries, 3)
		assert.Equal(t, date(2024, time.January, 31), entries[0].Date)
		assert.Equal(t, date(2024, time.February, 29), entries[1].Date)
		assert.Equal(t, date(2024, time.March, 31), entries[2].Date)
	})

	t.Run("debt installments come from the schedule", func(t *testing.T) {
		first := date(2024, time.January, 1)
		debts := []debt.Debt{{
			Id: 7, Name: "Car loan", InstallmentsTotal: 12, DueDay: 10,
			FirstInstallmentDate: &first, MinimumPayment: 40000,
		}}

		entries := Compose(nil, nil, debts, nil, from, to, now)

		require.Len(t, entries, 2)
		assert.Equal(t, date(2024, time.January, 1), entries[0].Date)
		assert.Equal(t, date(2024, time.February, 10), entries[1].Date)
		assert.Equal(t, KindDebt, entries[0].Kind)
		assert.EqualValues(t, 40000, entries[0].Amount)
	})

	t.Run("same-date entries are kept apart in source order", func(t *testing.T) {
		expenses := []fixedexpense.FixedExpense{{Id: 1, Description: "Rent", Amount: 120000, DueDay: 10}}
		incomes := []income.Source{{Id: 2, Name: "Salary", Amount: 520000, PayDay: 10}}
		allocations := []WorkUnitAllocation{{WorkUnitId: 3, Date: date(2024, time.January, 10), Amount: 30000}}

		entries := Compose(expenses, incomes, nil, allocations, from, date(2024, time.February, 1), now)

		require.Len(t, entries, 3)
		assert.Equal(t, KindFixedExpense, entries[0].Kind)
		assert.Equal(t, KindIncome, entries[1].Kind)
		assert.Equal(t, KindWorkUnit, entries[2].Kind)
		for _, e := range entries {
			assert.Equal(t, date(2024, time.January, 10), e.Date)
		}
	})

	t.Run("merges all kinds chronologically", func(t *testing.T) {
		expenses := []fixedexpense.FixedExpense{{Id: 1, Description: "Rent", Amount: 120000, DueDay: 20}}
		incomes := []income.Source{{Id: 2, Name: "Salary", Amount: 520000, PayDay: 28}}
		allocations := []WorkUnitAllocation{{WorkUnitId: 3, Date: date(2024, time.January, 5), Amount: 30000}}

		entries := Compose(expenses, incomes, nil, allocations, from, date(2024, time.February, 1), now)

		require.Len(t, entries, 3)
		assert.Equal(t, KindWorkUnit, entries[0].Kind)
		assert.Equal(t, KindFixedExpense, entries[1].Kind)
		assert.Equal(t, KindIncome, entries[2].Kind)
	})

	t.Run("allocations outside the window are dropped", func(t *testing.T) {
		allocations := []WorkUnitAllocation{
			{WorkUnitId: 3, Date: date(2023, time.December, 29), Amount: 10000},
			{WorkUnitId: 3, Date: date(2024, time.January, 2), Amount: 10000},
			{WorkUnitId: 3, Date: date(2024, time.March, 1), Amount: 10000},
		}

		entries := Compose(nil, nil, nil, allocations, from, to, now)

		require.Len(t, entries, 1)
		assert.Equal(t, date(2024, time.January, 2), entries[0].Date)
	})
}
