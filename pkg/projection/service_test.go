package projection

import (
	"context"
	"testing"
	"time"

	"github.com/centavo/centavo/internal/utils"
	"github.com/centavo/centavo/pkg/debt"
	"github.com/centavo/centavo/pkg/fixedexpense"
	"github.com/centavo/centavo/pkg/income"
	"github.com/centavo/centavo/pkg/money"
	"github.com/centavo/centavo/pkg/user"
	"github.com/centavo/centavo/pkg/workunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{
	Id:       10,
	Username: "test-user-1",
	Settings: user.Settings{Timezone: "Europe/Warsaw", Currency: "EUR"},
})

func setup(t *testing.T) (Service, *fixedexpense.RepositoryStub, *income.RepositoryStub, *debt.RepositoryStub, *workunit.RepositoryStub) {
	t.Helper()

	expenses := fixedexpense.NewRepositoryStub()
	incomes := income.NewRepositoryStub()
	debts := debt.NewRepositoryStub()
	units := workunit.NewRepositoryStub()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)}

	return NewService(expenses, incomes, debts, units, clock), expenses, incomes, debts, units
}

func TestServiceImpl_Project(t *testing.T) {
	from := date(2024, time.January, 1)
	to := date(2024, time.February, 1)

	t.Run("merges all sources of the current user", func(t *testing.T) {
		service, expenses, incomes, debts, _ := setup(t)

		_, err := expenses.Store(ctx, 10, fixedexpense.FixedExpense{Description: "Rent", Amount: 120000, DueDay: 10})
		require.NoError(t, err)
		_, err = incomes.Store(ctx, 10, income.Source{Name: "Salary", Amount: 520000, PayDay: 28})
		require.NoError(t, err)
		first := date(2024, time.January, 5)
		_, err = debts.Store(ctx, 10, debt.Debt{
			Name: "Car loan", InstallmentsTotal: 12, DueDay: 5,
			FirstInstallmentDate: &first, MinimumPayment: 40000,
		})
		require.NoError(t, err)
		// another user's data must not leak in
		_, err = expenses.Store(ctx, 99, fixedexpense.FixedExpense{Description: "Other rent", Amount: 90000, DueDay: 15})
		require.NoError(t, err)

		entries, err := service.Project(ctx, from, to, 0, false)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, KindDebt, entries[0].Kind)
		assert.Equal(t, KindFixedExpense, entries[1].Kind)
		assert.Equal(t, KindIncome, entries[2].Kind)
	})

	t.Run("distributes a work unit's price across its days", func(t *testing.T) {
		service, _, _, _, units := setup(t)

		_, err := units.Store(ctx, 10, workunit.WorkUnit{
			Name: "Logo design", Price: 100000, EstimatedHours: 10 * time.Hour,
		})
		require.NoError(t, err)

		// Jan 1st 2024 is a Monday; 4h/day yields Mon/Tue/Wed
		entries, err := service.Project(ctx, from, to, 4*time.Hour, true)

		require.NoError(t, err)
		require.Len(t, entries, 3)

		var total money.Cents
		for _, e := range entries {
			assert.Equal(t, KindWorkUnit, e.Kind)
			total += e.Amount
		}
		assert.EqualValues(t, 100000, total)
		assert.EqualValues(t, 40000, entries[0].Amount)
		assert.EqualValues(t, 40000, entries[1].Amount)
		assert.EqualValues(t, 20000, entries[2].Amount)
		assert.Equal(t, date(2024, time.January, 3), entries[2].Date)
	})

	t.Run("splits a high-priced work unit without overflowing", func(t *testing.T) {
		service, _, _, _, units := setup(t)

		_, err := units.Store(ctx, 10, workunit.WorkUnit{
			Name: "Platform migration", Price: 5000000, EstimatedHours: 16 * time.Hour,
		})
		require.NoError(t, err)

		entries, err := service.Project(ctx, from, to, 8*time.Hour, true)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		var total money.Cents
		for _, e := range entries {
			assert.GreaterOrEqual(t, int64(e.Amount), int64(0))
			total += e.Amount
		}
		assert.EqualValues(t, 5000000, total)
		assert.EqualValues(t, 2500000, entries[0].Amount)
		assert.EqualValues(t, 2500000, entries[1].Amount)
	})

	t.Run("fails without a current user", func(t *testing.T) {
		service, _, _, _, _ := setup(t)

		_, err := service.Project(context.Background(), from, to, 0, false)

		assert.ErrorIs(t, err, user.ErrNoUser)
	})
}
