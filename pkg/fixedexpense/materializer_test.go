package fixedexpense

import (
	"context"
	"testing"
	"time"

	"github.com/centavo/centavo/internal/event_bus"
	"github.com/centavo/centavo/pkg/transaction"
	"github.com/centavo/centavo/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMaterializer(t *testing.T) (*Materializer, *RepositoryStub, transaction.Service, context.Context) {
	t.Helper()

	bus := event_bus.NewEventBus()
	expenseRepo := NewRepositoryStub()
	transactionRepo := transaction.NewRepositoryStub()
	transactions := transaction.NewService(transactionRepo, bus)

	users := user.NewUserService(user.NewStubRepo())
	u, err := users.CreateUser(context.Background(), user.User{Username: "test-user-1"})
	require.NoError(t, err)

	m := NewMaterializer(expenseRepo, transactions, users, bus)
	return m, expenseRepo, transactions, user.WithUser(context.Background(), u)
}

func TestMaterializer_ProcessDue(t *testing.T) {
	t.Run("records a transaction once the due day is reached", func(t *testing.T) {
		// given
		m, repo, transactions, userCtx := setupMaterializer(t)
		_, err := repo.Store(userCtx, 1, FixedExpense{Description: "Rent", Amount: 120000, DueDay: 10, AutoCreate: true})
		require.NoError(t, err)

		// when
		now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
		processed, err := m.ProcessDue(context.Background(), now)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, processed)

		recorded, err := transactions.GetForPeriod(userCtx,
			time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, recorded, 1)
		assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), recorded[0].Date)
		assert.EqualValues(t, 120000, recorded[0].Amount)
	})

	t.Run("does nothing before the due day", func(t *testing.T) {
		m, repo, _, userCtx := setupMaterializer(t)
		_, err := repo.Store(userCtx, 1, FixedExpense{Description: "Rent", Amount: 120000, DueDay: 10, AutoCreate: true})
		require.NoError(t, err)

		processed, err := m.ProcessDue(context.Background(), time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Zero(t, processed)
	})

	t.Run("does not materialize the same month twice", func(t *testing.T) {
		m, repo, _, userCtx := setupMaterializer(t)
		_, err := repo.Store(userCtx, 1, FixedExpense{Description: "Rent", Amount: 120000, DueDay: 10, AutoCreate: true})
		require.NoError(t, err)
		now := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

		first, err := m.ProcessDue(context.Background(), now)
		require.NoError(t, err)
		second, err := m.ProcessDue(context.Background(), now.AddDate(0, 0, 3))
		require.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Zero(t, second)
	})

	t.Run("materializes again in the following month", func(t *testing.T) {
		m, repo, _, userCtx := setupMaterializer(t)
		_, err := repo.Store(userCtx, 1, FixedExpense{Description: "Rent", Amount: 120000, DueDay: 31, AutoCreate: true})
		require.NoError(t, err)

		january, err := m.ProcessDue(context.Background(), time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		// February is short; the due date clips to the 29th.
		february, err := m.ProcessDue(context.Background(), time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Equal(t, 1, january)
		assert.Equal(t, 1, february)
	})

	t.Run("skips expenses without autoCreate", func(t *testing.T) {
		m, repo, _, userCtx := setupMaterializer(t)
		_, err := repo.Store(userCtx, 1, FixedExpense{Description: "Gym", Amount: 3000, DueDay: 1, AutoCreate: false})
		require.NoError(t, err)

		processed, err := m.ProcessDue(context.Background(), time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Zero(t, processed)
	})

	t.Run("publishes a materialization event", func(t *testing.T) {
		m, repo, _, userCtx := setupMaterializer(t)
		_, err := repo.Store(userCtx, 1, FixedExpense{Description: "Rent", Amount: 120000, DueDay: 10, AutoCreate: true})
		require.NoError(t, err)

		var events []event_bus.FixedExpenseMaterialized
		unsubscribe := event_bus.SubscribeTyped[event_bus.FixedExpenseMaterialized](m.bus, event_bus.FixedExpenseMaterializedEvent,
			func(e event_bus.EventT[event_bus.FixedExpenseMaterialized]) error {
				events = append(events, e.Data)
				return nil
			})
		defer unsubscribe()

		_, err = m.ProcessDue(context.Background(), time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), events[0].DueDate)
	})
}
