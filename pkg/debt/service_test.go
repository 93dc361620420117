package debt

import (
	"context"
	"testing"
	"time"

	"github.com/centavo/centavo/internal/event_bus"
	"github.com/centavo/centavo/internal/utils"
	"github.com/centavo/centavo/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{
	Id:       10,
	Username: "test-user-1",
	Settings: user.Settings{Timezone: "Europe/Warsaw", Currency: "EUR"},
})

var repoStub = NewRepositoryStub()

func setup(t *testing.T) (Service, *event_bus.EventBus, func()) {
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)}
	service := NewService(repoStub, bus, clock)
	return service, bus, func() {
		t.Log("Teardown after test")
		repoStub.Reset()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("rejects a debt without installments", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Debt{Name: "Car loan", InstallmentsTotal: 0, DueDay: 10})

		assert.ErrorIs(t, err, ErrInvalidInstallments)
	})

	t.Run("clamps a paid counter beyond the total", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Debt{Name: "Car loan", InstallmentsTotal: 3, InstallmentsPaid: 9, DueDay: 10})

		require.NoError(t, err)
		assert.Equal(t, 3, created.InstallmentsPaid)
	})
}

func TestServiceImpl_GetSchedule(t *testing.T) {
	t.Run("derives the schedule from the stored counter", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		first := date(2024, time.January, 1)
		created, err := service.Create(ctx, Debt{
			Name: "Car loan", InstallmentsTotal: 3, InstallmentsPaid: 1,
			FirstInstallmentDate: &first, DueDay: 10,
		})
		require.NoError(t, err)

		installments, inconsistent, err := service.GetSchedule(ctx, created.Id)

		require.NoError(t, err)
		assert.False(t, inconsistent)
		require.Len(t, installments, 3)
		assert.Equal(t, date(2024, time.January, 1), installments[0].DueDate)
		assert.Equal(t, StatusPaid, installments[0].Status)
		assert.Equal(t, date(2024, time.February, 10), installments[1].DueDate)
		assert.Equal(t, StatusPending, installments[1].Status)
	})

	t.Run("reports an unknown debt", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		_, _, err := service.GetSchedule(ctx, 404)

		assert.ErrorIs(t, err, ErrDebtNotFound)
	})
}

func TestServiceImpl_ToggleInstallment(t *testing.T) {
	t.Run("marking installment 2 paid retroactively covers installment 1", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Debt{Name: "Car loan", InstallmentsTotal: 3, DueDay: 20})
		require.NoError(t, err)

		installments, err := service.ToggleInstallment(ctx, created.Id, 2)

		require.NoError(t, err)
		assert.Equal(t, StatusPaid, installments[0].Status)
		assert.Equal(t, StatusPaid, installments[1].Status)
		assert.Equal(t, StatusPending, installments[2].Status)

		stored, found, err := repoStub.Get(ctx, 10, created.Id)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 2, stored.InstallmentsPaid)
	})

	t.Run("marking a paid installment pending shrinks the prefix", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Debt{Name: "Car loan", InstallmentsTotal: 3, InstallmentsPaid: 3, DueDay: 20})
		require.NoError(t, err)

		installments, err := service.ToggleInstallment(ctx, created.Id, 2)

		require.NoError(t, err)
		assert.Equal(t, StatusPaid, installments[0].Status)
		assert.Equal(t, StatusPending, installments[1].Status)
		assert.Equal(t, StatusPending, installments[2].Status)
	})

	t.Run("rejects a number outside the schedule", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Debt{Name: "Car loan", InstallmentsTotal: 3, DueDay: 20})
		require.NoError(t, err)

		_, err = service.ToggleInstallment(ctx, created.Id, 4)

		assert.ErrorIs(t, err, ErrInvalidInstallment)
	})

	t.Run("publishes an event when the last installment is paid", func(t *testing.T) {
		service, bus, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Debt{Name: "Car loan", InstallmentsTotal: 3, InstallmentsPaid: 2, DueDay: 20})
		require.NoError(t, err)

		var events []event_bus.DebtPaidOff
		unsubscribe := event_bus.SubscribeTyped[event_bus.DebtPaidOff](bus, event_bus.DebtPaidOffEvent,
			func(e event_bus.EventT[event_bus.DebtPaidOff]) error {
				events = append(events, e.Data)
				return nil
			})
		defer unsubscribe()

		_, err = service.ToggleInstallment(ctx, created.Id, 3)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, created.Id, events[0].DebtId)
		assert.Equal(t, "Car loan", events[0].Name)
	})

	t.Run("fails without a current user", func(t *testing.T) {
		service, _, teardown := setup(t)
		defer teardown()

		_, err := service.ToggleInstallment(context.Background(), 1, 1)

		assert.ErrorIs(t, err, user.ErrNoUser)
	})
}
