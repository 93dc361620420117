package workunit

import (
	"context"
	"testing"
	"time"

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

func setup(t *testing.T) (Service, func()) {
	service := NewService(repoStub)
	return service, func() {
		t.Log("Teardown after test")
		repoStub.Reset()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("stores the unit and assigns an id", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, WorkUnit{Name: "Logo design", Price: 120000, EstimatedHours: 10 * time.Hour})

		require.NoError(t, err)
		assert.NotZero(t, created.Id)
	})

	t.Run("rejects non-positive estimated hours", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, WorkUnit{Name: "Logo design", Price: 120000})

		assert.ErrorIs(t, err, ErrInvalidHours)
	})
}

func TestServiceImpl_Allocations(t *testing.T) {
	monday := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	t.Run("spreads the estimated hours over days", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, WorkUnit{Name: "Logo design", Price: 120000, EstimatedHours: 10 * time.Hour})
		require.NoError(t, err)

		allocations, err := service.Allocations(ctx, created.Id, 4*time.Hour, true, monday)

		require.NoError(t, err)
		require.Len(t, allocations, 3)
		assert.Equal(t, 4*time.Hour, allocations[0].Hours)
		assert.Equal(t, 4*time.Hour, allocations[1].Hours)
		assert.Equal(t, 2*time.Hour, allocations[2].Hours)
	})

	t.Run("rejects a non-positive daily rate", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, WorkUnit{Name: "Logo design", Price: 120000, EstimatedHours: 10 * time.Hour})
		require.NoError(t, err)

		_, err = service.Allocations(ctx, created.Id, 0, false, monday)

		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("reports an unknown work unit", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		_, err := service.Allocations(ctx, 404, 4*time.Hour, false, monday)

		assert.ErrorIs(t, err, ErrWorkUnitNotFound)
	})
}
