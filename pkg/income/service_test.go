package income

import (
	"context"
	"testing"

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
	t.Run("stores the source and assigns an id", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Source{Name: "Salary", Amount: 520000, PayDay: 28})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.Id)

		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Salary", all[0].Name)
		assert.EqualValues(t, 520000, all[0].Amount)
	})

	t.Run("clamps the pay day into 1..31", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Source{Name: "Salary", Amount: 520000, PayDay: 45})

		require.NoError(t, err)
		assert.Equal(t, 31, created.PayDay)
	})

	t.Run("fails without a current user", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		_, err := service.Create(context.Background(), Source{Name: "Salary", Amount: 520000, PayDay: 28})

		assert.ErrorIs(t, err, user.ErrNoUser)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("updates an owned source", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Source{Name: "Salary", Amount: 520000, PayDay: 28})
		require.NoError(t, err)

		created.Amount = 550000
		ok, err := service.Update(ctx, created)

		require.NoError(t, err)
		assert.True(t, ok)
		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 550000, all[0].Amount)
	})

	t.Run("reports false for another user's source", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Source{Name: "Salary", Amount: 520000, PayDay: 28})
		require.NoError(t, err)

		otherCtx := user.WithUser(context.Background(), user.User{Id: 99, Username: "other"})
		ok, err := service.Update(otherCtx, created)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	created, err := service.Create(ctx, Source{Name: "Side gig", Amount: 80000, PayDay: 5})
	require.NoError(t, err)

	ok, err := service.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := service.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
