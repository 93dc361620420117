package category

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

func TestServiceImpl_GetTree(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	// given
	living, err := service.Create(ctx, Category{Name: "Living", Type: TypeExpense})
	require.NoError(t, err)
	_, err = service.Create(ctx, Category{Name: "Food", Type: TypeExpense, ParentId: &living.Id})
	require.NoError(t, err)
	_, err = service.Create(ctx, Category{Name: "Salary", Type: TypeIncome})
	require.NoError(t, err)

	// when
	forest, err := service.GetTree(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "Living", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Food", forest[0].Children[0].Name)
}

func TestServiceImpl_UpdateLimit(t *testing.T) {
	t.Run("accepts a limit on a leaf", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		leaf, err := service.Create(ctx, Category{Name: "Food", Type: TypeExpense})
		require.NoError(t, err)

		err = service.UpdateLimit(ctx, leaf.Id, 50000)

		require.NoError(t, err)
		forest, _ := service.GetTree(ctx)
		assert.EqualValues(t, 50000, forest[0].BudgetLimit)
	})

	t.Run("rejects a limit on a category with children", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		parent, err := service.Create(ctx, Category{Name: "Living", Type: TypeExpense})
		require.NoError(t, err)
		_, err = service.Create(ctx, Category{Name: "Food", Type: TypeExpense, ParentId: &parent.Id})
		require.NoError(t, err)

		err = service.UpdateLimit(ctx, parent.Id, 10000)

		assert.ErrorIs(t, err, ErrParentLimitReadOnly)
	})

	t.Run("unknown category", func(t *testing.T) {
		service, teardown := setup(t)
		defer teardown()

		err := service.UpdateLimit(ctx, 404, 10000)

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestServiceImpl_RequiresUserInContext(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	_, err := service.GetAll(context.Background())

	assert.ErrorIs(t, err, user.ErrNoUser)
}
