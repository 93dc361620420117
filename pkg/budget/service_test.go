package budget

import (
	"context"
	"testing"
	"time"

	"github.com/centavo/centavo/internal/event_bus"
	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/transaction"
	"github.com/centavo/centavo/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{
	Id:       10,
	Username: "test-user-1",
	Settings: user.Settings{Timezone: "Europe/Warsaw", Currency: "EUR"},
})

func TestServiceImpl_GetStatus(t *testing.T) {
	categories := category.NewService(category.NewRepositoryStub())
	transactions := transaction.NewService(transaction.NewRepositoryStub(), event_bus.NewEventBus())
	service := NewService(categories, transactions)

	living, err := categories.Create(ctx, category.Category{Name: "Living", Type: category.TypeExpense})
	require.NoError(t, err)
	food, err := categories.Create(ctx, category.Category{Name: "Food", Type: category.TypeExpense, ParentId: &living.Id})
	require.NoError(t, err)
	require.NoError(t, categories.UpdateLimit(ctx, food.Id, 50000))

	_, err = transactions.Create(ctx, transaction.Transaction{
		Date:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Amount:     20000,
		Type:       category.TypeExpense,
		CategoryId: &food.Id,
	})
	require.NoError(t, err)
	// outside the requested window
	_, err = transactions.Create(ctx, transaction.Transaction{
		Date:       time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		Amount:     99900,
		Type:       category.TypeExpense,
		CategoryId: &food.Id,
	})
	require.NoError(t, err)

	statuses, err := service.GetStatus(ctx,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, statuses, 2)

	parent := findStatus(t, statuses, living.Id)
	assert.EqualValues(t, 20000, parent.Spent)
	assert.EqualValues(t, 50000, parent.Limit)
	assert.True(t, parent.HasChildren)
}
