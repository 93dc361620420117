package budget

import (
	"testing"
	"time"

	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/money"
	"github.com/centavo/centavo/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func expenseTx(categoryId int, amount int64) transaction.Transaction {
	return transaction.Transaction{
		Date:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Amount:     money.Cents(amount),
		Type:       category.TypeExpense,
		CategoryId: intPtr(categoryId),
	}
}

func findStatus(t *testing.T, statuses []CategoryStatus, categoryId int) CategoryStatus {
	t.Helper()
	for _, s := range statuses {
		if s.CategoryId == categoryId {
			return s
		}
	}
	t.Fatalf("no status for category %d", categoryId)
	return CategoryStatus{}
}

func TestAggregate(t *testing.T) {
	// Living (1) with leaves Food (2, limit 500) and Transport (3, limit 300)
	livingForest := func() []*category.Node {
		return category.BuildForest([]category.Category{
			{Id: 1, Name: "Living", Type: category.TypeExpense},
			{Id: 2, Name: "Food", Type: category.TypeExpense, BudgetLimit: 50000, ParentId: intPtr(1)},
			{Id: 3, Name: "Transport", Type: category.TypeExpense, BudgetLimit: 30000, ParentId: intPtr(1)},
		})
	}

	t.Run("a parent's limit is the sum of its children's limits", func(t *testing.T) {
		statuses := Aggregate(livingForest(), nil)

		living := findStatus(t, statuses, 1)
		assert.EqualValues(t, 80000, living.Limit)
		assert.True(t, living.HasChildren)
		assert.Zero(t, living.Depth)
		assert.Equal(t, 1, findStatus(t, statuses, 2).Depth)
	})

	t.Run("spend rolls up post-order", func(t *testing.T) {
		statuses := Aggregate(livingForest(), []transaction.Transaction{
			expenseTx(2, 20000),
			expenseTx(2, 5000),
			expenseTx(3, 10000),
		})

		assert.EqualValues(t, 25000, findStatus(t, statuses, 2).Spent)
		assert.EqualValues(t, 10000, findStatus(t, statuses, 3).Spent)
		assert.EqualValues(t, 35000, findStatus(t, statuses, 1).Spent)
	})

	t.Run("a parent's stored limit is ignored", func(t *testing.T) {
		forest := category.BuildForest([]category.Category{
			{Id: 1, Name: "Living", Type: category.TypeExpense, BudgetLimit: 999999},
			{Id: 2, Name: "Food", Type: category.TypeExpense, BudgetLimit: 50000, ParentId: intPtr(1)},
		})

		statuses := Aggregate(forest, nil)

		assert.EqualValues(t, 50000, findStatus(t, statuses, 1).Limit)
	})

	t.Run("transactions of the wrong type do not count", func(t *testing.T) {
		forest := category.BuildForest([]category.Category{
			{Id: 1, Name: "Salary", Type: category.TypeIncome, BudgetLimit: 0},
		})
		tx := expenseTx(1, 20000)

		statuses := Aggregate(forest, []transaction.Transaction{tx})

		assert.Zero(t, findStatus(t, statuses, 1).Spent)
	})

	t.Run("status ladder", func(t *testing.T) {
		assert.Equal(t, StatusNormal, StatusFor(0))
		assert.Equal(t, StatusNormal, StatusFor(74.9))
		assert.Equal(t, StatusWarning, StatusFor(75))
		assert.Equal(t, StatusWarning, StatusFor(89.9))
		assert.Equal(t, StatusCritical, StatusFor(90))
		assert.Equal(t, StatusCritical, StatusFor(100))
		assert.Equal(t, StatusCritical, StatusFor(250))
	})

	t.Run("a zero limit reports zero percent", func(t *testing.T) {
		forest := category.BuildForest([]category.Category{
			{Id: 1, Name: "Misc", Type: category.TypeExpense},
		})

		statuses := Aggregate(forest, []transaction.Transaction{expenseTx(1, 10000)})

		s := findStatus(t, statuses, 1)
		assert.Zero(t, s.Percentage)
		assert.Equal(t, StatusNormal, s.Status)
	})

	t.Run("a malformed subtree is flagged without breaking its siblings", func(t *testing.T) {
		statuses := Aggregate(livingForest(), []transaction.Transaction{
			expenseTx(2, -100),
			expenseTx(2, 20000),
			expenseTx(3, 10000),
		})

		food := findStatus(t, statuses, 2)
		assert.True(t, food.Faulted)
		assert.EqualValues(t, 20000, food.Spent)

		transport := findStatus(t, statuses, 3)
		assert.False(t, transport.Faulted)
		assert.EqualValues(t, 10000, transport.Spent)

		// the parent aggregate contains the fault marker
		assert.True(t, findStatus(t, statuses, 1).Faulted)
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		transactions := []transaction.Transaction{expenseTx(2, 20000), expenseTx(3, 10000)}

		first := Aggregate(livingForest(), transactions)
		second := Aggregate(livingForest(), transactions)

		assert.Equal(t, first, second)
	})

	t.Run("a cyclic forest terminates", func(t *testing.T) {
		a := &category.Node{Category: category.Category{Id: 1, Name: "A", Type: category.TypeExpense}}
		b := &category.Node{Category: category.Category{Id: 2, Name: "B", Type: category.TypeExpense, BudgetLimit: 10000}}
		a.Children = []*category.Node{b}
		b.Children = []*category.Node{a}

		statuses := Aggregate([]*category.Node{a}, nil)

		require.Len(t, statuses, 2)
		assert.EqualValues(t, 10000, findStatus(t, statuses, 1).Limit)
	})
}
