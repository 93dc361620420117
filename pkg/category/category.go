package category

import "github.com/centavo/centavo/pkg/money"

type Type string

const (
	TypeIncome  Type = "INCOME"
	TypeExpense Type = "EXPENSE"
)

type Category struct {
	Id    int
	Name  string
	Color string
	Type  Type
	// BudgetLimit is the user-entered monthly limit. It only takes effect on
	// leaf categories; a category with children derives its limit from them.
	BudgetLimit money.Cents
	// ParentId is a weak reference: it may point at a category that no
	// longer exists, in which case the category is treated as a root.
	ParentId *int
}
