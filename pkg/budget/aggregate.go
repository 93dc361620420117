package budget

import (
	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/money"
	"github.com/centavo/centavo/pkg/transaction"
)

// Aggregate rolls spend and limits up the category forest. Transactions are
// expected to be pre-filtered to the requested period.
//
// For each node, spent is the sum of its own matching transactions plus the
// spent of its children, and the limit of a node with children is the sum of
// the children's limits, replacing the stored value. A transaction with a
// negative amount marks its category's subtree as faulted (its figures are
// still computed from the remaining data); sibling subtrees aggregate
// normally. The result lists every reachable node in depth-first order.
func Aggregate(forest []*category.Node, transactions []transaction.Transaction) []CategoryStatus {
	byCategory := map[int][]transaction.Transaction{}
	for _, t := range transactions {
		if t.CategoryId == nil {
			continue
		}
		byCategory[*t.CategoryId] = append(byCategory[*t.CategoryId], t)
	}

	var results []CategoryStatus
	seen := map[int]bool{}
	for _, root := range forest {
		aggregateNode(root, 0, byCategory, seen, &results)
	}
	return results
}

type rollup struct {
	spent   money.Cents
	limit   money.Cents
	faulted bool
}

func aggregateNode(node *category.Node, depth int, byCategory map[int][]transaction.Transaction, seen map[int]bool, results *[]CategoryStatus) rollup {
	// A node revisited within the same traversal means the input has a
	// cycle; stop descending instead of recursing forever.
	if seen[node.Id] {
		return rollup{}
	}
	seen[node.Id] = true

	var own money.Cents
	faulted := false
	for _, t := range byCategory[node.Id] {
		if t.Type != node.Type {
			continue
		}
		if t.Amount < 0 {
			faulted = true
			continue
		}
		own += t.Amount
	}

	r := rollup{spent: own, faulted: faulted}
	index := len(*results)
	*results = append(*results, CategoryStatus{}) // placeholder, filled after children

	var childLimits money.Cents
	for _, child := range node.Children {
		childRollup := aggregateNode(child, depth+1, byCategory, seen, results)
		r.spent += childRollup.spent
		childLimits += childRollup.limit
		r.faulted = r.faulted || childRollup.faulted
	}

	if node.HasChildren() {
		r.limit = childLimits
	} else {
		r.limit = node.BudgetLimit
	}

	percentage := 0.0
	if r.limit > 0 {
		percentage = float64(r.spent) / float64(r.limit) * 100
	}

	(*results)[index] = CategoryStatus{
		CategoryId:  node.Id,
		Name:        node.Name,
		Spent:       r.spent,
		Limit:       r.limit,
		Percentage:  percentage,
		Status:      StatusFor(percentage),
		Depth:       depth,
		HasChildren: node.HasChildren(),
		Faulted:     r.faulted,
	}
	return r
}
