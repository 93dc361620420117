package category

// Node is a category with its resolved children. Children are ordered as
// the input slice was.
type Node struct {
	Category
	Children []*Node
}

// HasChildren reports whether the category's limit is derived rather than
// user-editable.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// BuildForest turns a flat category list into a parent/child forest.
// A ParentId that does not resolve to a known category silently demotes the
// node to a root; references to the category itself are ignored the same
// way.
func BuildForest(categories []Category) []*Node {
	byId := make(map[int]*Node, len(categories))
	for _, c := range categories {
		byId[c.Id] = &Node{Category: c}
	}

	roots := make([]*Node, 0, len(categories))
	for _, c := range categories {
		node := byId[c.Id]
		if c.ParentId != nil && *c.ParentId != c.Id {
			if parent, ok := byId[*c.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// Walk visits the node and its descendants depth-first. A node seen twice
// during the descent is treated as a leaf, so a malformed cyclic forest
// cannot cause unbounded recursion.
func (n *Node) Walk(visit func(*Node)) {
	n.walk(visit, map[int]bool{})
}

func (n *Node) walk(visit func(*Node), seen map[int]bool) {
	if seen[n.Id] {
		return
	}
	seen[n.Id] = true
	visit(n)
	for _, child := range n.Children {
		child.walk(visit, seen)
	}
}
