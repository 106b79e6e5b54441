package ptree

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/jcd2020/btreefilter/grammar"
)

// visit is a pending node visit of a filter traversal.
type visit struct {
	depth int
	id    int
}

// Filter adds every production of t which is not ruled out by ft to active.
// active has to be non-nil; it is the only state modified by Filter.
// Filter returns the number of tree nodes visited.
//
// Nodes are visited at most once. A node is resolved by scanning its
// productions if it is a leaf, if its depth is beyond the deepest filtered
// level, or if it holds a single production. Otherwise the left subtree is
// skipped if the node's partition symbol has been filtered.
func (t *Tree) Filter(active *grammar.RuleSet, ft *grammar.FilteredTerminals) int {
	if len(t.nodes) == 0 {
		return 0
	}
	maxLevel := ft.MaxLevel()
	visited := 0
	stack := arraystack.New()
	stack.Push(visit{depth: 0, id: 0})
	for !stack.Empty() {
		x, _ := stack.Pop()
		v := x.(visit)
		n := &t.nodes[v.id]
		visited++
		active.Add(n.terminating...) // empty for baseline trees
		if n.isLeaf() || v.depth > maxLevel || len(n.rules) == 1 {
			Scan(active, n.rules, ft)
			continue
		}
		if n.right != none {
			stack.Push(visit{depth: v.depth + 1, id: n.right})
		}
		if n.left != none && !ft.Contains(t.ordering[n.level]) {
			stack.Push(visit{depth: v.depth + 1, id: n.left})
		}
	}
	tracer().Debugf("filter visited %d of %d nodes", visited, len(t.nodes))
	return visited
}

// Scan adds every production of prods which is not ruled out by ft to active,
// checking each production's terminals one by one.
func Scan(active *grammar.RuleSet, prods []*grammar.Production, ft *grammar.FilteredTerminals) {
	for _, p := range prods {
		if !p.RuledOut(ft) {
			active.Add(p)
		}
	}
}
