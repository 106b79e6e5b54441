package ptree

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/jcd2020/btreefilter/grammar"
)

// Variant selects the construction and traversal strategy of a partition tree.
type Variant int

// Partition tree variants.
const (
	Baseline         Variant = iota // plain partitioning by terminal membership
	EarlyTerminating                // resolve productions at their deepest terminal
)

func (v Variant) String() string {
	switch v {
	case Baseline:
		return "baseline"
	case EarlyTerminating:
		return "early-terminating"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant returns the variant for a name as returned by Variant.String().
// "early" is accepted as a short form.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "baseline":
		return Baseline, nil
	case "early", "early-terminating":
		return EarlyTerminating, nil
	}
	return Baseline, fmt.Errorf("unknown partition tree variant %q", s)
}

const none = -1 // null value for node and level indices

// node is a partition tree node, living in the tree's node arena.
type node struct {
	rules       []*grammar.Production // residual productions below this node
	terminating []*grammar.Production // productions active as soon as this node is reached
	depth       int                   // distance from the root
	level       int                   // level of the partition symbol, or none for leaves
	parent      int                   // arena index of parent, or none for the root
	isLeft      bool                  // is this the 'contains symbol' child of parent?
	left, right int                   // arena indices of children, or none
}

func (n *node) isLeaf() bool {
	return n.level == none
}

// Tree is a partition tree over a set of productions. Create one with Build.
// Trees are read-only after construction.
type Tree struct {
	variant  Variant
	ordering []string
	nodes    []node // node arena, root at index 0
}

// partition is a pending work item during tree construction.
type partition struct {
	depth       int
	parent      int
	isLeft      bool
	rules       []*grammar.Production
	terminating []*grammar.Production
}

// Build constructs a partition tree for a set of productions, partitioning in
// the order given by ordering. Productions are expected to be the filterable
// productions of a single grammar. For variant EarlyTerminating the grammar
// should have been built with deepest symbols; productions without a deepest
// symbol are resolved by scanning, as in the baseline variant. Early
// termination relies on ordering being the grammar's symbol ordering, or a
// prefix of it.
//
// Construction is iterative and breadth-first. Nodes are created for every
// work item first, children are linked to their parents afterwards.
func Build(ordering []string, prods []*grammar.Production, v Variant) *Tree {
	t := &Tree{
		variant:  v,
		ordering: append([]string(nil), ordering...),
	}
	root := &partition{depth: 0, parent: none}
	for _, p := range prods {
		if p != nil {
			root.rules = append(root.rules, p)
		}
	}
	queue := singlylinkedlist.New()
	queue.Add(root)
	for !queue.Empty() {
		x, _ := queue.Get(0)
		queue.Remove(0)
		w := x.(*partition)
		id := len(t.nodes)
		n := node{
			rules:       w.rules,
			terminating: w.terminating,
			depth:       w.depth,
			level:       none,
			parent:      w.parent,
			isLeft:      w.isLeft,
			left:        none,
			right:       none,
		}
		if len(w.rules) > 1 && w.depth < len(t.ordering) {
			n.level = w.depth
			left, term, right := t.split(w.rules, t.ordering[w.depth])
			if len(left) > 0 || len(term) > 0 {
				queue.Add(&partition{
					depth:       w.depth + 1,
					parent:      id,
					isLeft:      true,
					rules:       left,
					terminating: term,
				})
			}
			if len(right) > 0 {
				queue.Add(&partition{
					depth:  w.depth + 1,
					parent: id,
					rules:  right,
				})
			}
		}
		t.nodes = append(t.nodes, n)
	}
	for id := 1; id < len(t.nodes); id++ { // second pass: link children
		n := &t.nodes[id]
		if n.isLeft {
			t.nodes[n.parent].left = id
		} else {
			t.nodes[n.parent].right = id
		}
	}
	tracer().Infof("built %s partition tree with %d nodes for %d productions",
		v, len(t.nodes), len(root.rules))
	return t
}

// split partitions rules by membership of sym. For early-terminating trees,
// productions whose deepest terminal is sym are separated from the left part.
func (t *Tree) split(rules []*grammar.Production, sym string) (left, term, right []*grammar.Production) {
	for _, p := range rules {
		if !p.HasTerminal(sym) {
			right = append(right, p)
			continue
		}
		if t.variant == EarlyTerminating {
			if d, ok := p.Deepest(); ok && d == sym {
				term = append(term, p)
				continue
			}
		}
		left = append(left, p)
	}
	return
}

// Variant returns the variant this tree has been built for.
func (t *Tree) Variant() Variant {
	return t.variant
}

// Size returns the number of nodes of t.
func (t *Tree) Size() int {
	return len(t.nodes)
}

func (t *Tree) String() string {
	return fmt.Sprintf("(%s tree | %d nodes)", t.variant, len(t.nodes))
}
