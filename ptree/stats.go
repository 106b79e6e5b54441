package ptree

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/jcd2020/btreefilter/grammar"
)

// Stats summarizes the shape of a partition tree.
type Stats struct {
	Nodes       int // number of nodes
	Leaves      int // number of leaf nodes
	MaxDepth    int // depth of the deepest node
	LeafRules   int // productions held by leaves
	Terminating int // productions held in terminating sets
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d depth=%d leaf-rules=%d terminating=%d",
		s.Nodes, s.Leaves, s.MaxDepth, s.LeafRules, s.Terminating)
}

// Stats computes statistics for t.
func (t *Tree) Stats() Stats {
	s := Stats{Nodes: len(t.nodes)}
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.depth > s.MaxDepth {
			s.MaxDepth = n.depth
		}
		if n.isLeaf() {
			s.Leaves++
			s.LeafRules += len(n.rules)
		}
		s.Terminating += len(n.terminating)
	}
	return s
}

// NodeInfo describes a tree node during a walk.
type NodeInfo struct {
	ID          int                   // arena index, root is 0
	Depth       int                   // distance from the root
	Symbol      string                // partition symbol, empty for leaves
	Leaf        bool                  // node has no partition symbol
	Contains    bool                  // node is the 'contains symbol' child of its parent
	Parent      int                   // arena index of parent, -1 for the root
	Rules       []*grammar.Production // residual productions
	Terminating []*grammar.Production // productions active when reaching this node
}

// Walk visits the nodes of t in pre-order, left subtrees first. If visitor
// returns false, the children of the current node are skipped.
// Clients must not modify the production slices of NodeInfo.
func (t *Tree) Walk(visitor func(NodeInfo) bool) {
	if len(t.nodes) == 0 {
		return
	}
	stack := arraystack.New()
	stack.Push(0)
	for !stack.Empty() {
		x, _ := stack.Pop()
		id := x.(int)
		n := &t.nodes[id]
		info := NodeInfo{
			ID:          id,
			Depth:       n.depth,
			Leaf:        n.isLeaf(),
			Contains:    n.isLeft,
			Parent:      n.parent,
			Rules:       n.rules,
			Terminating: n.terminating,
		}
		if !n.isLeaf() {
			info.Symbol = t.ordering[n.level]
		}
		if !visitor(info) {
			continue
		}
		if n.right != none {
			stack.Push(n.right)
		}
		if n.left != none {
			stack.Push(n.left)
		}
	}
}

// Dump is a debugging helper.
func (t *Tree) Dump() {
	tracer().Debugf("--- %s ----------------------------", t)
	t.Walk(func(n NodeInfo) bool {
		indent := ""
		for i := 0; i < n.Depth; i++ {
			indent += ". "
		}
		if n.Leaf {
			tracer().Debugf("%s[%d] leaf %d rules %d terminating", indent, n.ID,
				len(n.Rules), len(n.Terminating))
		} else {
			tracer().Debugf("%s[%d] %q %d rules %d terminating", indent, n.ID, n.Symbol,
				len(n.Rules), len(n.Terminating))
		}
		return true
	})
	tracer().Debugf("-----------------------------------------")
}
