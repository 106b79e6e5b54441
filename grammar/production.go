package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// Production is a grammar rule LHS -> RHS. Productions are immutable after
// the grammar they belong to has been built.
type Production struct {
	Serial int      // position within the grammar's productions
	LHS    string   // left hand side symbol
	RHS    []string // right hand side symbols, may be empty

	terminals    symset   // terminals occuring in RHS
	termlist     []string // the same terminals, in order of first occurence in RHS
	deepest      string   // terminal of RHS with the highest level
	deepestLevel int      // level of deepest, or -1
}

func newProduction(lhs string, rhs []string) *Production {
	return &Production{
		LHS:          lhs,
		RHS:          append([]string(nil), rhs...),
		terminals:    symset{},
		deepestLevel: -1,
	}
}

// Equals is true if both productions have the same LHS and identical
// right hand sides.
func (p *Production) Equals(q *Production) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil || p.LHS != q.LHS || len(p.RHS) != len(q.RHS) {
		return false
	}
	for i, sym := range p.RHS {
		if q.RHS[i] != sym {
			return false
		}
	}
	return true
}

// productionKey is the hashable content of a production.
type productionKey struct {
	LHS string   `hash:"name:lhs"`
	RHS []string `hash:"name:rhs"`
}

// Key returns a content hash for p. Equal productions have equal keys.
func (p *Production) Key() string {
	h, err := structhash.Hash(productionKey{LHS: p.LHS, RHS: p.RHS}, 1)
	if err != nil {
		tracer().Errorf("cannot hash production %v: %v", p, err)
		return p.String()
	}
	return h
}

// Terminals returns the distinct terminals of p's right hand side, in order
// of first occurence. Clients must not modify the returned slice.
func (p *Production) Terminals() []string {
	return p.termlist
}

// HasTerminal is true if terminal sym occurs on p's right hand side.
func (p *Production) HasTerminal(sym string) bool {
	return p.terminals.contains(sym)
}

// IsFilterable is true if p references at least one terminal. Productions
// without terminals are always active.
func (p *Production) IsFilterable() bool {
	return len(p.termlist) > 0
}

// Deepest returns the terminal of p with the highest level. The second return
// value is false if deepest symbols have not been computed for p's grammar or
// p has no terminals.
func (p *Production) Deepest() (string, bool) {
	return p.deepest, p.deepestLevel >= 0
}

// DeepestLevel returns the level of p's deepest terminal, or -1.
func (p *Production) DeepestLevel() int {
	return p.deepestLevel
}

// RuledOut is true if any terminal of p is contained in the filtered set.
func (p *Production) RuledOut(ft *FilteredTerminals) bool {
	if ft.Size() == 0 {
		return false
	}
	for _, t := range p.termlist {
		if ft.Contains(t) {
			return true
		}
	}
	return false
}

func (p *Production) String() string {
	if len(p.RHS) == 0 {
		return fmt.Sprintf("%s ->", p.LHS)
	}
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(p.RHS, " "))
}

// --- Symbol sets -----------------------------------------------------------

type symset map[string]struct{}

var exists = struct{}{}

func (set symset) add(sym string) symset {
	if set == nil {
		set = symset{}
	}
	set[sym] = exists
	return set
}

func (set symset) contains(sym string) bool {
	if set == nil {
		return false
	}
	_, ok := set[sym]
	return ok
}
