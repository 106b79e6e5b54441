package grammar

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FilteredTerminals is the set of terminals known to be absent from the
// input of a query, together with the deepest level among them. Partitions
// below that level cannot rule out any further productions.
//
// A nil *FilteredTerminals is an empty set.
type FilteredTerminals struct {
	absent   symset
	maxLevel int
}

// NoneFiltered returns an empty set of filtered terminals.
func NoneFiltered() *FilteredTerminals {
	return &FilteredTerminals{absent: symset{}, maxLevel: -1}
}

// FilteredBy derives the filtered terminals for an input: every terminal of
// g not contained in present is absent. Tokens of present which are not
// terminals of g are ignored.
func (g *Grammar) FilteredBy(present []string) *FilteredTerminals {
	seen := symset{}
	for _, tok := range present {
		if g.terminals.contains(tok) {
			seen = seen.add(tok)
		}
	}
	ft := NoneFiltered()
	for t := range g.terminals {
		if !seen.contains(t) {
			ft.add(t, g.levels[t])
		}
	}
	tracer().Debugf("input has %d of %d terminals, %d filtered, deepest level %d",
		len(seen), len(g.terminals), len(ft.absent), ft.maxLevel)
	return ft
}

// Filtered creates a set of filtered terminals from terminals known to be
// absent. Symbols which are not terminals of g are ignored.
func (g *Grammar) Filtered(absent ...string) *FilteredTerminals {
	ft := NoneFiltered()
	for _, sym := range absent {
		if g.terminals.contains(sym) {
			ft.add(sym, g.levels[sym])
		}
	}
	return ft
}

func (ft *FilteredTerminals) add(sym string, level int) {
	ft.absent = ft.absent.add(sym)
	if level > ft.maxLevel {
		ft.maxLevel = level
	}
}

// Contains is true if terminal sym is absent from the input.
func (ft *FilteredTerminals) Contains(sym string) bool {
	if ft == nil {
		return false
	}
	return ft.absent.contains(sym)
}

// Size returns the number of filtered terminals.
func (ft *FilteredTerminals) Size() int {
	if ft == nil {
		return 0
	}
	return len(ft.absent)
}

// MaxLevel returns the deepest level of any filtered terminal, or -1 if no
// terminal is filtered.
func (ft *FilteredTerminals) MaxLevel() int {
	if ft == nil {
		return -1
	}
	return ft.maxLevel
}

// Symbols returns the filtered terminals in lexical order.
func (ft *FilteredTerminals) Symbols() []string {
	if ft == nil {
		return nil
	}
	syms := maps.Keys(ft.absent)
	slices.Sort(syms)
	return syms
}
