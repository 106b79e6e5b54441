package grammar

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Grammar is an indexed set of productions. It is built once, by a Builder or
// by loading a grammar file, and is read-only afterwards.
type Grammar struct {
	Name         string
	productions  []*Production  // all productions, in order of first definition
	filterable   []*Production  // productions referencing at least one terminal
	alwaysActive []*Production  // productions without terminals
	ordering     []string       // RHS symbols in first-occurrence order
	levels       map[string]int // symbol -> position in ordering
	terminals    symset
	nonterminals symset
	size         int  // sum of RHS lengths
	hasDeepest   bool // deepest symbols have been computed
}

// Productions returns all productions of g, ordered by serial number.
func (g *Grammar) Productions() []*Production {
	return g.productions
}

// Production returns the production with serial number n, or nil.
func (g *Grammar) Production(n int) *Production {
	if n < 0 || n >= len(g.productions) {
		return nil
	}
	return g.productions[n]
}

// Filterable returns the productions which reference at least one terminal.
func (g *Grammar) Filterable() []*Production {
	return g.filterable
}

// AlwaysActive returns the productions without any terminal on the right hand
// side. They are part of every filter result.
func (g *Grammar) AlwaysActive() []*Production {
	return g.alwaysActive
}

// Ordering returns the distinct right hand side symbols in first-occurrence
// order. The index of a symbol is its level.
func (g *Grammar) Ordering() []string {
	return append([]string(nil), g.ordering...)
}

// Level returns the level of a symbol. Symbols which never occur on a right
// hand side have no level.
func (g *Grammar) Level(sym string) (int, bool) {
	l, ok := g.levels[sym]
	return l, ok
}

// IsTerminal is true for symbols which occur on a right hand side but never
// on a left hand side.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.contains(sym)
}

// IsNonTerminal is true for symbols appearing on the left hand side of a
// production.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonterminals.contains(sym)
}

// Terminals returns the terminals of g in lexical order.
func (g *Grammar) Terminals() []string {
	t := maps.Keys(g.terminals)
	slices.Sort(t)
	return t
}

// NonTerminals returns the non-terminals of g in lexical order.
func (g *Grammar) NonTerminals() []string {
	n := maps.Keys(g.nonterminals)
	slices.Sort(n)
	return n
}

// Size returns the accumulated length of all right hand sides.
func (g *Grammar) Size() int {
	return g.size
}

// HasDeepestSymbols is true if the grammar has been built with deepest
// symbols computed, as needed by early-terminating partition trees.
func (g *Grammar) HasDeepestSymbols() bool {
	return g.hasDeepest
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ------------------------------", g.Name)
	for _, p := range g.productions {
		tracer().Debugf("%3d: %v", p.Serial, p)
	}
	tracer().Debugf("ordering  = %v", g.ordering)
	tracer().Debugf("terminals = %v", g.Terminals())
	tracer().Debugf("---------------------------------------------")
}

func (g *Grammar) String() string {
	return fmt.Sprintf("(grammar %s | %d productions, %d terminals)",
		g.Name, len(g.productions), len(g.terminals))
}

// === Builder ===============================================================

// Builder collects productions for a grammar. Duplicate productions are
// collapsed into the first one defined.
type Builder struct {
	name  string
	prods []*Production
	seen  map[string]*Production
	err   error
}

// NewBuilder creates a builder for a named grammar.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		seen: make(map[string]*Production),
	}
}

// Add adds a production lhs -> rhs. An empty rhs denotes an epsilon production.
// It returns the production, which may be an existing one if an equal
// production has been added before.
func (b *Builder) Add(lhs string, rhs ...string) *Production {
	if lhs == "" {
		if b.err == nil {
			b.err = errors.New("production with empty left hand side")
		}
		return nil
	}
	p := newProduction(lhs, rhs)
	key := p.Key()
	if q, ok := b.seen[key]; ok && q.Equals(p) {
		tracer().Debugf("ignoring duplicate production %v", p)
		return q
	}
	p.Serial = len(b.prods)
	b.prods = append(b.prods, p)
	b.seen[key] = p
	return p
}

// Grammar creates the grammar from the collected productions and indexes it.
// If withDeepest is set, deepest symbols of productions are computed, which
// is needed for early-terminating partition trees.
//
// Calling Grammar() a second time returns an error.
func (b *Builder) Grammar(withDeepest bool) (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.prods == nil && b.seen == nil {
		return nil, errors.New("grammar builder has already been used")
	}
	g := &Grammar{
		Name:         b.name,
		productions:  b.prods,
		levels:       make(map[string]int),
		terminals:    symset{},
		nonterminals: symset{},
	}
	b.prods, b.seen = nil, nil
	g.index(withDeepest)
	return g, nil
}

// index computes the symbol ordering, terminal classification and the
// per-production terminal sets.
func (g *Grammar) index(withDeepest bool) {
	for _, p := range g.productions {
		g.nonterminals = g.nonterminals.add(p.LHS)
		g.size += len(p.RHS)
		for _, sym := range p.RHS {
			if _, ok := g.levels[sym]; !ok {
				g.levels[sym] = len(g.ordering)
				g.ordering = append(g.ordering, sym)
			}
		}
	}
	for _, sym := range g.ordering {
		if !g.nonterminals.contains(sym) {
			g.terminals = g.terminals.add(sym)
		}
	}
	for _, p := range g.productions {
		for _, sym := range p.RHS {
			if g.terminals.contains(sym) && !p.terminals.contains(sym) {
				p.terminals = p.terminals.add(sym)
				p.termlist = append(p.termlist, sym)
			}
		}
		if withDeepest {
			g.computeDeepest(p)
		}
		if p.IsFilterable() {
			g.filterable = append(g.filterable, p)
		} else {
			g.alwaysActive = append(g.alwaysActive, p)
		}
	}
	g.hasDeepest = withDeepest
	tracer().Infof("grammar %s: %d productions, %d filterable, %d symbols, %d terminals",
		g.Name, len(g.productions), len(g.filterable), len(g.ordering), len(g.terminals))
}

// computeDeepest finds the terminal of p with the highest level, scanning the
// right hand side from left to right.
func (g *Grammar) computeDeepest(p *Production) {
	deepest := -1
	for _, sym := range p.RHS {
		if !g.terminals.contains(sym) {
			continue
		}
		if l := g.levels[sym]; l >= deepest {
			deepest = l
			p.deepest = sym
		}
	}
	p.deepestLevel = deepest
}
