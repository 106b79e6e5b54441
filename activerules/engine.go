package activerules

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jcd2020/btreefilter/grammar"
	"github.com/jcd2020/btreefilter/ptree"
	"github.com/jcd2020/btreefilter/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// Strategy selects how an engine finds the active productions.
type Strategy int

// Filter strategies.
const (
	Linear    Strategy = iota // test every production
	Tree                      // baseline partition tree
	EarlyTree                 // early-terminating partition tree
)

var strategyNames = []string{"linear", "tree", "early"}

func (s Strategy) String() string {
	if s < Linear || s > EarlyTree {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the strategy for a name as returned by String().
// "baseline" and "early-tree" are accepted as well.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "linear", "scan":
		return Linear, nil
	case "tree", "baseline":
		return Tree, nil
	case "early", "early-tree", "early-terminating":
		return EarlyTree, nil
	}
	return Linear, fmt.Errorf("unknown filter strategy %q", s)
}

// Engine finds the active productions of a grammar for inputs.
type Engine struct {
	mismatches int64 // cross-check failures, accessed atomically
	g          *grammar.Grammar
	strategy   Strategy
	tree       *ptree.Tree // nil for strategy Linear
}

// New creates an engine for a grammar. For tree strategies the partition tree
// is built immediately. Strategy EarlyTree needs a grammar with deepest
// symbols; without them the tree will behave like a baseline tree.
func New(g *grammar.Grammar, s Strategy) *Engine {
	e := &Engine{g: g, strategy: s}
	switch s {
	case Tree:
		e.tree = ptree.Build(g.Ordering(), g.Filterable(), ptree.Baseline)
	case EarlyTree:
		if !g.HasDeepestSymbols() {
			tracer().Infof("grammar %s has no deepest symbols, early termination disabled", g.Name)
		}
		e.tree = ptree.Build(g.Ordering(), g.Filterable(), ptree.EarlyTerminating)
	}
	tracer().Debugf("created %s engine for %v", s, g)
	return e
}

// Grammar returns the grammar of e.
func (e *Engine) Grammar() *grammar.Grammar {
	return e.g
}

// Strategy returns the filter strategy of e.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Tree returns the partition tree of e, or nil for strategy Linear.
func (e *Engine) Tree() *ptree.Tree {
	return e.tree
}

// Filter returns the productions not ruled out by ft, including the
// productions without terminals.
func (e *Engine) Filter(ft *grammar.FilteredTerminals) *grammar.RuleSet {
	active := grammar.NewRuleSet(e.g.AlwaysActive()...)
	if e.tree == nil {
		ptree.Scan(active, e.g.Filterable(), ft)
	} else {
		visited := e.tree.Filter(active, ft)
		tracer().Debugf("%s filter visited %d of %d nodes", e.strategy, visited, e.tree.Size())
	}
	if e.strategy != Linear && gconf.GetBool(CrossCheckKey) {
		if !e.check(active, ft) {
			atomic.AddInt64(&e.mismatches, 1)
		}
	}
	return active
}

// CrossCheckKey is the configuration key switching on cross-checks.
const CrossCheckKey = "activerules-cross-check"

// Mismatches returns the number of queries for which a cross-check found a
// difference to the linear scan.
func (e *Engine) Mismatches() int64 {
	return atomic.LoadInt64(&e.mismatches)
}

// check compares a filter result with a linear scan and traces differences.
func (e *Engine) check(active *grammar.RuleSet, ft *grammar.FilteredTerminals) bool {
	expected := grammar.NewRuleSet(e.g.AlwaysActive()...)
	ptree.Scan(expected, e.g.Filterable(), ft)
	if active.Equals(expected) {
		return true
	}
	tracer().Errorf("%s filter differs from linear scan for filtered terminals %v", e.strategy, ft.Symbols())
	for _, p := range expected.Difference(active) {
		tracer().Errorf("    missing:  %v", p)
	}
	for _, p := range active.Difference(expected) {
		tracer().Errorf("    spurious: %v", p)
	}
	return false
}

// Active returns the active productions for an input, given as a list of
// tokens. Tokens which are not terminals of the grammar are ignored.
func (e *Engine) Active(tokens []string) *grammar.RuleSet {
	return e.Filter(e.g.FilteredBy(tokens))
}

// ActiveFor drains a tokenizer and returns the active productions for the
// lexemes it produced.
func (e *Engine) ActiveFor(t scanner.Tokenizer) *grammar.RuleSet {
	return e.Active(scanner.Lexemes(t))
}

// ActiveInput returns the active productions for an input string. Terminals
// in input have to be separated by white space.
func (e *Engine) ActiveInput(input string) *grammar.RuleSet {
	return e.ActiveFor(scanner.NewFieldsTokenizer(input))
}
