package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

//  S -> a b
//  S -> c
//  S -> X
//  X -> c a
//  X ->
func makeGrammar(t *testing.T, withDeepest bool) *Grammar {
	b := NewBuilder("G")
	b.Add("S", "a", "b")
	b.Add("S", "c")
	b.Add("S", "X")
	b.Add("X", "c", "a")
	b.Add("X")
	g, err := b.Grammar(withDeepest)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	g := makeGrammar(t, false)
	g.Dump()
	expected := []string{"a", "b", "c", "X"}
	ordering := g.Ordering()
	if len(ordering) != len(expected) {
		t.Fatalf("Expected ordering to be %v, is %v", expected, ordering)
	}
	for i, sym := range expected {
		if ordering[i] != sym {
			t.Errorf("Expected ordering[%d] to be %q, is %q", i, sym, ordering[i])
		}
		if l, ok := g.Level(sym); !ok || l != i {
			t.Errorf("Expected level of %q to be %d, is %d", sym, i, l)
		}
	}
	if _, ok := g.Level("S"); ok {
		t.Errorf("Expected S to have no level, since it never occurs on a RHS")
	}
	if g.Size() != 6 {
		t.Errorf("Expected grammar size 6, is %d", g.Size())
	}
}

func TestTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	g := makeGrammar(t, false)
	if terms := strings.Join(g.Terminals(), ","); terms != "a,b,c" {
		t.Errorf("Expected terminals a,b,c, are %s", terms)
	}
	if nts := strings.Join(g.NonTerminals(), ","); nts != "S,X" {
		t.Errorf("Expected non-terminals S,X, are %s", nts)
	}
	if g.IsTerminal("X") || !g.IsNonTerminal("X") {
		t.Errorf("Expected X to be a non-terminal")
	}
	if len(g.Filterable()) != 3 {
		t.Errorf("Expected 3 filterable productions, have %d", len(g.Filterable()))
	}
	if len(g.AlwaysActive()) != 2 {
		t.Errorf("Expected 2 always-active productions, have %d", len(g.AlwaysActive()))
	}
	for _, p := range g.AlwaysActive() {
		if p.IsFilterable() || len(p.Terminals()) != 0 {
			t.Errorf("Expected %v to have no terminals", p)
		}
	}
	p := g.Production(3) // X -> c a
	if !p.HasTerminal("a") || !p.HasTerminal("c") || p.HasTerminal("b") {
		t.Errorf("Expected %v to have terminals {c, a}, has %v", p, p.Terminals())
	}
}

func TestDeepest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	g := makeGrammar(t, false)
	if _, ok := g.Production(0).Deepest(); ok {
		t.Errorf("Expected deepest symbols not to be computed")
	}
	g = makeGrammar(t, true)
	if !g.HasDeepestSymbols() {
		t.Fatalf("Expected grammar to have deepest symbols")
	}
	cases := []struct {
		serial  int
		deepest string
		level   int
	}{
		{0, "b", 1}, // S -> a b
		{1, "c", 2}, // S -> c
		{3, "c", 2}, // X -> c a
	}
	for _, c := range cases {
		p := g.Production(c.serial)
		d, ok := p.Deepest()
		if !ok || d != c.deepest || p.DeepestLevel() != c.level {
			t.Errorf("Expected deepest symbol of %v to be %s@%d, is %s@%d", p, c.deepest, c.level,
				d, p.DeepestLevel())
		}
	}
	if _, ok := g.Production(2).Deepest(); ok { // S -> X
		t.Errorf("Expected %v to have no deepest terminal", g.Production(2))
	}
}

func TestDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	p1 := b.Add("S", "a", "b")
	p2 := b.Add("S", "a", "b")
	p3 := b.Add("S", "ab")
	if p1 != p2 {
		t.Errorf("Expected duplicate production to be collapsed")
	}
	if p1.Equals(p3) || p1.Key() == p3.Key() {
		t.Errorf("Expected %v and %v to be different", p1, p3)
	}
	g, err := b.Grammar(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Productions()) != 2 {
		t.Errorf("Expected 2 productions, have %d", len(g.Productions()))
	}
	if _, err = b.Grammar(false); err == nil {
		t.Errorf("Expected re-use of builder to fail")
	}
}

func TestEmptyLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.Add("", "a")
	if _, err := b.Grammar(false); err == nil {
		t.Errorf("Expected grammar with empty LHS to be rejected")
	}
}

func TestFilteredBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	g := makeGrammar(t, false)
	ft := g.FilteredBy([]string{"c", "X", "zzz"})
	if ft.Size() != 2 || !ft.Contains("a") || !ft.Contains("b") || ft.Contains("c") {
		t.Errorf("Expected filtered terminals {a, b}, are %v", ft.Symbols())
	}
	if ft.MaxLevel() != 1 {
		t.Errorf("Expected deepest filtered level to be 1, is %d", ft.MaxLevel())
	}
	all := g.FilteredBy([]string{"a", "b", "c"})
	if all.Size() != 0 || all.MaxLevel() != -1 {
		t.Errorf("Expected no filtered terminals, have %v", all.Symbols())
	}
	ft = g.Filtered("b", "S")
	if ft.Size() != 1 || ft.MaxLevel() != 1 {
		t.Errorf("Expected filtered terminals {b}, are %v", ft.Symbols())
	}
	var none *FilteredTerminals
	if none.Contains("a") || none.Size() != 0 || none.MaxLevel() != -1 {
		t.Errorf("Expected nil filtered terminals to be empty")
	}
}

func TestRuledOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	g := makeGrammar(t, false)
	ft := g.Filtered("b")
	if !g.Production(0).RuledOut(ft) {
		t.Errorf("Expected %v to be ruled out by absence of b", g.Production(0))
	}
	if g.Production(1).RuledOut(ft) || g.Production(2).RuledOut(ft) {
		t.Errorf("Expected S -> c and S -> X not to be ruled out")
	}
}

func TestRuleSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	g := makeGrammar(t, false)
	rs := NewRuleSet(g.Production(3), g.Production(1))
	rs.Add(g.Production(1), nil)
	if rs.Size() != 2 {
		t.Errorf("Expected rule set of size 2, is %d", rs.Size())
	}
	vals := rs.Values()
	if vals[0].Serial != 1 || vals[1].Serial != 3 {
		t.Errorf("Expected rule set to be ordered by serial, is %v", rs)
	}
	other := NewRuleSet(g.Productions()...)
	if rs.Equals(other) {
		t.Errorf("Expected %v to differ from %v", rs, other)
	}
	if d := other.Difference(rs); len(d) != 3 {
		t.Errorf("Expected difference of 3 productions, is %v", d)
	}
	rs.AddAll(other)
	if !rs.Equals(other) || !rs.Contains(g.Production(4)) {
		t.Errorf("Expected %v to equal %v", rs, other)
	}
	var empty *RuleSet
	if !empty.Empty() || empty.Contains(g.Production(0)) {
		t.Errorf("Expected nil rule set to be empty")
	}
}

var grammarFile = `
# test grammar
S->a b
S -> c
S->X
X->c  a
X->
`

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	g, err := Load("test", strings.NewReader(grammarFile), true)
	if err != nil {
		t.Fatal(err)
	}
	ref := makeGrammar(t, true)
	if len(g.Productions()) != len(ref.Productions()) {
		t.Fatalf("Expected %d productions, have %d", len(ref.Productions()), len(g.Productions()))
	}
	for i, p := range g.Productions() {
		if !p.Equals(ref.Production(i)) {
			t.Errorf("Expected production #%d to be %v, is %v", i, ref.Production(i), p)
		}
	}
	if strings.Join(g.Ordering(), " ") != "a b c X" {
		t.Errorf("Expected ordering [a b c X], is %v", g.Ordering())
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.grammar")
	defer teardown()
	//
	inputs := []struct {
		src   string
		line  int
		cause error
	}{
		{"S->a\nS a b\n", 2, errNoArrow},
		{"S->a\n\n -> b\n", 3, errNoLHS},
	}
	for _, input := range inputs {
		_, err := Load("bad", strings.NewReader(input.src), false)
		var lerr *LoadError
		if !errors.As(err, &lerr) {
			t.Fatalf("Expected a load error, got %v", err)
		}
		if lerr.Line != input.line || !errors.Is(err, input.cause) {
			t.Errorf("Expected error %q at line %d, have %v", input.cause, input.line, err)
		}
	}
	if _, err := LoadFile("/does/not/exist", false); err == nil {
		t.Errorf("Expected missing grammar file to produce an error")
	}
}
