/*
Package grammar holds the grammar side of rule filtering: symbols, productions,
the global symbol ordering and the per-production terminal index.

Building a Grammar

Grammars are either loaded from a line-oriented grammar file or assembled
with a builder. Each production consists of a left hand side symbol and a
sequence of right hand side symbols.

    b := grammar.NewBuilder("G")
    b.Add("S", "a", "b")     // S -> a b
    b.Add("S", "c")          // S -> c
    b.Add("S", "X")          // S -> X
    b.Add("X", "c", "a")     // X -> c a
    g, err := b.Grammar(true)

Every distinct symbol on a right hand side receives a level, which is its
position in first-occurrence order: a=0, b=1, c=2, X=3. Terminals are symbols
which never appear on a left hand side (a, b, c). Productions without any
terminal on their right hand side (S -> X) can never be ruled out by terminal
absence and are kept in a separate always-active set.

Filtered Terminals

For a query, the terminals absent from the input are collected into a
FilteredTerminals set, together with the deepest level among them:

    ft := g.FilteredBy([]string{"c"})  // a and b are absent, deepest level 1

Grammar File Format

One production per line, left hand side and right hand side separated by
"->", right hand side symbols separated by whitespace:

    S->a b
    S->c
    # comment lines and blank lines are skipped

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'btreefilter.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("btreefilter.grammar")
}
