/*
Package activerules answers the question which productions of a grammar may
take part in parsing a given input.

An Engine is created once per grammar and filter strategy. Strategy Linear
tests every production against the filtered terminals. Strategies Tree and
EarlyTree build a partition tree (see package ptree) at creation time and
traverse it per query. All strategies yield the same set of productions.

    g, _ := grammar.LoadFile("expr.grammar", true)
    engine := activerules.New(g, activerules.EarlyTree)
    active := engine.ActiveInput("num + num")

Productions without terminals on their right hand side are part of every
result.

Engines are safe for concurrent queries. Every query returns a fresh rule set.

Configuration

If configuration key "activerules-cross-check" is set, every query is
repeated with a linear scan and differences are traced as errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package activerules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'btreefilter.activerules'.
func tracer() tracing.Trace {
	return tracing.Select("btreefilter.activerules")
}
