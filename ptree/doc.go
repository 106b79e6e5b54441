/*
Package ptree implements partition trees, an index over grammar productions
keyed by terminal membership.

A partition tree is built once from a grammar's filterable productions and
its symbol ordering. The node at depth d partitions its productions by the
symbol at ordering[d]: productions containing the symbol go to the left child,
the others to the right child. A query supplies the terminals absent from the
input. Whenever a node's partition symbol is absent, the whole left subtree is
ruled out in one step.

    g, _ := grammar.LoadFile("my.grammar", true)
    tree := ptree.Build(g.Ordering(), g.Filterable(), ptree.EarlyTerminating)
    active := grammar.NewRuleSet(g.AlwaysActive()...)
    tree.Filter(active, g.FilteredBy(tokens))

Early Termination

The EarlyTerminating variant additionally separates, at each left child, the
productions whose deepest terminal is the partition symbol of the parent.
Reaching that child means every terminal of these productions has been
confirmed present on the path from the root, so they are active without
looking any further.

Concurrency

Trees are immutable after construction and may be shared between goroutines,
provided every query uses its own result set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'btreefilter.ptree'.
func tracer() tracing.Trace {
	return tracing.Select("btreefilter.ptree")
}
