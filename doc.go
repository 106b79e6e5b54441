/*
Package btreefilter speeds up the lookup of grammar productions which are still
possible for a partially observed input.

Given a context-free grammar and an input string, a production is ruled out if
its right hand side references a terminal which is absent from the input.
Doing this by scanning every production for every query is linear in the size
of the grammar. btreefilter instead indexes productions once, in a binary
partition tree keyed by terminal membership, and prunes whole subtrees for
each absent terminal. Package structure is as follows:

■ grammar: Package grammar holds symbols, productions, the symbol ordering and
the per-production terminal index, together with a loader for grammar files.

■ ptree: Package ptree implements the partition tree, in a baseline and an
early-terminating variant, plus the filter traversal.

■ activerules: Package activerules combines a grammar and a filter strategy
into an engine answering queries for input strings.

■ scanner: Package scanner defines tokenizers for query input.

■ experiment: Package experiment measures filter strategies over grammar files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package btreefilter
