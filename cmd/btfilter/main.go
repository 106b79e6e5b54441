/*
Command btfilter finds the productions of a grammar which may take part in
parsing an input, using partition trees.

    btfilter filter expr.grammar num + num
    btfilter stats --tree expr.grammar
    btfilter repl expr.grammar
    btfilter bench -o results.csv grammars/

Grammar files hold one production per line:

    E -> E + T
    F -> ( E )

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
