/*
Package experiment measures filter times for grammars.

For a grammar, every right hand side of a filterable production is taken as
an input string. The longest one is the worst case input, as it contains the
most terminals and rules out the fewest productions. Run filters the worst
case input and randomly chosen inputs a number of times and reports the mean
times. Results can be written as CSV, one line per grammar:

    |g|,|t|,|p|,worst_case,|s|_worst,median,|s|_median

where |g| is the grammar size, |t| the number of terminals, |p| the number of
productions, and |s| the mean input length in bytes. Times are milliseconds.
The "median" columns hold the mean over random inputs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package experiment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'btreefilter.experiment'.
func tracer() tracing.Trace {
	return tracing.Select("btreefilter.experiment")
}
