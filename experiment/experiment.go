package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jcd2020/btreefilter/activerules"
	"github.com/jcd2020/btreefilter/grammar"
	"golang.org/x/exp/slices"
)

// DefaultIterations is the number of filter runs per input class.
const DefaultIterations = 10

// Options control an experiment run.
type Options struct {
	Iterations int        // filter runs per input class, DefaultIterations if 0
	Rand       *rand.Rand // source for random inputs, time-seeded if nil
}

func (opts Options) iterations() int {
	if opts.Iterations <= 0 {
		return DefaultIterations
	}
	return opts.Iterations
}

// Result holds the measurements for one grammar.
type Result struct {
	Grammar      string
	Size         int           // accumulated length of right hand sides
	Terminals    int           // number of terminals
	Productions  int           // number of productions
	WorstCase    time.Duration // mean filter time for the longest input
	WorstLength  float64       // length of the longest input
	RandomCase   time.Duration // mean filter time for random inputs
	RandomLength float64       // mean length of random inputs
}

func (r Result) String() string {
	return fmt.Sprintf("%s: |g|=%d |t|=%d |p|=%d worst=%v random=%v",
		r.Grammar, r.Size, r.Terminals, r.Productions, r.WorstCase, r.RandomCase)
}

// Language returns the right hand sides of the filterable productions of g as
// input strings, longest first. Strings of equal length keep grammar order.
func Language(g *grammar.Grammar) []string {
	prods := g.Filterable()
	lang := make([]string, len(prods))
	for i, p := range prods {
		lang[i] = strings.Join(p.RHS, " ")
	}
	slices.SortStableFunc(lang, func(a, b string) int {
		return len(b) - len(a)
	})
	return lang
}

// Run measures the filter times of an engine with strategy s for grammar g.
func Run(g *grammar.Grammar, s activerules.Strategy, opts Options) Result {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := opts.iterations()
	r := Result{
		Grammar:     g.Name,
		Size:        g.Size(),
		Terminals:   len(g.Terminals()),
		Productions: len(g.Productions()),
	}
	engine := activerules.New(g, s)
	lang := Language(g)
	if len(lang) == 0 {
		tracer().Infof("grammar %s has no filterable productions", g.Name)
		return r
	}
	tracer().Debugf("running random case experiments for %s", g.Name)
	var total time.Duration
	var length int
	for i := 0; i < n; i++ {
		input := lang[rnd.Intn(len(lang))]
		total += timeFilter(engine, input)
		length += len(input)
	}
	r.RandomCase = total / time.Duration(n)
	r.RandomLength = float64(length) / float64(n)
	tracer().Debugf("running worst case experiments for %s", g.Name)
	total = 0
	for i := 0; i < n; i++ {
		total += timeFilter(engine, lang[0])
	}
	r.WorstCase = total / time.Duration(n)
	r.WorstLength = float64(len(lang[0]))
	tracer().Infof("%v", r)
	return r
}

func timeFilter(engine *activerules.Engine, input string) time.Duration {
	start := time.Now()
	engine.ActiveInput(input)
	return time.Since(start)
}

// RunDir loads every grammar file in dir and runs the experiment for it.
// Sub-directories and hidden files are skipped.
func RunDir(dir string, s activerules.Strategy, opts Options) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var results []Result
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		start := time.Now()
		g, err := grammar.LoadFile(path, s == activerules.EarlyTree)
		if err != nil {
			return results, fmt.Errorf("experiment aborted: %w", err)
		}
		tracer().Infof("read grammar %s in %v", entry.Name(), time.Since(start))
		results = append(results, Run(g, s, opts))
	}
	return results, nil
}

// CSVHeader is the header line written by WriteCSV.
var CSVHeader = []string{"|g|", "|t|", "|p|", "worst_case", "|s|_worst", "median", "|s|_median"}

// WriteCSV writes results as CSV, preceded by CSVHeader.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.Size),
			strconv.Itoa(r.Terminals),
			strconv.Itoa(r.Productions),
			millis(r.WorstCase),
			strconv.FormatFloat(r.WorstLength, 'f', 6, 64),
			millis(r.RandomCase),
			strconv.FormatFloat(r.RandomLength, 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 6, 64)
}
