package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jcd2020/btreefilter/activerules"
	"github.com/jcd2020/btreefilter/grammar"
	"github.com/jcd2020/btreefilter/scanner"
	"github.com/jcd2020/btreefilter/scanner/lexmach"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'btreefilter.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("btreefilter.cmd")
}

var traceKeys = []string{
	"btreefilter.cmd",
	"btreefilter.grammar",
	"btreefilter.ptree",
	"btreefilter.activerules",
	"btreefilter.scanner",
	"btreefilter.experiment",
}

var rootFlags = struct {
	trace      *string
	strategy   *string
	tokenizer  *string
	crossCheck *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "btfilter",
	Short: "Find the active productions of a grammar for an input",
	Long: `btfilter rules out the productions of a grammar which reference a terminal
not present in an input. Filtering is done by a linear scan or by traversing
a partition tree over the grammar's terminals.`,
	PersistentPreRunE: setup,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.strategy = rootCmd.PersistentFlags().StringP("strategy", "s", "early", "filter strategy [linear|tree|early]")
	rootFlags.tokenizer = rootCmd.PersistentFlags().String("tokenizer", "fields", "input tokenizer [fields|go|lex]")
	rootFlags.crossCheck = rootCmd.PersistentFlags().Bool("cross-check", false, "verify every tree query against a linear scan")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	return configure(*rootFlags.trace, *rootFlags.crossCheck)
}

// configure installs the global configuration and routes all tracers of
// this module to the Go log adapter.
func configure(level string, crossCheck bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"tracelevel.root":         level,
		activerules.CrossCheckKey: crossCheck,
	}
	for _, key := range traceKeys {
		conf["tracelevel."+key] = level
	}
	for _, key := range gtraceKeys {
		conf[key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)
	tracer().Debugf("trace level is %s, cross-check is %v", level, crossCheck)
	return nil
}

// gtraceKeys configure the global tracers of package gtrace, which this
// module does not use.
var gtraceKeys = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// query bundles an engine with the tokenizer selected by the --tokenizer flag.
type query struct {
	engine   *activerules.Engine
	tokenize func(input string) (scanner.Tokenizer, error)
}

func loadQuery(path string) (*query, error) {
	s, err := activerules.ParseStrategy(*rootFlags.strategy)
	if err != nil {
		return nil, err
	}
	g, err := grammar.LoadFile(path, s == activerules.EarlyTree)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded %v", g)
	q := &query{engine: activerules.New(g, s)}
	switch strings.ToLower(*rootFlags.tokenizer) {
	case "fields":
		q.tokenize = func(input string) (scanner.Tokenizer, error) {
			return scanner.NewFieldsTokenizer(input), nil
		}
	case "go":
		q.tokenize = func(input string) (scanner.Tokenizer, error) {
			return scanner.GoTokenizer(g.Name, strings.NewReader(input)), nil
		}
	case "lex":
		lm, err := lexmach.ForGrammar(g)
		if err != nil {
			return nil, fmt.Errorf("cannot create lexer for %s: %w", g.Name, err)
		}
		q.tokenize = func(input string) (scanner.Tokenizer, error) {
			return lm.Scanner(input)
		}
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", *rootFlags.tokenizer)
	}
	return q, nil
}

func (q *query) active(input string) (*grammar.RuleSet, error) {
	t, err := q.tokenize(input)
	if err != nil {
		return nil, err
	}
	t.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
	})
	return q.engine.ActiveFor(t), nil
}

func printRules(active *grammar.RuleSet, total int) {
	pterm.Info.Println(fmt.Sprintf("%d of %d productions active", active.Size(), total))
	for _, p := range active.Values() {
		fmt.Fprintf(os.Stdout, "%5d  %v\n", p.Serial, p)
	}
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
