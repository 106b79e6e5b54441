package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar file path>",
		Short:   "Filter inputs entered interactively",
		Example: `  btfilter repl --strategy tree expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	q, err := loadQuery(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("btfilter> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	g := q.engine.Grammar()
	pterm.Info.Println(fmt.Sprintf("Welcome to btfilter, filtering %s with strategy %s",
		g.Name, q.engine.Strategy()))
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "quit" || line == "exit" {
			break
		}
		active, err := q.active(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		printRules(active, len(g.Productions()))
	}
	fmt.Println("Good bye!")
	return nil
}
