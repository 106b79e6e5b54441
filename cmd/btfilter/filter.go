package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "filter <grammar file path> [input...]",
		Short: "Print the active productions for an input",
		Example: `  btfilter filter expr.grammar num + num
  btfilter filter --tokenizer lex expr.grammar 'num*(num)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFilter,
	}
	rootCmd.AddCommand(cmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	q, err := loadQuery(args[0])
	if err != nil {
		return err
	}
	input := joinArgs(args[1:])
	tracer().Infof("input is %q", input)
	active, err := q.active(input)
	if err != nil {
		return err
	}
	printRules(active, len(q.engine.Grammar().Productions()))
	return nil
}
