package main

import (
	"fmt"
	"os"

	"github.com/jcd2020/btreefilter/experiment"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	terminals *[]int
	extension *[]int
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "generate <output directory>",
		Short: "Write grammars which are hard on partition trees",
		Long: `generate writes a grammar bad_grammar_<t>_<t'>.txt for every combination
of subset terminals t and extension terminals t'. Each grammar derives every
non-empty subset of t terminals in both orders, the full subset extended by t'
further terminals.`,
		Example: `  btfilter generate bad_grammars/
  btfilter generate -t 3,4 -x 10,100 bad_grammars/`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}
	generateFlags.terminals = cmd.Flags().IntSliceP("terminals", "t", []int{11, 12}, "numbers of subset terminals")
	generateFlags.extension = cmd.Flags().IntSliceP("extension", "x",
		[]int{20000, 40000, 60000, 80000, 100000}, "numbers of extension terminals")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	n := 0
	for _, t := range *generateFlags.terminals {
		for _, x := range *generateFlags.extension {
			path, err := experiment.BadGrammarFile(dir, t, x)
			if err != nil {
				return err
			}
			pterm.Info.Println(fmt.Sprintf("wrote %s", path))
			n++
		}
	}
	tracer().Infof("generated %d grammars in %s", n, dir)
	return nil
}
