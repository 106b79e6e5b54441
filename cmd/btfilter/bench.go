package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/jcd2020/btreefilter/activerules"
	"github.com/jcd2020/btreefilter/experiment"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var benchFlags = struct {
	output     *string
	iterations *int
	seed       *int64
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "bench <grammar directory>",
		Short: "Measure filter times for every grammar of a directory",
		Example: `  btfilter bench -o tree_stats.csv grammars/
  btfilter bench --strategy linear -n 100 grammars/`,
		Args: cobra.ExactArgs(1),
		RunE: runBench,
	}
	benchFlags.output = cmd.Flags().StringP("output", "o", "", "CSV output file path (default stdout)")
	benchFlags.iterations = cmd.Flags().IntP("iterations", "n", experiment.DefaultIterations, "filter runs per input class")
	benchFlags.seed = cmd.Flags().Int64("seed", 0, "seed for choosing random inputs (default time based)")
	rootCmd.AddCommand(cmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	s, err := activerules.ParseStrategy(*rootFlags.strategy)
	if err != nil {
		return err
	}
	opts := experiment.Options{Iterations: *benchFlags.iterations}
	if *benchFlags.seed != 0 {
		opts.Rand = rand.New(rand.NewSource(*benchFlags.seed))
	}
	pterm.Info.Println(fmt.Sprintf("running %s experiment for grammars in %s", s, args[0]))
	results, err := experiment.RunDir(args[0], s, opts)
	if err != nil {
		return err
	}
	for _, r := range results {
		tracer().Infof("%v", r)
	}
	if *benchFlags.output == "" {
		if err := experiment.WriteCSV(os.Stdout, results); err != nil {
			return err
		}
	} else if err := writeCSVFile(*benchFlags.output, results); err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("measured %d grammars", len(results)))
	return nil
}

func writeCSVFile(path string, results []experiment.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := experiment.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	return nil
}
