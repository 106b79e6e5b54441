package main

import (
	"fmt"

	"github.com/jcd2020/btreefilter/ptree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statsFlags = struct {
	tree  *bool
	depth *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "stats <grammar file path>",
		Short:   "Print statistics of a grammar and its partition tree",
		Example: `  btfilter stats --tree --depth 4 expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runStats,
	}
	statsFlags.tree = cmd.Flags().Bool("tree", false, "render the partition tree")
	statsFlags.depth = cmd.Flags().Int("depth", 8, "maximum depth of the rendered tree")
	rootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	q, err := loadQuery(args[0])
	if err != nil {
		return err
	}
	g := q.engine.Grammar()
	pterm.Info.Println(fmt.Sprintf("grammar %s", g.Name))
	fmt.Printf("    size          %d\n", g.Size())
	fmt.Printf("    productions   %d\n", len(g.Productions()))
	fmt.Printf("    filterable    %d\n", len(g.Filterable()))
	fmt.Printf("    always active %d\n", len(g.AlwaysActive()))
	fmt.Printf("    symbols       %d\n", len(g.Ordering()))
	fmt.Printf("    terminals     %d\n", len(g.Terminals()))
	tree := q.engine.Tree()
	if tree == nil {
		pterm.Info.Println("linear strategy, no partition tree")
		return nil
	}
	pterm.Info.Println(fmt.Sprintf("%v", tree))
	fmt.Printf("    %v\n", tree.Stats())
	if *statsFlags.tree {
		root := pterm.NewTreeFromLeveledList(leveledTree(tree, *statsFlags.depth))
		pterm.DefaultTree.WithRoot(root).Render()
	}
	return nil
}

// leveledTree lists the nodes of t down to maxDepth for display.
func leveledTree(t *ptree.Tree, maxDepth int) pterm.LeveledList {
	var ll pterm.LeveledList
	symbols := make(map[int]string)
	t.Walk(func(n ptree.NodeInfo) bool {
		symbols[n.ID] = n.Symbol
		ll = append(ll, pterm.LeveledListItem{
			Level: n.Depth,
			Text:  nodeLabel(n, symbols[n.Parent]),
		})
		return n.Depth < maxDepth
	})
	return ll
}

func nodeLabel(n ptree.NodeInfo, parentSymbol string) string {
	edge := "root"
	if n.Parent >= 0 {
		if n.Contains {
			edge = "+" + parentSymbol
		} else {
			edge = "-" + parentSymbol
		}
	}
	label := fmt.Sprintf("%s: %d rules", edge, len(n.Rules))
	if len(n.Terminating) > 0 {
		label += fmt.Sprintf(", %d terminating", len(n.Terminating))
	}
	if n.Leaf {
		return label + " (leaf)"
	}
	return label + fmt.Sprintf(", split by %q", n.Symbol)
}
