package main

import (
	"strings"
	"testing"

	"github.com/jcd2020/btreefilter/grammar"
	"github.com/jcd2020/btreefilter/ptree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.cmd")
	defer teardown()
	//
	g, err := grammar.Load("G", strings.NewReader("S -> a b\nS -> c\nS -> a c\n"), true)
	if err != nil {
		t.Fatal(err)
	}
	tree := ptree.Build(g.Ordering(), g.Filterable(), ptree.EarlyTerminating)
	ll := leveledTree(tree, 8)
	if len(ll) != tree.Size() {
		t.Fatalf("expected %d list items, have %d", tree.Size(), len(ll))
	}
	for i, item := range ll {
		t.Logf("%s%s", strings.Repeat("  ", item.Level), item.Text)
		if i > 0 && item.Level > ll[i-1].Level+1 {
			t.Errorf("item #%d skips a level", i)
		}
	}
	if !strings.HasPrefix(ll[0].Text, "root:") {
		t.Errorf("expected first item to be the root, is %q", ll[0].Text)
	}
	if shallow := leveledTree(tree, 0); len(shallow) != 1 {
		t.Errorf("expected depth 0 to list the root only, have %d items", len(shallow))
	}
}
