package main

import (
	"testing"

	"github.com/jcd2020/btreefilter/activerules"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.cmd")
	defer teardown()
	//
	inputs := map[string]string{
		"fields": "num * ( num )",
		"go":     "num*(num)",
		"lex":    "num*(num)",
	}
	for tokenizer, input := range inputs {
		*rootFlags.tokenizer = tokenizer
		for _, strategy := range []string{"linear", "tree", "early"} {
			*rootFlags.strategy = strategy
			q, err := loadQuery("testdata/expr.grammar")
			if err != nil {
				t.Fatal(err)
			}
			active, err := q.active(input)
			if err != nil {
				t.Fatal(err)
			}
			if active.Size() != 5 {
				t.Errorf("tokenizer=%s strategy=%s: expected 5 active productions, have %v",
					tokenizer, strategy, active)
			}
		}
	}
	*rootFlags.strategy = "bogus"
	if _, err := loadQuery("testdata/expr.grammar"); err == nil {
		t.Errorf("expected unknown strategy to be rejected")
	}
	*rootFlags.strategy = "early"
	*rootFlags.tokenizer = "regexp"
	if _, err := loadQuery("testdata/expr.grammar"); err == nil {
		t.Errorf("expected unknown tokenizer to be rejected")
	}
	*rootFlags.tokenizer = "fields"
}

func TestConfigureCrossCheck(t *testing.T) {
	defer gconf.Initialize(testconfig.Conf{})
	//
	if err := configure("Error", true); err != nil {
		t.Fatal(err)
	}
	if !gconf.GetBool(activerules.CrossCheckKey) {
		t.Errorf("expected cross-check to be switched on")
	}
	*rootFlags.strategy = "tree"
	*rootFlags.tokenizer = "fields"
	q, err := loadQuery("testdata/expr.grammar")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = q.active("num + num"); err != nil {
		t.Fatal(err)
	}
	if n := q.engine.Mismatches(); n != 0 {
		t.Errorf("expected tree and linear scan to agree, have %d mismatches", n)
	}
	*rootFlags.strategy = "early"
	if err := configure("Error", false); err != nil {
		t.Fatal(err)
	}
	if gconf.GetBool(activerules.CrossCheckKey) {
		t.Errorf("expected cross-check to be switched off")
	}
}
