package scanner

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestScan1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader)
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

var fieldCounts = []int{1, 1, 2, 3, 1}

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		lexemes := Lexemes(NewFieldsTokenizer(input))
		if len(lexemes) != fieldCounts[i] {
			t.Errorf("Expected field count for #%d to be %d, is %d: %v", i, fieldCounts[i],
				len(lexemes), lexemes)
		}
	}
	tok := NewFieldsTokenizer("  a\tbb \n")
	tok.NextToken()
	bb := tok.NextToken()
	if bb.Lexeme() != "bb" || bb.Span().From() != 4 || bb.Span().Len() != 2 {
		t.Errorf("Expected token 'bb' at (4…6), is %q at %v", bb.Lexeme(), bb.Span())
	}
	if tok.NextToken().TokType() != EOF || tok.NextToken().TokType() != EOF {
		t.Errorf("Expected tokenizer to stay at EOF")
	}
	if lexemes := Lexemes(NewFieldsTokenizer(" \t ")); len(lexemes) != 0 {
		t.Errorf("Expected blank input to produce no tokens, have %v", lexemes)
	}
}

func TestUnicodeSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.scanner")
	defer teardown()
	//
	inputs := []string{
		"\u00a0a b",
		"a\u2003b\u0085c",
		"\u3000\u00a0",
		"a\u200ab\u00a0",
	}
	expected := [][]string{{"a", "b"}, {"a", "b", "c"}, nil, {"a", "b"}}
	for i, input := range inputs {
		tok := NewFieldsTokenizer(input)
		var lexemes []string
		for n := 0; n < 10; n++ { // bounded, a stuck tokenizer must not hang the test
			token := tok.NextToken()
			if token.TokType() == EOF {
				break
			}
			if token.Lexeme() == "" {
				t.Fatalf("input #%d: tokenizer returned an empty token at %v", i, token.Span())
			}
			lexemes = append(lexemes, token.Lexeme())
		}
		if fmt.Sprint(lexemes) != fmt.Sprint(expected[i]) {
			t.Errorf("Expected fields of #%d to be %v, are %v", i, expected[i], lexemes)
		}
		goTokens := Lexemes(GoTokenizer("unicode", strings.NewReader(input)))
		if fmt.Sprint(goTokens) != fmt.Sprint(expected[i]) {
			t.Errorf("Expected Go tokens of #%d to be %v, are %v", i, expected[i], goTokens)
		}
	}
	tok := NewFieldsTokenizer("\u00a0ab")
	ab := tok.NextToken()
	if ab.Span().From() != 2 || ab.Span().To() != 4 {
		t.Errorf("Expected 'ab' at (2…4), is %v", ab.Span())
	}
}

func TestSpaces(t *testing.T) {
	spaces := Spaces()
	if len(spaces) < 20 {
		t.Errorf("Expected Unicode white space to have more than 20 runes, have %d", len(spaces))
	}
	for _, r := range spaces {
		if !IsSpace(r) || !unicode.IsSpace(r) {
			t.Errorf("Expected %#U to be white space", r)
		}
	}
	for _, r := range []rune{'a', '_', '+', 0x200b} {
		if IsSpace(r) {
			t.Errorf("Expected %#U not to be white space", r)
		}
	}
}

func TestInvalidUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.scanner")
	defer teardown()
	//
	tok := NewFieldsTokenizer("a\xffb c")
	errcnt := 0
	tok.SetErrorHandler(func(error) { errcnt++ })
	lexemes := Lexemes(tok)
	if len(lexemes) != 2 || lexemes[0] != "a\xffb" {
		t.Errorf("Expected invalid byte to stay in its field, have %q", lexemes)
	}
	if errcnt != 1 {
		t.Errorf("Expected 1 error, have %d", errcnt)
	}
}

func TestIdentChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreefilter.scanner")
	defer teardown()
	//
	plain := Lexemes(GoTokenizer("plain", strings.NewReader("if-then x")))
	if len(plain) != 4 {
		t.Errorf("Expected 'if-then x' to scan as 4 tokens, have %v", plain)
	}
	withDash := Lexemes(GoTokenizer("dash", strings.NewReader("if-then x -y"), IdentChars("-")))
	if fmt.Sprint(withDash) != "[if-then x - y]" {
		t.Errorf("Expected [if-then x - y], have %v", withDash)
	}
}
