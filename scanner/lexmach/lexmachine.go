package lexmach

import (
	"strings"
	"unicode/utf8"

	"github.com/jcd2020/btreefilter"
	"github.com/jcd2020/btreefilter/grammar"
	"github.com/jcd2020/btreefilter/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'btreefilter.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("btreefilter.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an initializer
// for additional patterns, a list of literals ('[', "num", …) and a
// map for translating literals to their token values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		if lit == "" {
			continue
		}
		adapter.Lexer.Add([]byte(literalPattern(lit)), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// ForGrammar creates a lexmachine adapter recognizing the terminals of g.
// Token types are the levels of the terminals. White space, as defined by
// scanner.IsSpace, is skipped.
func ForGrammar(g *grammar.Grammar) (*LMAdapter, error) {
	terminals := g.Terminals()
	tokenIds := make(map[string]int, len(terminals))
	for _, t := range terminals {
		tokenIds[t], _ = g.Level(t)
	}
	tracer().Debugf("creating lexer for %d terminals of %s", len(terminals), g.Name)
	return NewLMAdapter(func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(spacePattern()), Skip)
	}, terminals, tokenIds)
}

// spacePattern matches runs of the white space defined by scanner.IsSpace.
func spacePattern() string {
	spaces := scanner.Spaces()
	alt := make([]string, len(spaces))
	for i, r := range spaces {
		alt[i] = literalPattern(string(r))
	}
	return "(" + strings.Join(alt, "|") + ")+"
}

// literalPattern escapes every ASCII character of lit except letters and
// digits, turning lit into a lexmachine pattern matching lit literally.
func literalPattern(lit string) string {
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c < utf8.RuneSelf && !isAlnum(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Input not matching any
// terminal is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() btreefilter.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", btreefilter.Span{0, 0})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", btreefilter.Span{0, 0})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		btreefilter.TokType(token.Type),
		string(token.Lexeme),
		btreefilter.Span{uint64(token.StartColumn), uint64(token.EndColumn)},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
