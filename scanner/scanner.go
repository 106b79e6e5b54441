/*
Package scanner defines an interface for tokenizers producing the input of
filter queries.

Three implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', (2) a tokenizer splitting input at white space, which is
the format of the sample inputs used by the experiments, and (3) an adapter
for lexmachine, living in sub-package `lexmach`, which recognizes exactly
the terminals of a grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"github.com/jcd2020/btreefilter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'btreefilter.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("btreefilter.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() btreefilter.Token
	SetErrorHandler(func(error))
}

// Lexemes drains a tokenizer and returns the lexemes of all tokens up to EOF.
func Lexemes(t Tokenizer) []string {
	var lexemes []string
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		lexemes = append(lexemes, token.Lexeme())
	}
	return lexemes
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- White space -----------------------------------------------------------

// IsSpace is true for runes separating tokens, i.e. Unicode white space.
// All tokenizers of this module share this definition.
func IsSpace(r rune) bool {
	return unicode.Is(unicode.White_Space, r)
}

// Spaces lists every rune for which IsSpace is true.
func Spaces() []rune {
	var spaces []rune
	for _, r16 := range unicode.White_Space.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			spaces = append(spaces, r)
		}
	}
	for _, r32 := range unicode.White_Space.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			spaces = append(spaces, r)
		}
	}
	return spaces
}

// --- Go-like tokens --------------------------------------------------------

// TextTokenizer splits input into tokens similar to the Go language, backed
// by text/scanner. Operators are returned one character at a time, so "+"
// and "(" need no blanks around them. Create one with GoTokenizer.
type TextTokenizer struct {
	scanner.Scanner
	lastToken rune        // last token this scanner has produced
	Error     func(error) // error handler
}

var _ Tokenizer = (*TextTokenizer)(nil)

// GoTokenizer creates a tokenizer accepting tokens similar to the Go language.
// Comments are skipped unless SkipComments(false) is given.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *TextTokenizer {
	t := &TextTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *TextTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. Non-ASCII white space, which
// text/scanner returns as single-character tokens, is skipped.
func (t *TextTokenizer) NextToken() btreefilter.Token {
	t.lastToken = t.Scan()
	for t.lastToken != scanner.EOF && IsSpace(t.lastToken) {
		t.lastToken = t.Scan()
	}
	if t.lastToken == scanner.EOF {
		tracer().Debugf("TextTokenizer reached end of input")
		return MakeDefaultToken(EOF, "", btreefilter.Span{uint64(t.Pos().Offset), uint64(t.Pos().Offset)})
	}
	return MakeDefaultToken(
		btreefilter.TokType(t.lastToken),
		t.TokenText(),
		btreefilter.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	)
}

// Option configures a TextTokenizer.
type Option func(t *TextTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *TextTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// IdentChars lets identifiers contain the characters of chars in addition to
// letters, digits and '_', e.g. "-" for terminals like "if-then".
// Identifiers still have to start with a letter or '_'.
func IdentChars(chars string) Option {
	return func(t *TextTokenizer) {
		t.IsIdentRune = func(ch rune, i int) bool {
			if ch == '_' || unicode.IsLetter(ch) {
				return true
			}
			if i == 0 {
				return false
			}
			if unicode.IsDigit(ch) {
				return true
			}
			for _, c := range chars {
				if c == ch {
					return true
				}
			}
			return false
		}
	}
}

// --- White space separated input -------------------------------------------

// FieldsTokenizer splits its input at white space. Every field is returned as
// a token of type Ident.
type FieldsTokenizer struct {
	input string
	pos   int
	Error func(error)
}

var _ Tokenizer = (*FieldsTokenizer)(nil)

// NewFieldsTokenizer creates a tokenizer for white space separated input.
func NewFieldsTokenizer(input string) *FieldsTokenizer {
	return &FieldsTokenizer{input: input, Error: logError}
}

// SetErrorHandler sets an error handler. It is called for input which is not
// valid UTF-8; such bytes are kept as part of the current field.
func (t *FieldsTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *FieldsTokenizer) NextToken() btreefilter.Token {
	for t.pos < len(t.input) {
		r, w := t.decode()
		if !IsSpace(r) {
			break
		}
		t.pos += w
	}
	if t.pos >= len(t.input) {
		return MakeDefaultToken(EOF, "", btreefilter.Span{uint64(t.pos), uint64(t.pos)})
	}
	start := t.pos
	for t.pos < len(t.input) {
		r, w := t.decode()
		if IsSpace(r) {
			break
		}
		if r == utf8.RuneError && w == 1 {
			t.Error(fmt.Errorf("invalid UTF-8 at offset %d", t.pos))
		}
		t.pos += w
	}
	return MakeDefaultToken(Ident, t.input[start:t.pos],
		btreefilter.Span{uint64(start), uint64(t.pos)})
}

// decode returns the rune at the current position and its width, which is
// at least 1.
func (t *FieldsTokenizer) decode() (rune, int) {
	return utf8.DecodeRuneInString(t.input[t.pos:])
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// tokenizers of this package as well as the LexMachine scanner.
type DefaultToken struct {
	kind   btreefilter.TokType
	lexeme string
	Val    interface{}
	span   btreefilter.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ btreefilter.TokType, lexeme string, span btreefilter.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() btreefilter.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() btreefilter.Span {
	return t.span
}
