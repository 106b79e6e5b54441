package btreefilter

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Tokenizers which know about a grammar
// use a terminal's level as its token type; others use the categories of
// text/scanner.
type TokType int

// Tokens represent input tokens of a filter query. They are produced by a
// tokenizer and, if they match a terminal of the grammar, mark that terminal
// as present in the input.
//
//    TokType = 3          // level of terminal "+" in the grammar
//    Lexeme  = "+"        // lexeme how it appeared in the input stream
//    Span    = 5…6        // occured from position 5 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
