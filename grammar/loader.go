package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadError is reported for malformed lines of a grammar file.
type LoadError struct {
	Source string // name of the grammar source
	Line   int    // 1-based line number, 0 if unknown
	Cause  error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		fmt.Fprintf(&b, "%v: ", e.Source)
	}
	if e.Line != 0 {
		fmt.Fprintf(&b, "%v: ", e.Line)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

var (
	errNoArrow = errors.New(`missing "->" between left and right hand side`)
	errNoLHS   = errors.New("empty left hand side")
)

// maxLineLength bounds a single production line of a grammar file.
const maxLineLength = 16 * 1024 * 1024

// Load reads a grammar in line format from r. Each non-blank line not
// starting with '#' holds a single production
//
//    LHS->sym1 sym2 … symN
//
// withDeepest is passed on to Builder.Grammar.
func Load(name string, r io.Reader, withDeepest bool) (*Grammar, error) {
	b := NewBuilder(name)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineLength)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lhs, rhs, err := splitProduction(line)
		if err != nil {
			return nil, &LoadError{Source: name, Line: lineno, Cause: err}
		}
		b.Add(lhs, rhs...)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Source: name, Line: lineno, Cause: err}
	}
	tracer().Debugf("read %d lines of grammar %s", lineno, name)
	return b.Grammar(withDeepest)
}

// LoadFile loads a grammar from a file. The grammar is named after the file.
func LoadFile(path string, withDeepest bool) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar: %w", err)
	}
	defer f.Close()
	return Load(filepath.Base(path), f, withDeepest)
}

func splitProduction(line string) (string, []string, error) {
	inx := strings.Index(line, "->")
	if inx < 0 {
		return "", nil, errNoArrow
	}
	lhs := strings.TrimSpace(line[:inx])
	if lhs == "" {
		return "", nil, errNoLHS
	}
	return lhs, strings.Fields(line[inx+2:]), nil
}
