package experiment

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// maxBadTerminals bounds the number of subset terminals of BadGrammar.
// Larger values would produce more than a billion productions.
const maxBadTerminals = 30

// BadGrammar writes a grammar which is hard on partition trees. Its
// productions are all orderings S->x1 … xn and their reversals of the non-empty
// subsets {x1, …, xn} of tSize terminals a0 … a{tSize-1}. The production for
// the full subset is extended by tPrimeSize terminals b0 … b{tPrimeSize-1}.
//
// The grammar has t+t' terminals and 2·(2^t − 1) − t productions.
func BadGrammar(w io.Writer, tSize, tPrimeSize int) error {
	if tSize < 1 || tSize > maxBadTerminals {
		return fmt.Errorf("number of subset terminals must be in [1…%d], is %d", maxBadTerminals, tSize)
	}
	if tPrimeSize < 0 {
		return fmt.Errorf("number of extension terminals must not be negative, is %d", tPrimeSize)
	}
	bw := bufio.NewWriter(w)
	full := uint32(1)<<tSize - 1
	rhs := make([]string, 0, tSize+tPrimeSize)
	for subset := uint32(1); subset <= full; subset++ {
		rhs = rhs[:0]
		for i := 0; i < tSize; i++ {
			if subset&(1<<i) != 0 {
				rhs = append(rhs, "a"+strconv.Itoa(i))
			}
		}
		if subset == full {
			for i := 0; i < tPrimeSize; i++ {
				rhs = append(rhs, "b"+strconv.Itoa(i))
			}
		}
		if err := writeProduction(bw, rhs, false); err != nil {
			return err
		}
		if len(rhs) > 1 {
			if err := writeProduction(bw, rhs, true); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeProduction(w *bufio.Writer, rhs []string, reversed bool) error {
	w.WriteString("S->")
	for i := range rhs {
		if i > 0 {
			w.WriteByte(' ')
		}
		if reversed {
			w.WriteString(rhs[len(rhs)-1-i])
		} else {
			w.WriteString(rhs[i])
		}
	}
	return w.WriteByte('\n')
}

// BadGrammarFile writes BadGrammar(tSize, tPrimeSize) to a file
// bad_grammar_<tSize>_<tPrimeSize>.txt in dir and returns the file's path.
func BadGrammarFile(dir string, tSize, tPrimeSize int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("bad_grammar_%d_%d.txt", tSize, tPrimeSize))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create grammar file: %w", err)
	}
	if err := BadGrammar(f, tSize, tPrimeSize); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cannot write grammar file: %w", err)
	}
	tracer().Infof("wrote %s", path)
	return path, nil
}
