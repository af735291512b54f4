// Package encoding reads and writes the DIMACS CNF text format solvers and
// preprocessors trade problems and answers in.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ParseDimacs reads a DIMACS CNF file, returning one []int per clause
// (0-terminators and comment/problem lines dropped).
func ParseDimacs(in io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(in)
	sentences := [][]int{}

	for scanner.Scan() {
		sentence := []int{}
		fields := bytes.Fields(scanner.Bytes())

		if len(fields) < 2 {
			continue
		}
		prefix := string(fields[0])

		if prefix == "c" || prefix == "p" {
			continue
		}
		for _, field := range fields[:len(fields)] {
			p, err := strconv.Atoi(string(field))
			if err != nil {
				return nil, errors.Wrapf(err, "parsing literal %q", field)
			}
			if p != 0 {
				sentence = append(sentence, p)
			}
		}
		sentences = append(sentences, sentence)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading DIMACS input")
	}
	return sentences, nil
}

// WriteDimacs writes models (one satisfying assignment per line, 0 aligned
// with DIMACS's terminator) to out, preceded by a "p SAT"/"p UNSAT" header
// matching the solver's own stdout report.
func WriteDimacs(out io.Writer, models [][]int) error {
	if len(models) == 0 {
		_, err := fmt.Fprint(out, "p UNSAT\n")
		return errors.Wrap(err, "writing UNSAT header")
	}
	if _, err := fmt.Fprint(out, "p SAT\n"); err != nil {
		return errors.Wrap(err, "writing SAT header")
	}
	for _, model := range models {
		for _, p := range model {
			if _, err := fmt.Fprintf(out, "%d ", p); err != nil {
				return errors.Wrap(err, "writing model literal")
			}
		}
		if _, err := fmt.Fprint(out, "0\n"); err != nil {
			return errors.Wrap(err, "writing model terminator")
		}
	}
	return nil
}
