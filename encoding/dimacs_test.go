package encoding

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseDimacsSkipsCommentsAndHeader(t *testing.T) {
	in := strings.NewReader("c a comment\np cnf 3 2\n1 -2 0\n-1 2 3 0\n")

	sentences, err := ParseDimacs(in)
	if err != nil {
		t.Fatalf("ParseDimacs returned error: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(sentences))
	}
	if len(sentences[0]) != 2 || sentences[0][0] != 1 || sentences[0][1] != -2 {
		t.Fatalf("unexpected first clause: %v", sentences[0])
	}
	if len(sentences[1]) != 3 {
		t.Fatalf("unexpected second clause: %v", sentences[1])
	}
}

func TestParseDimacsRejectsBadLiteral(t *testing.T) {
	in := strings.NewReader("1 x 0\n")

	if _, err := ParseDimacs(in); err == nil {
		t.Fatalf("expected an error for a non-numeric literal")
	}
}

func TestWriteDimacsUnsat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDimacs(&buf, nil); err != nil {
		t.Fatalf("WriteDimacs returned error: %v", err)
	}
	if buf.String() != "p UNSAT\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestWriteDimacsSat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDimacs(&buf, [][]int{{1, -2, 3}}); err != nil {
		t.Fatalf("WriteDimacs returned error: %v", err)
	}
	if buf.String() != "p SAT\n1 -2 3 0\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
