package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/contagion/core"
)

// ErrMalformedLine indicates a line that is not "<int>:<int>".
var ErrMalformedLine = errors.New("edgelist: malformed line")

// Write emits one "<from>:<to>" line per edge, in the given order.
func Write(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d:%d\n", e.From, e.To); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// Read parses edge lines until EOF. Blank lines are skipped; negative ids
// are rejected.
func Read(r io.Reader) ([]core.Edge, error) {
	var edges []core.Edge
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d %q: %w", line, text, err)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return edges, nil
}

func parseLine(text string) (core.Edge, error) {
	src, dst, ok := strings.Cut(text, ":")
	if !ok {
		return core.Edge{}, ErrMalformedLine
	}
	from, err := strconv.Atoi(strings.TrimSpace(src))
	if err != nil || from < 0 {
		return core.Edge{}, ErrMalformedLine
	}
	to, err := strconv.Atoi(strings.TrimSpace(dst))
	if err != nil || to < 0 {
		return core.Edge{}, ErrMalformedLine
	}

	return core.Edge{From: from, To: to}, nil
}

// VertexCount returns 1 + the largest id referenced by edges, or 0.
func VertexCount(edges []core.Edge) int {
	n := 0
	for _, e := range edges {
		if e.From >= n {
			n = e.From + 1
		}
		if e.To >= n {
			n = e.To + 1
		}
	}

	return n
}
