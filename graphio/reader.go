// Package graphio reads the whitespace-token weighted-graph text format
// into a core.Graph.
//
// Format: the first two tokens are the vertex count and the edge count,
// followed by exactly edge-count triples `from to weight`. Tokens are
// separated by any whitespace; line layout is free — one triple per line,
// all on one line, or anything between.
//
// The reader's only contract with the core is the resulting Graph, populated
// through AddEdge(from, to, WithWeight(weight)) in file order, so malformed
// edges (range violations, self-loops, duplicates) surface as wrapped core
// errors naming the offending triple.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/torvenik/graphden/core"
)

// Sentinel errors for format violations.
var (
	// ErrBadHeader indicates the vertex/edge count header is missing or not
	// a non-negative integer pair.
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrBadToken indicates a token could not be parsed as the expected
	// integer vertex id or float weight.
	ErrBadToken = errors.New("graphio: bad token")

	// ErrTruncated indicates the input ended before the declared edge count
	// was satisfied.
	ErrTruncated = errors.New("graphio: truncated input")
)

// Read parses r and returns the undirected weighted Graph it describes.
// Tokens past the declared edge count are ignored, matching the
// read-exactly-edge-count discipline of the format.
// Complexity: O(V + E·deg) dominated by AddEdge duplicate scans.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	vertexCount, err := headerInt(sc, "vertex count")
	if err != nil {
		return nil, err
	}
	edgeCount, err := headerInt(sc, "edge count")
	if err != nil {
		return nil, err
	}

	g := core.New(vertexCount)
	for i := 0; i < edgeCount; i++ {
		from, err := edgeInt(sc, i, "from")
		if err != nil {
			return nil, err
		}
		to, err := edgeInt(sc, i, "to")
		if err != nil {
			return nil, err
		}
		weight, err := edgeWeight(sc, i)
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to, core.WithWeight(weight)); err != nil {
			return nil, fmt.Errorf("graphio: edge %d (%d,%d,%g): %w", i, from, to, weight, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// headerInt scans one non-negative integer header token.
func headerInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: missing %s", ErrBadHeader, what)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrBadHeader, what, sc.Text())
	}

	return n, nil
}

// edgeInt scans one vertex id token of the i-th triple.
func edgeInt(sc *bufio.Scanner, i int, what string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: edge %d: missing %s", ErrTruncated, i, what)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: edge %d: %s %q", ErrBadToken, i, what, sc.Text())
	}

	return v, nil
}

// edgeWeight scans the weight token of the i-th triple.
func edgeWeight(sc *bufio.Scanner, i int) (float64, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: edge %d: missing weight", ErrTruncated, i)
	}
	w, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: edge %d: weight %q", ErrBadToken, i, sc.Text())
	}

	return w, nil
}
