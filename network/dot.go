package network

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// ToDot writes a Graphviz-compatible textual dump of the current graph
// to filename, one edge per line, labelled with its residual weight
// (spec §6). Edges drained to zero are omitted, consistent with Weights.
func (g *Graph) ToDot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "digraph qrsim {")
	for i := 0; i < g.numNodes; i++ {
		fmt.Fprintf(w, "  %d;\n", i)
	}
	for _, e := range g.edges {
		if e.weight <= 0 {
			continue
		}
		fmt.Fprintf(w, "  %d -> %d [label=%q];\n", e.from, e.to, humanize.FtoaWithDigits(e.weight, 3))
	}
	fmt.Fprintln(w, "}")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}
