package poet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/poetgraph/wordgraph"
)

// ingest trains g on the corpus: every line is lowercased and split on
// whitespace runs, and each adjacent in-line word pair increments the
// weight of the edge first→second by one. Pairs never span lines.
//
// Returns a wrapped I/O error if the scan fails; the graph may then hold a
// partial count and must be discarded by the caller.
func ingest(g wordgraph.Graph[string], corpus io.Reader) error {
	scanner := bufio.NewScanner(corpus)
	for scanner.Scan() {
		words := strings.Fields(strings.ToLower(scanner.Text()))
		for i := 0; i+1 < len(words); i++ {
			first, second := words[i], words[i+1]
			g.Add(first)
			g.Add(second)
			current := g.Targets(first)[second]
			if _, err := g.SetWeight(first, second, current+1); err != nil {
				return fmt.Errorf("poet: recording adjacency %q→%q: %w", first, second, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("poet: reading corpus: %w", err)
	}

	return nil
}
