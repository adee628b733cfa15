package poet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/poetgraph/wordgraph"
)

// Poet rewrites phrases using a word-affinity graph trained on a corpus.
//
// The Poet owns its graph; after construction the graph is only read, so a
// Poet may be shared across goroutines as long as nobody else mutates the
// backing graph.
type Poet struct {
	graph wordgraph.Graph[string]
}

// New builds a Poet by training on the given corpus.
//
// The corpus is consumed line by line; see the package documentation for
// the adjacency-counting rules. An empty corpus is valid and yields a Poet
// that never finds a bridge. On a read failure the error is returned
// wrapped and no Poet is produced.
// Complexity: O(total words) against the default AdjacencyGraph backend.
func New(corpus io.Reader, opts ...Option) (*Poet, error) {
	if corpus == nil {
		return nil, ErrNilCorpus
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.graph == nil {
		return nil, ErrNilGraph
	}
	if err := ingest(o.graph, corpus); err != nil {
		return nil, err
	}

	return &Poet{graph: o.graph}, nil
}

// NewFromFile builds a Poet from a corpus file on disk.
// Open and read failures surface wrapped; no Poet is produced on error.
func NewFromFile(path string, opts ...Option) (*Poet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("poet: open corpus: %w", err)
	}
	defer f.Close()

	return New(f, opts...)
}

// Poem rewrites input, inserting at most one lowercase bridge word between
// each pair of consecutive input words. Original casing is preserved,
// whitespace runs collapse to single spaces, and inserted bridges are never
// themselves bridged. Single-word input passes through unchanged; the
// empty string stays empty.
// Complexity: O(pairs · V · d) for V vertices of out-degree d.
func (p *Poet) Poem(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i+1 < len(words); i++ {
		b.WriteString(words[i])
		b.WriteByte(' ')
		if bridge, ok := p.Bridge(words[i], words[i+1]); ok {
			b.WriteString(bridge)
			b.WriteByte(' ')
		}
	}
	b.WriteString(words[len(words)-1])

	return b.String()
}

// Bridge returns the best bridge word between word1 and word2, or
// ("", false) when no vertex scores above zero. Lookup is case-insensitive;
// the returned bridge is a (lowercase) graph vertex.
//
// The score of a candidate b is weight(word1→b) + weight(b→word2), with an
// absent edge contributing 0 — so a one-sided candidate scores its single
// edge (see the package documentation). Strictly higher scores win; ties
// keep the candidate encountered first in vertex enumeration order.
func (p *Poet) Bridge(word1, word2 string) (string, bool) {
	w1 := strings.ToLower(word1)
	w2 := strings.ToLower(word2)

	outOfW1 := p.graph.Targets(w1)

	var best string
	bestScore := 0
	for _, candidate := range p.graph.Vertices() {
		score := outOfW1[candidate] + p.graph.Targets(candidate)[w2]
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}

	return best, bestScore > 0
}
