// Package poet defines options and error values for poem generation.
package poet

import (
	"errors"

	"github.com/katalvlaran/poetgraph/wordgraph"
)

// Sentinel errors for Poet construction.
var (
	// ErrNilCorpus is returned when New is handed a nil reader.
	ErrNilCorpus = errors.New("poet: corpus reader is nil")

	// ErrNilGraph is returned when WithGraph is handed a nil graph.
	ErrNilGraph = errors.New("poet: backing graph is nil")
)

// Option configures Poet construction via functional arguments.
type Option func(*options)

// options holds the resolved construction parameters.
type options struct {
	graph wordgraph.Graph[string]
}

// defaultOptions returns the construction defaults: a fresh vertex-centric
// AdjacencyGraph as the backing store.
func defaultOptions() options {
	return options{graph: wordgraph.NewAdjacencyGraph[string]()}
}

// WithGraph selects the backing Graph representation the Poet trains and
// queries. Any Graph[string] implementation works; both wordgraph backends
// produce identical poems. The graph may already contain affinities — the
// corpus is ingested on top of them.
func WithGraph(g wordgraph.Graph[string]) Option {
	return func(o *options) { o.graph = g }
}
