// Package wordgraph defines the Graph contract and sentinel errors shared
// by its concrete representations.
package wordgraph

import "errors"

// Sentinel errors for wordgraph operations.
var (
	// ErrNegativeWeight indicates SetWeight was called with weight < 0.
	ErrNegativeWeight = errors.New("wordgraph: edge weight must be non-negative")
)

// Graph is a mutable weighted directed graph whose vertices are labeled by
// comparable values of type L. Label equality is value equality; labels are
// unique within a graph.
//
// Weights are strictly positive counts: an edge either exists with weight ≥ 1
// or does not exist at all. Self-loops are permitted.
//
// All returned collections are owned snapshots; implementations never hand
// out aliases into internal storage and never retain caller-supplied
// collections.
type Graph[L comparable] interface {
	// Add inserts an isolated vertex with the given label.
	// Returns false, without mutating the graph, if the label is present.
	Add(label L) bool

	// SetWeight creates, overwrites or deletes the directed edge
	// source→target.
	//
	// weight > 0 records the edge, implicitly creating either endpoint that
	// is missing. weight == 0 deletes the edge if it exists (endpoints are
	// still created, matching the implicit-creation rule). weight < 0 is
	// rejected with ErrNegativeWeight and nothing is mutated.
	//
	// The returned int is the weight the edge had before the call, 0 if no
	// such edge existed.
	SetWeight(source, target L, weight int) (int, error)

	// Remove deletes the vertex and every edge incident to it, whether the
	// vertex is the source or the target. Returns false if the label is
	// absent.
	Remove(label L) bool

	// Vertices returns a snapshot of all vertex labels. The abstraction
	// promises no particular order; both shipped representations enumerate
	// in insertion order so that iteration-dependent callers behave
	// identically across backends.
	Vertices() []L

	// Sources returns every vertex with an edge pointing into target,
	// mapped to that edge's weight. The map is empty (never nil) when
	// target has no inbound edges or is not a vertex at all.
	Sources(target L) map[L]int

	// Targets is the symmetric query: every vertex source points to,
	// mapped to the edge weight. Empty, never nil, when source has no
	// outbound edges or does not exist.
	Targets(source L) map[L]int
}
