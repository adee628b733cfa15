// Package wordgraph provides a mutable weighted directed graph over opaque
// comparable labels, with two interchangeable concrete representations.
//
// What:
//
//   - Graph[L] is the full contract: Add, SetWeight, Remove, Vertices,
//     Sources, Targets — nothing else.
//   - AdjacencyGraph stores one owned outgoing-edge map per vertex:
//     fast Targets, linear Sources.
//   - EdgeListGraph stores a flat vertex set plus a flat list of immutable
//     (source, target, weight) triples: every query scans the edge list.
//   - Both representations are validated against one shared black-box
//     suite and are observably identical for every operation sequence.
//
// Why:
//
//   - Affinity counting: weight an edge u→v by how often v follows u.
//   - Representation experiments: swap the backend without touching callers.
//   - Teaching: one abstraction, two complexity profiles.
//
// Contract highlights:
//
//   - Edge weights are strictly positive; setting a weight of 0 deletes the
//     edge rather than storing a zero.
//   - SetWeight creates missing endpoints implicitly; Remove cascades,
//     deleting every edge incident to the vertex.
//   - Vertices(), Sources() and Targets() return owned snapshots — callers
//     may mutate or retain them freely without affecting the graph.
//   - Vertices() enumerates labels in insertion order, so iteration-based
//     policies (first-match tie-breaking and the like) are reproducible.
//
// Complexity (V vertices, E edges, d out-degree):
//
//   - AdjacencyGraph: SetWeight O(1), Targets O(d), Sources O(V), Remove O(V).
//   - EdgeListGraph:  SetWeight O(E), Targets O(E), Sources O(E), Remove O(E).
//
// Errors:
//
//   - ErrNegativeWeight: SetWeight called with weight < 0; no mutation occurs.
//
// Neither representation is safe for concurrent mutation; callers that share
// a graph across goroutines must add their own synchronization.
//
// Representation invariants (endpoints registered, weights ≥ 1, unique
// labels) are checked after every mutation when built with
// -tags wordgraphdebug, and compile away otherwise.
package wordgraph
