package wordgraph

import "fmt"

// edge is an immutable directed weighted connection between two labels.
// Mutation replaces the whole triple; it is never updated in place.
type edge[L comparable] struct {
	source L
	target L
	weight int
}

// EdgeListGraph is the edge-centric Graph representation: a flat vertex set
// plus a flat list of immutable (source, target, weight) triples.
//
// Every query walks the edge list, and SetWeight finds-and-replaces the
// matching triple by linear scan. Insertion order of vertices is preserved
// for Vertices().
//
// The zero value is not usable; construct with NewEdgeListGraph.
type EdgeListGraph[L comparable] struct {
	order   []L            // vertex labels in insertion order
	members map[L]struct{} // vertex membership set
	edges   []edge[L]      // all edges, at most one per (source, target)
}

// NewEdgeListGraph returns an empty edge-centric graph.
// Complexity: O(1)
func NewEdgeListGraph[L comparable]() *EdgeListGraph[L] {
	return &EdgeListGraph[L]{members: make(map[L]struct{})}
}

// Add inserts an isolated vertex; false if the label already exists.
// Complexity: O(1) amortized
func (g *EdgeListGraph[L]) Add(label L) bool {
	if _, exists := g.members[label]; exists {
		return false
	}
	g.members[label] = struct{}{}
	g.order = append(g.order, label)
	g.checkRep()

	return true
}

// SetWeight records, overwrites or (for weight 0) deletes the edge
// source→target, creating missing endpoints. The matching triple is located
// by linear scan and replaced wholesale. Returns the prior weight.
// Complexity: O(E)
func (g *EdgeListGraph[L]) SetWeight(source, target L, weight int) (int, error) {
	if weight < 0 {
		return 0, ErrNegativeWeight
	}
	g.Add(source)
	g.Add(target)

	for i, e := range g.edges {
		if e.source != source || e.target != target {
			continue
		}
		prev := e.weight
		if weight == 0 {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
		} else {
			g.edges[i] = edge[L]{source: source, target: target, weight: weight}
		}
		g.checkRep()

		return prev, nil
	}

	if weight > 0 {
		g.edges = append(g.edges, edge[L]{source: source, target: target, weight: weight})
	}
	g.checkRep()

	return 0, nil
}

// Remove deletes the vertex and filters out every edge touching it;
// false if absent.
// Complexity: O(E)
func (g *EdgeListGraph[L]) Remove(label L) bool {
	if _, exists := g.members[label]; !exists {
		return false
	}
	delete(g.members, label)
	for i, l := range g.order {
		if l == label {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.source != label && e.target != label {
			kept = append(kept, e)
		}
	}
	g.edges = kept
	g.checkRep()

	return true
}

// Vertices returns a snapshot of all labels in insertion order.
// Complexity: O(V)
func (g *EdgeListGraph[L]) Vertices() []L {
	labels := make([]L, len(g.order))
	copy(labels, g.order)

	return labels
}

// Sources returns all vertices with an edge into target, with weights.
// Complexity: O(E)
func (g *EdgeListGraph[L]) Sources(target L) map[L]int {
	result := make(map[L]int)
	for _, e := range g.edges {
		if e.target == target {
			result[e.source] = e.weight
		}
	}

	return result
}

// Targets returns all vertices source has an edge into, with weights.
// Complexity: O(E)
func (g *EdgeListGraph[L]) Targets(source L) map[L]int {
	result := make(map[L]int)
	for _, e := range g.edges {
		if e.source == source {
			result[e.target] = e.weight
		}
	}

	return result
}

// checkRep asserts the representation invariants: the order slice and the
// membership set catalog the same labels, every edge endpoint is a member,
// every weight is ≥ 1, and no (source, target) pair appears twice.
// Compiled in only with -tags wordgraphdebug.
func (g *EdgeListGraph[L]) checkRep() {
	if !debugChecks {
		return
	}
	if len(g.order) != len(g.members) {
		panic(fmt.Sprintf("wordgraph: edge-list rep: %d ordered labels vs %d members", len(g.order), len(g.members)))
	}
	for _, label := range g.order {
		if _, ok := g.members[label]; !ok {
			panic(fmt.Sprintf("wordgraph: edge-list rep: ordered label %v not a member", label))
		}
	}
	seen := make(map[edge[L]]struct{}, len(g.edges))
	for _, e := range g.edges {
		if _, ok := g.members[e.source]; !ok {
			panic(fmt.Sprintf("wordgraph: edge-list rep: dangling source %v", e.source))
		}
		if _, ok := g.members[e.target]; !ok {
			panic(fmt.Sprintf("wordgraph: edge-list rep: dangling target %v", e.target))
		}
		if e.weight < 1 {
			panic(fmt.Sprintf("wordgraph: edge-list rep: edge %v→%v has weight %d", e.source, e.target, e.weight))
		}
		pair := edge[L]{source: e.source, target: e.target}
		if _, dup := seen[pair]; dup {
			panic(fmt.Sprintf("wordgraph: edge-list rep: duplicate edge %v→%v", e.source, e.target))
		}
		seen[pair] = struct{}{}
	}
}
