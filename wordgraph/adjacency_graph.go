package wordgraph

import "fmt"

// AdjacencyGraph is the vertex-centric Graph representation: each vertex
// owns its outgoing-edge map (target label → weight).
//
// Targets is a map lookup plus a defensive copy; Sources and Remove must
// scan every vertex's outgoing map. Insertion order of vertices is
// preserved for Vertices().
//
// The zero value is not usable; construct with NewAdjacencyGraph.
type AdjacencyGraph[L comparable] struct {
	order    []L             // vertex labels in insertion order
	outgoing map[L]map[L]int // vertex label → owned outgoing edges
}

// NewAdjacencyGraph returns an empty vertex-centric graph.
// Complexity: O(1)
func NewAdjacencyGraph[L comparable]() *AdjacencyGraph[L] {
	return &AdjacencyGraph[L]{outgoing: make(map[L]map[L]int)}
}

// Add inserts an isolated vertex; false if the label already exists.
// Complexity: O(1) amortized
func (g *AdjacencyGraph[L]) Add(label L) bool {
	if _, exists := g.outgoing[label]; exists {
		return false
	}
	g.outgoing[label] = make(map[L]int)
	g.order = append(g.order, label)
	g.checkRep()

	return true
}

// SetWeight records, overwrites or (for weight 0) deletes the edge
// source→target, creating missing endpoints. Returns the prior weight.
// Complexity: O(1) amortized
func (g *AdjacencyGraph[L]) SetWeight(source, target L, weight int) (int, error) {
	if weight < 0 {
		return 0, ErrNegativeWeight
	}
	g.Add(source)
	g.Add(target)

	out := g.outgoing[source]
	prev := out[target]
	if weight == 0 {
		delete(out, target)
	} else {
		out[target] = weight
	}
	g.checkRep()

	return prev, nil
}

// Remove deletes the vertex and all incident edges; false if absent.
// Inbound edges are stripped by scanning every remaining vertex's map.
// Complexity: O(V)
func (g *AdjacencyGraph[L]) Remove(label L) bool {
	if _, exists := g.outgoing[label]; !exists {
		return false
	}
	delete(g.outgoing, label)
	for i, l := range g.order {
		if l == label {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	for _, out := range g.outgoing {
		delete(out, label)
	}
	g.checkRep()

	return true
}

// Vertices returns a snapshot of all labels in insertion order.
// Complexity: O(V)
func (g *AdjacencyGraph[L]) Vertices() []L {
	labels := make([]L, len(g.order))
	copy(labels, g.order)

	return labels
}

// Sources returns all vertices with an edge into target, with weights.
// Complexity: O(V)
func (g *AdjacencyGraph[L]) Sources(target L) map[L]int {
	result := make(map[L]int)
	for source, out := range g.outgoing {
		if w, ok := out[target]; ok {
			result[source] = w
		}
	}

	return result
}

// Targets returns a copy of source's outgoing-edge map.
// Complexity: O(d) for out-degree d
func (g *AdjacencyGraph[L]) Targets(source L) map[L]int {
	result := make(map[L]int, len(g.outgoing[source]))
	for target, w := range g.outgoing[source] {
		result[target] = w
	}

	return result
}

// checkRep asserts the representation invariants: the order slice and the
// outgoing map catalog the same labels, every edge target is a registered
// vertex, and every stored weight is ≥ 1. Compiled in only with
// -tags wordgraphdebug.
func (g *AdjacencyGraph[L]) checkRep() {
	if !debugChecks {
		return
	}
	if len(g.order) != len(g.outgoing) {
		panic(fmt.Sprintf("wordgraph: adjacency rep: %d ordered labels vs %d vertices", len(g.order), len(g.outgoing)))
	}
	for _, label := range g.order {
		if _, ok := g.outgoing[label]; !ok {
			panic(fmt.Sprintf("wordgraph: adjacency rep: ordered label %v not in vertex catalog", label))
		}
	}
	for source, out := range g.outgoing {
		for target, w := range out {
			if _, ok := g.outgoing[target]; !ok {
				panic(fmt.Sprintf("wordgraph: adjacency rep: dangling edge %v→%v", source, target))
			}
			if w < 1 {
				panic(fmt.Sprintf("wordgraph: adjacency rep: edge %v→%v has weight %d", source, target, w))
			}
		}
	}
}
