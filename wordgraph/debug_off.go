//go:build !wordgraphdebug

package wordgraph

// debugChecks gates the checkRep representation-invariant assertions.
// Build with -tags wordgraphdebug to enable them; in normal builds the
// checks compile away.
const debugChecks = false
