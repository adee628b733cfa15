//go:build wordgraphdebug

package wordgraph

// debugChecks gates the checkRep representation-invariant assertions.
// This build tag variant enables them; violations panic with a description
// of the broken invariant.
const debugChecks = true
