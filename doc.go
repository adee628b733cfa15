// Package poetgraph turns a text corpus into a word-affinity graph and uses
// that graph to embellish phrases with connecting words.
//
// 🚀 What is poetgraph?
//
//	A small, focused, zero-dependency library that brings together:
//		• wordgraph — a generic mutable weighted directed graph with two
//		  interchangeable representations behind one contract
//		• poet — a corpus-trained generator that inserts the strongest
//		  single-word "bridge" between consecutive words of a phrase
//
// ✨ Why choose poetgraph?
//
//   - Minimal API, clear naming — six graph operations, two constructors
//   - Pure Go — no cgo, no hidden deps
//   - Swappable representations — both graph backends are validated against
//     one shared black-box suite, so you pick the complexity tradeoff
//     that suits your workload and nothing else changes
//
// Everything is organized under two subpackages:
//
//	wordgraph/ — the Graph contract plus AdjacencyGraph and EdgeListGraph
//	poet/      — corpus ingestion and bridge-word phrase generation
//
// Quick ASCII example, after training on "a test of the test":
//
//	    test ──1──▶ of ──1──▶ the
//
//	Poem("Test the system") → "Test of the system"
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and error catalogs.
//
//	go get github.com/katalvlaran/poetgraph
package poetgraph
