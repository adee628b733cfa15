// Package poet generates poems by inserting "bridge" words between
// consecutive words of an input phrase, guided by a word-affinity graph
// trained on a text corpus.
//
// What:
//
//   - New / NewFromFile build a Poet by scanning a corpus line by line:
//     each line is lowercased and split on whitespace, and every adjacent
//     word pair increments the weight of the directed edge first→second.
//     Adjacency never crosses line boundaries.
//   - Poem rewrites a phrase: for each consecutive pair (w1, w2) it looks
//     for the vertex b with the highest combined weight
//     weight(w1→b) + weight(b→w2) and, if that score is positive, inserts
//     b (lowercased) between the two words.
//   - Bridge exposes the selection policy directly for a single pair.
//
// Why:
//
//   - Affinity-driven text embellishment: "Test the system" becomes
//     "Test of the system" after training on a corpus where "of" follows
//     "test" and precedes "the".
//   - A worked consumer of wordgraph's two interchangeable backends.
//
// Selection policy, precisely:
//
//   - Candidates are scanned in the graph's vertex enumeration order
//     (insertion order); a strictly higher score replaces the current best,
//     so ties keep the earliest vertex.
//   - The score is the plain sum of the two edge weights, each taken as 0
//     when the edge is absent. A vertex with only one side connected still
//     scores that side's weight, so a strong one-sided neighbor can be
//     chosen over a weaker genuine two-hop bridge. This is the intended
//     reading of the scoring rule, not an accident; callers wanting strict
//     two-hop bridges should check both edges themselves via the graph.
//   - Inserted bridges are never re-bridged against their new neighbors.
//
// Output contract:
//
//   - Original words keep their casing; bridges are always lowercase.
//   - Output words are separated by exactly one space; input whitespace
//     runs collapse. A single-word or empty input passes through unchanged
//     (the empty string stays empty).
//
// Errors:
//
//   - ErrNilCorpus: New was handed a nil reader.
//   - ErrNilGraph: WithGraph was handed a nil graph.
//   - Corpus read failures surface wrapped from New/NewFromFile;
//     construction either fully succeeds or yields no Poet.
//
// Poem and Bridge never fail: the absence of a bridge is a normal, silent
// outcome.
package poet
