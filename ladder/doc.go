// Package ladder enumerates every shortest word ladder between two words of
// equal length, where each rung changes exactly one letter and every rung is
// a member of a supplied word set.
//
// What
//
//   - Neighbors / NeighborsWith: all words of the set reachable from a word
//     by one single-letter substitution (letter-major, position-minor order).
//   - Generate: the complete list of shortest ladders, sorted by sequence
//     comparison of their words. An empty list means "no ladder".
//   - Search: Generate with functional options, hooks and a Result that also
//     reports the ladder depth and the number of words explored.
//   - Adjacent / Validate / Less / Sort: helpers for checking and ordering
//     ladders produced elsewhere.
//
// How
//
//	The word graph is implicit: nodes are the words of the set, edges join
//	words differing in exactly one position. Search walks it breadth-first,
//	one whole layer at a time. Two sets are kept:
//	  - visited: the union of all finished layers;
//	  - seen:    words discovered while expanding the current layer.
//	A neighbor is accepted iff it is not in visited, so several words of the
//	same layer may all lead into one word of the next layer. seen is merged
//	into visited only when the layer is finished. Every discovered word keeps
//	the indices of all its predecessors in the previous layer; once the target
//	is discovered the layer completes, the walk stops, and all ladders are
//	rebuilt from the target back to the source with an explicit stack.
//
// Determinism
//
//	Results are sorted before they are returned, so identical inputs always
//	produce identical output regardless of map iteration order.
//
// Special cases
//
//   - from == to yields the single one-word ladder [[from]].
//   - Empty words or words of different lengths yield no ladders.
//   - The target is reachable only if it is a member of the word set.
//
// Complexity (V = words of the set with the query length, L = word length,
// A = alphabet size)
//
//   - Time:   O(V · L · A) set probes, plus the size of the output.
//   - Memory: O(V) for the predecessor arena, plus the size of the output.
//
// Concurrency
//
//	All search state is owned by a single call; the word set is only read.
//	Concurrent searches over one immutable set need no synchronisation.
//	Traversal and ladder reconstruction are iterative, so very deep ladders
//	cannot exhaust the goroutine stack.
//
// Usage
//
//	lex := lexicon.New("cat", "cot", "cog", "dog")
//	ladders := ladder.Generate("cat", "dog", lex)
//	// [[cat cot cog dog]]
//
//	res, err := ladder.Search("cat", "dog", lex,
//	    ladder.WithContext(ctx),
//	    ladder.WithMaxDepth(10),
//	    ladder.WithOnLayer(func(depth, size int) { /* ... */ }),
//	)
//
// Errors (Search, NeighborsWith and Validate; Generate never fails)
//
//   - ErrLexiconNil       the word set is nil.
//   - ErrOptionViolation  an invalid Option (negative depth, bad alphabet).
//   - ErrHook             wraps an error returned from OnExpand.
//   - context errors      when the supplied context is cancelled.
//   - ErrEmptyPath, ErrEndpoint, ErrNotAdjacent, ErrUnknownWord and
//     ErrRepeatedWord   the reasons Validate rejects a ladder.
package ladder
