package ladder

import (
	"context"
	"fmt"
)

// source is the arena index of the start word.
const source = 0

// walker encapsulates mutable search state. Words are interned into an
// arena; parents[i] lists the arena indices of every predecessor of word i
// in the previous layer.
type walker struct {
	lex      WordSet
	opts     Options
	ctx      context.Context
	target   string
	words    []string
	parents  [][]int
	visited  map[string]struct{}
	layer    []int
	targetID int
}

// Generate returns every shortest ladder from `from` to `to` whose rungs
// are members of lex, sorted by sequence comparison of their words.
// It never fails: an empty (non-nil) result means no ladder exists.
func Generate(from, to string, lex WordSet) [][]string {
	res, err := Search(from, to, lex)
	if err != nil {
		return [][]string{}
	}

	return res.Paths
}

// Search is Generate with functional Options.
// Returns ErrLexiconNil for a nil lex, ErrOptionViolation for bad options,
// a wrapped ErrHook when OnExpand fails, or the context error on cancellation.
func Search(from, to string, lex WordSet, opts ...Option) (*Result, error) {
	if lex == nil {
		return nil, ErrLexiconNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Paths: [][]string{}, Depth: -1}
	// Degenerate input: nothing can ever be adjacent.
	if from == "" || len(from) != len(to) {
		return res, nil
	}
	if from == to {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		o.OnLayer(0, 1)
		res.Paths = append(res.Paths, []string{from})
		res.Depth = 0
		res.Explored = 1

		return res, nil
	}

	w := &walker{
		lex:      lex,
		opts:     o,
		ctx:      o.Ctx,
		target:   to,
		words:    []string{from},
		parents:  [][]int{nil},
		visited:  map[string]struct{}{from: {}},
		layer:    []int{source},
		targetID: -1,
	}
	depth, err := w.loop()
	if err != nil {
		return nil, err
	}
	res.Explored = len(w.words)
	if w.targetID < 0 {
		return res, nil
	}
	res.Depth = depth
	res.Paths = w.ladders()
	Sort(res.Paths)

	return res, nil
}

// loop expands one layer at a time until the target is discovered, the
// frontier drains, or MaxDepth is reached. Returns the depth of the layer
// holding the target.
func (w *walker) loop() (int, error) {
	for depth := 0; len(w.layer) > 0; depth++ {
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			return 0, nil
		}
		w.opts.OnLayer(depth, len(w.layer))

		next, err := w.expandLayer(depth)
		if err != nil {
			return 0, err
		}
		if w.targetID >= 0 {
			return depth + 1, nil
		}
		w.layer = next
	}

	return 0, nil
}

// expandLayer probes the neighbors of every word in the current layer.
// A neighbor is accepted iff it was not finished in an earlier layer; the
// words first seen here join visited only after the whole layer is done.
func (w *walker) expandLayer(depth int) ([]int, error) {
	seen := make(map[string]int)
	var next []int
	for _, u := range w.layer {
		// cancellation check once per expanded word
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		word := w.words[u]
		if err := w.opts.OnExpand(word, depth); err != nil {
			return nil, fmt.Errorf("%w: OnExpand at %q: %w", ErrHook, word, err)
		}
		expand(word, w.opts.Alphabet, w.lex, func(nbr string) {
			if _, done := w.visited[nbr]; done {
				return
			}
			id, ok := seen[nbr]
			if !ok {
				id = w.intern(nbr)
				seen[nbr] = id
				next = append(next, id)
				if nbr == w.target {
					w.targetID = id
				}
			}
			w.parents[id] = append(w.parents[id], u)
		})
	}
	for nbr := range seen {
		w.visited[nbr] = struct{}{}
	}

	return next, nil
}

// intern appends word to the arena and returns its index.
func (w *walker) intern(word string) int {
	w.words = append(w.words, word)
	w.parents = append(w.parents, nil)

	return len(w.words) - 1
}

// ladders rebuilds every source→target path from the predecessor arena.
// It walks the DAG backwards with an explicit stack of partial paths
// (target first), so depth never touches the call stack.
func (w *walker) ladders() [][]string {
	var out [][]string
	stack := [][]int{{w.targetID}}
	for len(stack) > 0 {
		top := len(stack) - 1
		rev := stack[top]
		stack = stack[:top]

		last := rev[len(rev)-1]
		if last == source {
			path := make([]string, len(rev))
			for i, id := range rev {
				path[len(rev)-1-i] = w.words[id]
			}
			out = append(out, path)
			continue
		}
		for _, p := range w.parents[last] {
			ext := make([]int, len(rev), len(rev)+1)
			copy(ext, rev)
			stack = append(stack, append(ext, p))
		}
	}

	return out
}
