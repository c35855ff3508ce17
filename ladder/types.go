// Package ladder provides tunable options and error definitions
// for shortest word-ladder search.
package ladder

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// DefaultAlphabet is the set of letters tried at every position.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Sentinel errors for ladder search.
var (
	// ErrLexiconNil is returned when a nil word set is passed.
	ErrLexiconNil = errors.New("ladder: lexicon is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrHook wraps an error returned by a user-supplied hook.
	ErrHook = errors.New("ladder: hook aborted search")
)

// WordSet is the read-only membership test the search needs.
// *lexicon.Lexicon satisfies it.
type WordSet interface {
	Contains(word string) bool
}

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, limits ladders to at most MaxDepth steps.
	// A value of 0 disables the limit.
	MaxDepth int

	// Alphabet lists the replacement letters tried at every position.
	Alphabet string

	// OnLayer is called once per layer before it is expanded, with the
	// layer depth (0 for the source) and the number of words in it.
	OnLayer func(depth, size int)

	// OnExpand is called for every word before its neighbors are probed.
	// A non-nil error aborts the search.
	OnExpand func(word string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit
//   - the lowercase latin alphabet
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		Alphabet: DefaultAlphabet,
		OnLayer:  func(int, int) {},
		OnExpand: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the number of steps of any returned ladder.
//
//	d > 0:  ladders longer than d steps are not searched for
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithAlphabet replaces the letters tried at each position.
// The alphabet must be non-empty ASCII without repeated letters.
func WithAlphabet(letters string) Option {
	return func(o *Options) {
		if letters == "" {
			o.err = fmt.Errorf("%w: alphabet is empty", ErrOptionViolation)
			return
		}
		var seen [utf8.RuneSelf]bool
		for i := 0; i < len(letters); i++ {
			c := letters[i]
			if c >= utf8.RuneSelf {
				o.err = fmt.Errorf("%w: alphabet must be ASCII (%q)", ErrOptionViolation, letters)
				return
			}
			if seen[c] {
				o.err = fmt.Errorf("%w: letter %q repeated in alphabet", ErrOptionViolation, c)
				return
			}
			seen[c] = true
		}
		o.Alphabet = letters
	}
}

// WithOnLayer registers a callback invoked at the start of every layer.
func WithOnLayer(fn func(depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithOnExpand registers a callback invoked before a word is expanded;
// returning an error from it stops the search.
func WithOnExpand(fn func(word string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Paths: every shortest ladder, sorted; never nil.
//   - Depth: number of steps of each ladder, or -1 when none was found.
//   - Explored: distinct words discovered, the source included.
type Result struct {
	Paths    [][]string
	Depth    int
	Explored int
}

// Found reports whether at least one ladder exists.
func (r *Result) Found() bool {
	return r != nil && len(r.Paths) > 0
}
