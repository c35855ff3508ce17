package ladder

import (
	"errors"
	"fmt"
	"slices"
)

// Validation errors returned by Validate.
var (
	// ErrEmptyPath indicates a ladder with no words.
	ErrEmptyPath = errors.New("ladder: path is empty")

	// ErrEndpoint indicates a ladder that does not start at from or end at to.
	ErrEndpoint = errors.New("ladder: wrong endpoint")

	// ErrNotAdjacent indicates two consecutive words that do not differ in
	// exactly one position.
	ErrNotAdjacent = errors.New("ladder: words are not adjacent")

	// ErrUnknownWord indicates an intermediate word missing from the word set.
	ErrUnknownWord = errors.New("ladder: word not in lexicon")

	// ErrRepeatedWord indicates a word visited twice within one ladder.
	ErrRepeatedWord = errors.New("ladder: word repeated")
)

// Less reports whether ladder a sorts before ladder b: the first differing
// word decides, and a proper prefix sorts first.
func Less(a, b []string) bool {
	return slices.Compare(a, b) < 0
}

// Sort orders ladders in place by Less.
func Sort(paths [][]string) {
	slices.SortFunc(paths, func(a, b []string) int {
		return slices.Compare(a, b)
	})
}

// Validate checks that path is a legal ladder from `from` to `to`:
// it starts and ends at the given words, consecutive words are Adjacent,
// no word appears twice, and every word other than the endpoints is a
// member of lex.
func Validate(path []string, from, to string, lex WordSet) error {
	if lex == nil {
		return ErrLexiconNil
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0] != from {
		return fmt.Errorf("%w: starts at %q, want %q", ErrEndpoint, path[0], from)
	}
	if last := path[len(path)-1]; last != to {
		return fmt.Errorf("%w: ends at %q, want %q", ErrEndpoint, last, to)
	}
	seen := make(map[string]int, len(path))
	for i, word := range path {
		if word != from && word != to && !lex.Contains(word) {
			return fmt.Errorf("%w: %q at step %d", ErrUnknownWord, word, i)
		}
		if first, dup := seen[word]; dup {
			return fmt.Errorf("%w: %q at steps %d and %d", ErrRepeatedWord, word, first, i)
		}
		seen[word] = i
		if i > 0 && !Adjacent(path[i-1], word) {
			return fmt.Errorf("%w: %q → %q at step %d", ErrNotAdjacent, path[i-1], word, i)
		}
	}

	return nil
}
