package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrReaderNil is returned by Read when a nil reader is supplied.
var ErrReaderNil = errors.New("lexicon: reader is nil")

// maxLineSize bounds a single line of a word list (1 MiB).
const maxLineSize = 1 << 20

// Lexicon is an immutable set of words.
// The zero value is an empty Lexicon ready to use.
type Lexicon struct {
	words map[string]struct{}
}

// New returns a Lexicon holding the distinct, non-empty words given.
// Complexity: O(n).
func New(words ...string) *Lexicon {
	lx := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		lx.words[w] = struct{}{}
	}

	return lx
}

// Read builds a Lexicon from r, treating each line as one word.
// A trailing '\r' is stripped and blank lines are ignored.
func Read(r io.Reader) (*Lexicon, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	lx := &Lexicon{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		w := strings.TrimSuffix(sc.Text(), "\r")
		if w == "" {
			continue
		}
		lx.words[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: scan: %w", err)
	}

	return lx, nil
}

// Open reads the word list at path.
// Unlike Load, any I/O failure is returned to the caller.
func Open(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %q: %w", path, err)
	}
	defer f.Close()

	lx, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %q: %w", path, err)
	}

	return lx, nil
}

// Load reads the word list at path. A missing or unreadable file yields an
// empty Lexicon rather than an error.
func Load(path string) *Lexicon {
	lx, err := Open(path)
	if err != nil {
		return New()
	}

	return lx
}

// Contains reports whether word is in the Lexicon.
func (lx *Lexicon) Contains(word string) bool {
	if lx == nil {
		return false
	}
	_, ok := lx.words[word]

	return ok
}

// Len returns the number of distinct words.
func (lx *Lexicon) Len() int {
	if lx == nil {
		return 0
	}

	return len(lx.words)
}

// Words returns all words in ascending order. The slice is a fresh copy.
// Complexity: O(n log n).
func (lx *Lexicon) Words() []string {
	if lx == nil {
		return nil
	}
	out := make([]string, 0, len(lx.words))
	for w := range lx.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// OfLength returns a new Lexicon restricted to words of exactly n bytes.
// Ladder searches only ever touch words of one length, so this shrinks the
// working set for a large dictionary.
func (lx *Lexicon) OfLength(n int) *Lexicon {
	out := &Lexicon{words: make(map[string]struct{})}
	if lx == nil {
		return out
	}
	for w := range lx.words {
		if len(w) == n {
			out.words[w] = struct{}{}
		}
	}

	return out
}
