package ladder

// Neighbors returns every word of lex obtained from word by replacing exactly
// one letter with a different letter of the alphabet (DefaultAlphabet unless
// WithAlphabet is given; other options are ignored).
// Words are produced letter-major, position-minor: all substitutions by the
// first alphabet letter left to right, then by the second, and so on.
// word itself need not be in lex. An empty word, a nil lex or invalid
// options yield nil; use NeighborsWith to see the error.
// Complexity: O(len(word) · len(alphabet)) probes.
func Neighbors(word string, lex WordSet, opts ...Option) []string {
	out, err := NeighborsWith(word, lex, opts...)
	if err != nil {
		return nil
	}

	return out
}

// NeighborsWith is Neighbors reporting ErrLexiconNil or ErrOptionViolation.
func NeighborsWith(word string, lex WordSet, opts ...Option) ([]string, error) {
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

	var out []string
	expand(word, o.Alphabet, lex, func(w string) {
		out = append(out, w)
	})

	return out, nil
}

// expand calls emit for every member of lex one substitution away from word.
// Each (letter, position) pair yields a distinct candidate, so nothing is
// emitted twice.
func expand(word, alphabet string, lex WordSet, emit func(string)) {
	if word == "" {
		return
	}
	buf := []byte(word)
	for a := 0; a < len(alphabet); a++ {
		c := alphabet[a]
		for i := range buf {
			orig := buf[i]
			if orig == c {
				continue
			}
			buf[i] = c
			if cand := string(buf); lex.Contains(cand) {
				emit(cand)
			}
			buf[i] = orig
		}
	}
}

// Adjacent reports whether a and b have the same length and differ in
// exactly one position.
func Adjacent(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}
