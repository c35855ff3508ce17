// Package lexicon provides an immutable set of dictionary words and the
// loaders that build one from a word list.
//
// What
//
//   - Lexicon: a set of unique words; order is irrelevant, lookups are O(1).
//   - New(words...): build a Lexicon from literals (tests, small fixtures).
//   - Read(r): one word per line from any io.Reader.
//   - Open(path): read a file, reporting I/O errors.
//   - Load(path): read a file, degrading to an empty Lexicon when the file
//     is missing or unreadable.
//
// Lines are taken as-is apart from a trailing carriage return; blank lines
// are skipped. No case folding is applied.
//
// A Lexicon is never mutated after construction, so one instance may be
// shared by any number of goroutines running ladder searches.
//
// Usage
//
//	lex := lexicon.Load("./english.txt")
//	if lex.Contains("work") {
//	    // ...
//	}
package lexicon
