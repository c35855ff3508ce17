// Package wordladder finds every shortest word ladder between two words:
// sequences in which each word differs from the previous one by exactly one
// letter and every word belongs to a dictionary.
//
// What is inside?
//
//	ladder/     — the search: neighbor expansion, layer-synchronized BFS,
//	              ladder validation and ordering
//	lexicon/    — immutable word sets and one-word-per-line loaders
//	cmd/wordladder — command-line front end (generate, neighbors, check)
//	internal/   — logging (zap) and configuration (viper) for the command
//
// Quick example:
//
//	cat ─ cot ─ cog ─ dog
//	  └── cag ─┘
//
//	lex := lexicon.New("cat", "cot", "cog", "cag", "dog")
//	ladder.Generate("cat", "dog", lex)
//	// [[cat cag cog dog] [cat cot cog dog]]
//
// The search is a pure function of its inputs: no I/O, no global state, and
// concurrent calls may share one lexicon.
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
