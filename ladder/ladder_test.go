package ladder_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
)

var (
	catDogWords = []string{
		"cat", "cag", "dag", "dog", "dig", "pig", "cog", "cig", "dat", "cot", "cap", "cop", "dap",
	}

	workPlayWords = []string{
		"fork", "form", "foam", "flam", "flay", "pork", "perk", "peak", "pean", "plan", "peat", "plat",
		"porn", "pirn", "pian", "port", "pert", "word", "wood", "pood", "plod", "ploy", "worm", "bort",
		"boat", "blat", "wert", "wort", "base", "peel", "cold", "gore", "bore", "more", "dose", "all",
		"work", "no", "play", "makes", "worn", "jack", "a", "dull", "boy", "fine", "feel", "leaf",
		"post", "nice", "nose", "hail", "jest", "pole", "want", "went", "test",
	}

	workPlayLadders = [][]string{
		{"work", "fork", "form", "foam", "flam", "flay", "play"},
		{"work", "pork", "perk", "peak", "pean", "plan", "play"},
		{"work", "pork", "perk", "peak", "peat", "plat", "play"},
		{"work", "pork", "perk", "pert", "peat", "plat", "play"},
		{"work", "pork", "porn", "pirn", "pian", "plan", "play"},
		{"work", "pork", "port", "pert", "peat", "plat", "play"},
		{"work", "word", "wood", "pood", "plod", "ploy", "play"},
		{"work", "worm", "form", "foam", "flam", "flay", "play"},
		{"work", "worn", "porn", "pirn", "pian", "plan", "play"},
		{"work", "wort", "bort", "boat", "blat", "plat", "play"},
		{"work", "wort", "port", "pert", "peat", "plat", "play"},
		{"work", "wort", "wert", "pert", "peat", "plat", "play"},
	}
)

// GenerateSuite exercises Generate and Search over hand-built word sets.
type GenerateSuite struct {
	suite.Suite
}

// TestSingleHop verifies the smallest possible ladder.
func (s *GenerateSuite) TestSingleHop() {
	got := ladder.Generate("at", "it", lexicon.New("at", "it"))
	require.Equal(s.T(), [][]string{{"at", "it"}}, got)
}

// TestCatDog checks every 4-word ladder is found, sorted.
func (s *GenerateSuite) TestCatDog() {
	got := ladder.Generate("cat", "dog", lexicon.New(catDogWords...))
	want := [][]string{
		{"cat", "cag", "cog", "dog"},
		{"cat", "cag", "dag", "dog"},
		{"cat", "cot", "cog", "dog"},
		{"cat", "dat", "dag", "dog"},
	}
	require.Equal(s.T(), want, got)
}

// TestSharedIntermediate checks two ladders of one layer may run through
// the same next word ("dot" is reached from both "cot" and "dat").
func (s *GenerateSuite) TestSharedIntermediate() {
	lex := lexicon.New(append([]string{"dot", "cit"}, catDogWords...)...)
	got := ladder.Generate("cat", "dog", lex)
	want := [][]string{
		{"cat", "cag", "cog", "dog"},
		{"cat", "cag", "dag", "dog"},
		{"cat", "cot", "cog", "dog"},
		{"cat", "cot", "dot", "dog"},
		{"cat", "dat", "dag", "dog"},
		{"cat", "dat", "dot", "dog"},
	}
	require.Equal(s.T(), want, got)
}

// TestWorkPlay reproduces the twelve 7-word ladders from work to play.
func (s *GenerateSuite) TestWorkPlay() {
	lex := lexicon.New(workPlayWords...)
	got := ladder.Generate("work", "play", lex)
	require.Equal(s.T(), workPlayLadders, got)
	for _, p := range got {
		require.NoError(s.T(), ladder.Validate(p, "work", "play", lex))
	}
}

// TestDifferentLengths yields no ladder.
func (s *GenerateSuite) TestDifferentLengths() {
	lex := lexicon.New("airplane", "tricycle")
	got := ladder.Generate("airplane", "tricycle", lex)
	require.NotNil(s.T(), got)
	require.Empty(s.T(), got)
}

// TestDisconnected yields no ladder when the components do not meet.
func (s *GenerateSuite) TestDisconnected() {
	lex := lexicon.New("user", "usea", "void", "voix")
	require.Empty(s.T(), ladder.Generate("user", "void", lex))
}

// TestTargetOutsideLexicon is unreachable even when one step away.
func (s *GenerateSuite) TestTargetOutsideLexicon() {
	require.Empty(s.T(), ladder.Generate("at", "it", lexicon.New("at")))
}

// TestSourceOutsideLexicon still searches from the source.
func (s *GenerateSuite) TestSourceOutsideLexicon() {
	got := ladder.Generate("at", "it", lexicon.New("it"))
	require.Equal(s.T(), [][]string{{"at", "it"}}, got)
}

// TestSameWord returns the one-word ladder.
func (s *GenerateSuite) TestSameWord() {
	got := ladder.Generate("cat", "cat", lexicon.New(catDogWords...))
	require.Equal(s.T(), [][]string{{"cat"}}, got)
}

// TestEmptyWords yields no ladder.
func (s *GenerateSuite) TestEmptyWords() {
	lex := lexicon.New(catDogWords...)
	require.Empty(s.T(), ladder.Generate("", "", lex))
	require.Empty(s.T(), ladder.Generate("", "cat", lex))
}

// TestNilLexicon is tolerated by Generate and rejected by Search.
func (s *GenerateSuite) TestNilLexicon() {
	require.Empty(s.T(), ladder.Generate("at", "it", nil))
	_, err := ladder.Search("at", "it", nil)
	require.True(s.T(), errors.Is(err, ladder.ErrLexiconNil), "got %v", err)
}

// TestDeepChain walks a single 60-step ladder without recursion.
func (s *GenerateSuite) TestDeepChain() {
	const n = 60
	words := make([]string, 0, n+1)
	for k := 0; k <= n; k++ {
		words = append(words, strings.Repeat("b", k)+strings.Repeat("a", n-k))
	}
	from, to := words[0], words[n]
	res, err := ladder.Search(from, to, lexicon.New(words...))
	require.NoError(s.T(), err)
	require.Equal(s.T(), n, res.Depth)
	require.Len(s.T(), res.Paths, 1)
	require.Equal(s.T(), words, res.Paths[0])
	require.Equal(s.T(), n+1, res.Explored)
}

// TestDeterminism repeats the same query and expects identical output.
func (s *GenerateSuite) TestDeterminism() {
	lex := lexicon.New(workPlayWords...)
	first := ladder.Generate("work", "play", lex)
	for i := 0; i < 5; i++ {
		require.Equal(s.T(), first, ladder.Generate("work", "play", lex))
	}
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}

// TestSearch_Result checks the bookkeeping fields of Result.
func TestSearch_Result(t *testing.T) {
	res, err := ladder.Search("cat", "dog", lexicon.New(catDogWords...))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, 3, res.Depth)
	require.Len(t, res.Paths, 4)
	require.Greater(t, res.Explored, 1)

	none, err := ladder.Search("cat", "zzz", lexicon.New(catDogWords...))
	require.NoError(t, err)
	require.False(t, none.Found())
	require.Equal(t, -1, none.Depth)
	require.NotNil(t, none.Paths)
}

// TestSearch_MaxDepth stops before ladders longer than the limit.
func TestSearch_MaxDepth(t *testing.T) {
	lex := lexicon.New(catDogWords...)

	res, err := ladder.Search("cat", "dog", lex, ladder.WithMaxDepth(2))
	require.NoError(t, err)
	require.False(t, res.Found())

	res, err = ladder.Search("cat", "dog", lex, ladder.WithMaxDepth(3))
	require.NoError(t, err)
	require.Len(t, res.Paths, 4)

	res, err = ladder.Search("cat", "dog", lex, ladder.WithMaxDepth(0))
	require.NoError(t, err)
	require.Len(t, res.Paths, 4)

	_, err = ladder.Search("cat", "dog", lex, ladder.WithMaxDepth(-1))
	require.True(t, errors.Is(err, ladder.ErrOptionViolation), "got %v", err)
}

// TestSearch_Alphabet restricts substitutions to the given letters.
func TestSearch_Alphabet(t *testing.T) {
	lex := lexicon.New(catDogWords...)

	// Without 'd' nothing can ever reach "dog".
	res, err := ladder.Search("cat", "dog", lex, ladder.WithAlphabet("og"))
	require.NoError(t, err)
	require.False(t, res.Found())

	full, err := ladder.Search("cat", "dog", lex)
	require.NoError(t, err)
	res, err = ladder.Search("cat", "dog", lex, ladder.WithAlphabet("dgo"))
	require.NoError(t, err)
	require.Equal(t, full.Paths, res.Paths)
	// cat → {dat cag cot} → {dag cog} → {dog}
	require.Equal(t, 7, res.Explored)
	require.Greater(t, full.Explored, res.Explored)

	for _, bad := range []string{"", "aa", "é"} {
		_, err = ladder.Search("cat", "dog", lex, ladder.WithAlphabet(bad))
		require.True(t, errors.Is(err, ladder.ErrOptionViolation), "alphabet %q: got %v", bad, err)
	}
}

// TestSearch_OnLayer reports layer sizes in order.
func TestSearch_OnLayer(t *testing.T) {
	var depths, sizes []int
	_, err := ladder.Search("cat", "dog", lexicon.New(catDogWords...),
		ladder.WithOnLayer(func(depth, size int) {
			depths = append(depths, depth)
			sizes = append(sizes, size)
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, depths)
	// cat → {dat cag cot cap} → {dag dap cog cig cop}
	require.Equal(t, []int{1, 4, 5}, sizes)
}

// TestSearch_OnExpandError aborts the search with a wrapped error.
func TestSearch_OnExpandError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ladder.Search("cat", "dog", lexicon.New(catDogWords...),
		ladder.WithOnExpand(func(word string, depth int) error {
			if depth == 1 {
				return boom
			}
			return nil
		}),
	)
	require.True(t, errors.Is(err, ladder.ErrHook), "got %v", err)
	require.True(t, errors.Is(err, boom), "got %v", err)
}

// TestSearch_Cancelled honours an already cancelled context.
func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ladder.Search("cat", "dog", lexicon.New(catDogWords...), ladder.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)

	// the one-word ladder is no exception
	_, err = ladder.Search("cat", "cat", lexicon.New(catDogWords...), ladder.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

// TestSearch_CancelledMidSearch stops inside the layer being expanded.
func TestSearch_CancelledMidSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var expanded []string
	_, err := ladder.Search("cat", "dog", lexicon.New(catDogWords...),
		ladder.WithContext(ctx),
		ladder.WithOnExpand(func(word string, depth int) error {
			expanded = append(expanded, word)
			if depth == 1 {
				cancel()
			}
			return nil
		}))
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
	// cat, then the first word of layer 1 only
	require.Len(t, expanded, 2)
}
