package solver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsmith/internal/game"
	"github.com/robalobadob/wordsmith/internal/words"
)

var (
	wordleOnce sync.Once
	wordleWL   *words.WordList
	wordleErr  error
)

func wordleList(t *testing.T) *words.WordList {
	t.Helper()
	wordleOnce.Do(func() {
		wordleWL, wordleErr = words.Source{Kind: words.Wordle}.Load()
	})
	require.NoError(t, wordleErr)
	return wordleWL
}

func TestFilter_KeepsConsistentOnly(t *testing.T) {
	t.Parallel()

	pool := parseAll(t, "roast", "toast", "boast", "relax")
	res := game.Check(words.MustParseWord("roast"), words.MustParseWord("toast"))

	got := Filter(res, append([]words.Word(nil), pool...))
	assert.Equal(t, parseAll(t, "toast", "boast"), got)
	for _, w := range got {
		assert.True(t, Consistent(res, w))
	}
}

func TestCandidates_FilterIdempotentAndMonotonic(t *testing.T) {
	t.Parallel()

	wl := wordleList(t)
	c := NewCandidates(wl)
	require.Equal(t, len(wl.Solutions()), c.Len())

	solution := wl.Solutions()[42]
	prev := c.Len()
	for _, text := range []string{"roast", "crane", "pilot"} {
		if !wl.IsValidGuess(text) {
			continue
		}
		res := game.Check(words.MustParseWord(text), solution)
		removed := c.Filter(res)
		assert.Equal(t, prev-removed, c.Len())
		assert.LessOrEqual(t, c.Len(), prev)
		assert.True(t, c.Contains(solution), "true solution always survives")

		snapshot := c.Words()
		assert.Zero(t, c.Filter(res), "filtering twice removes nothing")
		assert.Equal(t, snapshot, c.Words())
		prev = c.Len()
	}
}

func TestCandidates_MatchesPureFilter(t *testing.T) {
	t.Parallel()

	wl := wordleList(t)
	solution := wl.Solutions()[7]
	res := game.Check(words.MustParseWord("roast"), solution)

	c := NewCandidates(wl)
	c.Filter(res)
	pool := append([]words.Word(nil), wl.Solutions()...)
	assert.Equal(t, Filter(res, pool), c.Words())
}

func TestCandidates_CloneAndReset(t *testing.T) {
	t.Parallel()

	wl := wordleList(t)
	c := NewCandidates(wl)
	full := c.Len()
	clone := c.Clone()

	c.Filter(game.Check(words.MustParseWord("roast"), wl.Solutions()[0]))
	assert.Less(t, c.Len(), full)
	assert.Equal(t, full, clone.Len(), "clone is independent")

	c.Reset()
	assert.Equal(t, full, c.Len())
	assert.False(t, c.Contains(words.MustParseWord("zzzzz")))
}
