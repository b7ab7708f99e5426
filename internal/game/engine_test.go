package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsmith/internal/words"
)

func testWordList(t *testing.T) *words.WordList {
	t.Helper()
	freq := words.Frequencies{"relax": 50, "roast": 40, "toast": 30, "boast": 20}
	wl, err := words.New(5, []string{"relax", "roast", "toast", "boast", "crane", "slate"}, freq, 4)
	require.NoError(t, err)
	return wl
}

func newTestGame(t *testing.T, solution string, maxAttempts int) *Game {
	t.Helper()
	g := New(testWordList(t), maxAttempts)
	require.NoError(t, g.SetSolution(solution))
	return g
}

func TestGame_StartsUnsolved(t *testing.T) {
	t.Parallel()

	g := New(testWordList(t), 0)
	assert.Equal(t, Unsolved, g.State())
	assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts())
	assert.Equal(t, 0, g.Attempts())
	assert.True(t, g.WordList().IsValidSolution(g.Solution().String()))
	assert.Len(t, g.ID(), 16)
}

func TestGame_SolvedOnExactGuess(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, "toast", 5)

	res, err := g.SubmitGuess("roast")
	require.NoError(t, err)
	assert.False(t, res.IsSolved())
	assert.Equal(t, Unsolved, g.State())

	res, err = g.SubmitGuess(" TOAST ")
	require.NoError(t, err)
	assert.True(t, res.IsSolved())
	assert.Equal(t, Solved, g.State())
	assert.Equal(t, 2, g.Attempts())

	_, err = g.SubmitGuess("relax")
	require.ErrorIs(t, err, ErrGameFinished)
	var fin *FinishedError
	require.True(t, errors.As(err, &fin))
	assert.Equal(t, Solved, fin.State)
	assert.Equal(t, 2, g.Attempts(), "rejected guesses are not recorded")
}

func TestGame_FailsAtAttemptLimit(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, "toast", 2)
	_, err := g.SubmitGuess("crane")
	require.NoError(t, err)
	_, err = g.SubmitGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, Failed, g.State())

	_, err = g.SubmitGuess("toast")
	var fin *FinishedError
	require.ErrorAs(t, err, &fin)
	assert.Equal(t, Failed, fin.State)
}

func TestGame_InvalidGuess(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, "toast", 5)
	for _, guess := range []string{"zzzzz", "toasts", "", "to4st"} {
		_, err := g.SubmitGuess(guess)
		require.ErrorIs(t, err, ErrInvalidGuess, guess)
	}
	assert.Equal(t, 0, g.Attempts())

	// guess-only words are accepted even though they can never be the answer
	_, err := g.SubmitGuess("slate")
	require.NoError(t, err)
}

func TestGame_SetSolution(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, "toast", 5)
	_, err := g.SubmitGuess("roast")
	require.NoError(t, err)

	err = g.SetSolution("slate")
	var inv *InvalidSolutionError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "slate", inv.Solution)
	assert.Equal(t, "toast", g.Solution().String(), "rejected solution leaves the round untouched")
	assert.Equal(t, 1, g.Attempts())

	require.NoError(t, g.SetSolution("relax"))
	assert.Equal(t, "relax", g.Solution().String())
	assert.Equal(t, 0, g.Attempts(), "setting a solution starts a fresh round")
}

func TestGame_RestartKeepsSolution(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, "boast", 1)
	_, err := g.SubmitGuess("roast")
	require.NoError(t, err)
	require.Equal(t, Failed, g.State())

	g.Restart()
	assert.Equal(t, Unsolved, g.State())
	assert.Empty(t, g.Guesses())
	assert.Equal(t, "boast", g.Solution().String())
}

func TestGame_GuessesIsACopy(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, "boast", 5)
	_, err := g.SubmitGuess("roast")
	require.NoError(t, err)

	h := g.Guesses()
	h[0] = GuessResult{}
	assert.Equal(t, "roast", g.Guesses()[0].Guess.String())
}

func TestGame_LetterStates(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, "toast", 5)
	_, err := g.SubmitGuess("slate") // s:y l:. a:g t:y e:.
	require.NoError(t, err)
	_, err = g.SubmitGuess("roast") // r:. o:g a:g s:g t:g
	require.NoError(t, err)

	ls := g.LetterStates()
	letter := func(b byte) words.Letter { l, _ := words.ParseLetter(b); return l }

	assert.Equal(t, Placed, ls[letter('s')], "exact beats an earlier partial")
	assert.Equal(t, Placed, ls[letter('a')])
	assert.Equal(t, Eliminated, ls[letter('l')])
	assert.Equal(t, Eliminated, ls[letter('r')])
	assert.Equal(t, Unknown, ls[letter('z')])
}
