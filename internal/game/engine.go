// internal/game/engine.go
//
// Game engine for a single round of guessing.
// Responsibilities:
//   - Create games over a shared, read-only *words.WordList.
//   - Validate and apply guesses against the live solution.
//   - Derive State (unsolved → solved/failed) from the guess history.
//   - Aggregate per-letter knowledge for keyboard-style displays.
//
// Notes:
//   - The Game owns its history; callers get copies.
//   - SetSolution always begins a fresh round, so a solution can never
//     change underneath guesses already made.
//   - A Game is not safe for concurrent use.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/robalobadob/wordsmith/internal/words"
)

// DefaultMaxAttempts is the attempt limit used when none is configured.
const DefaultMaxAttempts = 5

// Game holds the state of one session.
type Game struct {
	id          string
	wordlist    *words.WordList
	maxAttempts int
	solution    words.Word
	guesses     []GuessResult
}

// New constructs a game with a random solution from wl.
// maxAttempts <= 0 selects DefaultMaxAttempts.
func New(wl *words.WordList, maxAttempts int) *Game {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Game{
		id:          randomID(),
		wordlist:    wl,
		maxAttempts: maxAttempts,
		solution:    wl.RandomSolution(),
	}
}

// ID returns a compact identifier for correlating log lines.
func (g *Game) ID() string { return g.id }

// WordList returns the shared word list.
func (g *Game) WordList() *words.WordList { return g.wordlist }

// LetterCount is the word length for this game.
func (g *Game) LetterCount() int { return g.wordlist.LetterCount() }

// MaxAttempts is the attempt limit.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Attempts is the number of guesses made this round.
func (g *Game) Attempts() int { return len(g.guesses) }

// Solution returns the live solution.
func (g *Game) Solution() words.Word { return g.solution }

// Guesses returns a copy of the history.
func (g *Game) Guesses() []GuessResult {
	out := make([]GuessResult, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// SetSolution replaces the solution and starts a fresh round.
func (g *Game) SetSolution(text string) error {
	text = strings.ToLower(strings.TrimSpace(text))
	if !g.wordlist.IsValidSolution(text) {
		return &InvalidSolutionError{Solution: text}
	}
	g.solution = words.MustParseWord(text)
	g.Restart()
	return nil
}

// Restart clears the history and keeps the solution.
func (g *Game) Restart() {
	g.guesses = nil
}

// State derives the round status from the history.
func (g *Game) State() State {
	n := len(g.guesses)
	switch {
	case n == 0:
		return Unsolved
	case g.guesses[n-1].IsSolved():
		return Solved
	case n >= g.maxAttempts:
		return Failed
	default:
		return Unsolved
	}
}

// SubmitGuess validates, scores and records a guess.
//
// Validation rules:
//   - Guess must be in the vocabulary (ErrInvalidGuess).
//   - Round must not be finished (ErrGameFinished).
func (g *Game) SubmitGuess(text string) (GuessResult, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if !g.wordlist.IsValidGuess(text) {
		return GuessResult{}, &InvalidGuessError{Guess: text}
	}
	if st := g.State(); st.IsTerminal() {
		return GuessResult{}, &FinishedError{State: st}
	}

	res := Check(words.MustParseWord(text), g.solution)
	g.guesses = append(g.guesses, res)
	return res, nil
}

// LetterState is what the history reveals about one letter.
type LetterState uint8

const (
	Unknown LetterState = iota
	Eliminated
	Present // seen as Partial, position unknown
	Placed  // seen as Exact somewhere
)

func (s LetterState) String() string {
	switch s {
	case Eliminated:
		return "eliminated"
	case Present:
		return "present"
	case Placed:
		return "placed"
	default:
		return "unknown"
	}
}

// LetterStates aggregates the history per letter: Placed dominates Present,
// which dominates Eliminated. Letters never guessed are absent (Unknown).
func (g *Game) LetterStates() map[words.Letter]LetterState {
	out := make(map[words.Letter]LetterState)
	for _, r := range g.guesses {
		for i := 0; i < r.Guess.Len(); i++ {
			l := r.Guess.At(i)
			var next LetterState
			switch r.Feedback.At(i) {
			case Exact:
				next = Placed
			case Partial:
				next = Present
			default:
				next = Eliminated
			}
			if next > out[l] {
				out[l] = next
			}
		}
	}
	return out
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
