// internal/solver/solver.go
//
// Guess selector for one game.
//
// Responsibilities:
//   - Track the live candidate set by replaying the game's history.
//   - Pick the next guess: last candidate, opener, or full vocabulary scan.
//   - Submit guesses to the game and narrow the candidates with the result.
//
// Notes:
//   - The Solver borrows the *game.Game; the game still owns its history.
//   - A Solver is not safe for concurrent use; scoring inside a turn is
//     parallel (see rank.go).

package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsmith/internal/game"
	"github.com/robalobadob/wordsmith/internal/words"
)

// ErrNoCandidates means no solution in the pool is consistent with the
// feedback seen so far.
var ErrNoCandidates = errors.New("solver: no candidates remain")

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers bounds scoring goroutines. n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option { return func(s *Solver) { s.workers = n } }

// WithEffort sets the early-exit threshold.
func WithEffort(e Effort) Option { return func(s *Solver) { s.effort = e } }

// WithOpeners replaces DefaultOpeners. nil disables openers.
func WithOpeners(m map[int]string) Option { return func(s *Solver) { s.openers = m } }

// WithTurnTimeout bounds each SelectGuess call. 0 means no limit.
func WithTurnTimeout(d time.Duration) Option { return func(s *Solver) { s.turnTimeout = d } }

// Solver selects guesses for a game.
type Solver struct {
	game       *game.Game
	wl         *words.WordList
	candidates *Candidates
	guessed    bool

	workers     int
	effort      Effort
	openers     map[int]string
	turnTimeout time.Duration
}

// New builds a solver for g and replays any guesses already made.
func New(g *game.Game, opts ...Option) (*Solver, error) {
	s := &Solver{
		game:    g,
		wl:      g.WordList(),
		openers: DefaultOpeners,
	}
	for _, o := range opts {
		o(s)
	}
	s.candidates = NewCandidates(s.wl)
	if err := s.Sync(); err != nil {
		return nil, err
	}
	return s, nil
}

// Sync rebuilds the candidates from the game's history, e.g. after Restart
// or SetSolution.
func (s *Solver) Sync() error {
	s.candidates.Reset()
	s.guessed = false
	for _, r := range s.game.Guesses() {
		if err := s.Apply(r); err != nil {
			return err
		}
	}
	return nil
}

// Remaining is the number of live candidates.
func (s *Solver) Remaining() int { return s.candidates.Len() }

// Candidates lists the live candidates in solution order.
func (s *Solver) Candidates() []words.Word { return s.candidates.Words() }

// Apply narrows the candidates with an observed result.
func (s *Solver) Apply(result game.GuessResult) error {
	if result.Guess.Len() != s.wl.LetterCount() || result.Feedback.Len() != s.wl.LetterCount() {
		return fmt.Errorf("%w: %s for %d-letter game", game.ErrLengthMismatch, result, s.wl.LetterCount())
	}
	removed := s.candidates.Filter(result)
	s.guessed = true
	log.Debug().
		Str("game", s.game.ID()).
		Str("result", result.String()).
		Int("removed", removed).
		Int("remaining", s.candidates.Len()).
		Msg("candidates filtered")
	if s.candidates.Len() == 0 {
		return fmt.Errorf("after %s: %w", result, ErrNoCandidates)
	}
	return nil
}

// SelectGuess returns the next guess under strategy.
//
// On ErrDeadline the returned word is still usable: the best guess scored
// before time ran out, or the first candidate if nothing was scored.
func (s *Solver) SelectGuess(ctx context.Context, strategy Strategy) (words.Word, error) {
	active := s.candidates.Words()
	switch len(active) {
	case 0:
		return words.Word{}, ErrNoCandidates
	case 1:
		return active[0], nil
	}

	if w, ok := s.opener(); ok {
		return w, nil
	}

	if s.turnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.turnTimeout)
		defer cancel()
	}

	start := time.Now()
	best, err := rank(ctx, rankRequest{
		vocab:       s.wl.Words(),
		active:      active,
		isCandidate: s.candidates.Contains,
		strategy:    strategy,
		effort:      s.effort,
		workers:     s.workers,
	})
	if err != nil && !errors.Is(err, ErrDeadline) {
		return words.Word{}, err
	}
	if !best.found {
		best.word = active[0]
	}

	log.Debug().
		Str("game", s.game.ID()).
		Str("strategy", strategy.String()).
		Int("remaining", len(active)).
		Str("guess", best.word.String()).
		Float64("score", best.score).
		Dur("elapsed", time.Since(start)).
		Msg("guess selected")
	return best.word, err
}

// opener returns the configured first guess when this is the first turn.
func (s *Solver) opener() (words.Word, bool) {
	if s.guessed {
		return words.Word{}, false
	}
	text, ok := s.openers[s.wl.LetterCount()]
	if !ok || !s.wl.IsValidGuess(text) {
		return words.Word{}, false
	}
	return words.MustParseWord(text), true
}

// Guess selects a guess, submits it to the game and applies the feedback.
// Game rejections are returned unchanged. A finished game is rejected
// before any scoring.
func (s *Solver) Guess(ctx context.Context, strategy Strategy) (game.GuessResult, error) {
	if st := s.game.State(); st.IsTerminal() {
		return game.GuessResult{}, &game.FinishedError{State: st}
	}

	w, err := s.SelectGuess(ctx, strategy)
	switch {
	case errors.Is(err, ErrDeadline):
		log.Warn().
			Str("game", s.game.ID()).
			Str("guess", w.String()).
			Msg("turn deadline exceeded, using best guess so far")
	case err != nil:
		return game.GuessResult{}, err
	}

	res, err := s.game.SubmitGuess(w.String())
	if err != nil {
		return game.GuessResult{}, err
	}
	return res, s.Apply(res)
}

// Play guesses until the game reaches a terminal state.
func (s *Solver) Play(ctx context.Context, strategy Strategy) (game.State, error) {
	for !s.game.State().IsTerminal() {
		if _, err := s.Guess(ctx, strategy); err != nil {
			return s.game.State(), err
		}
	}
	return s.game.State(), nil
}
