// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterMatch: per-letter result of a guess (exact/partial/wrong).
//   - Feedback:    the ordered LetterMatch sequence for one guess.
//   - GuessResult: a guess paired with its Feedback.
//   - State:       unsolved/solved/failed.
//
// Feedback and GuessResult are comparable values: == is structural
// equality over every position, so both work directly as map keys.

package game

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordsmith/internal/words"
)

// LetterMatch is the evaluation result for a single letter in a guess.
type LetterMatch uint8

const (
	Wrong   LetterMatch = iota // letter not in the solution (or all copies already accounted for)
	Partial                    // letter in the solution at another position
	Exact                      // letter in the correct position
)

func (m LetterMatch) String() string {
	switch m {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	case Wrong:
		return "wrong"
	default:
		return fmt.Sprintf("LetterMatch(%d)", uint8(m))
	}
}

// Feedback is an ordered sequence of LetterMatch, one per position.
type Feedback struct {
	marks [words.MaxLength]LetterMatch
	n     uint8
}

// NewFeedback builds Feedback from explicit marks.
func NewFeedback(marks ...LetterMatch) Feedback {
	var f Feedback
	f.n = uint8(copy(f.marks[:], marks))
	return f
}

// ParseFeedback reads the compact notation used on the command line:
// 'g' exact, 'y' partial, and any of '.', '-', 'b', 'x' for wrong.
func ParseFeedback(s string) (Feedback, error) {
	var f Feedback
	if len(s) == 0 || len(s) > words.MaxLength {
		return f, fmt.Errorf("game: feedback %q: %w", s, words.ErrWordLength)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g', 'G':
			f.marks[i] = Exact
		case 'y', 'Y':
			f.marks[i] = Partial
		case '.', '-', 'b', 'B', 'x', 'X':
			f.marks[i] = Wrong
		default:
			return Feedback{}, fmt.Errorf("game: feedback %q: unknown mark %q", s, s[i])
		}
	}
	f.n = uint8(len(s))
	return f, nil
}

// Len returns the number of positions.
func (f Feedback) Len() int { return int(f.n) }

// At returns the mark at position i.
func (f Feedback) At(i int) LetterMatch { return f.marks[i] }

// Matches returns a copy of the marks.
func (f Feedback) Matches() []LetterMatch {
	out := make([]LetterMatch, f.n)
	copy(out, f.marks[:f.n])
	return out
}

// Code packs the marks into a base-3 integer (position 0 least significant).
// Two Feedbacks of the same length are equal iff their codes are equal.
func (f Feedback) Code() uint32 {
	var code uint32
	for i := int(f.n) - 1; i >= 0; i-- {
		code = code*3 + uint32(f.marks[i])
	}
	return code
}

// String renders the compact notation accepted by ParseFeedback.
func (f Feedback) String() string {
	var b strings.Builder
	for i := 0; i < int(f.n); i++ {
		switch f.marks[i] {
		case Exact:
			b.WriteByte('g')
		case Partial:
			b.WriteByte('y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// GuessResult is a guess and the feedback it received.
type GuessResult struct {
	Guess    words.Word
	Feedback Feedback
}

// IsSolved reports whether every position is Exact.
func (r GuessResult) IsSolved() bool {
	if r.Feedback.n == 0 {
		return false
	}
	for i := 0; i < int(r.Feedback.n); i++ {
		if r.Feedback.marks[i] != Exact {
			return false
		}
	}
	return true
}

func (r GuessResult) String() string {
	return r.Guess.String() + " " + r.Feedback.String()
}

// State is the derived status of a round.
type State uint8

const (
	Unsolved State = iota
	Solved
	Failed
)

func (s State) String() string {
	switch s {
	case Unsolved:
		return "unsolved"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// IsTerminal reports whether no further guesses are accepted.
func (s State) IsTerminal() bool { return s == Solved || s == Failed }
