package game

import (
	"fmt"

	"github.com/robalobadob/wordsmith/internal/words"
)

// Evaluate grades guess against solution. Both words must have the same length.
func Evaluate(guess, solution words.Word) (GuessResult, error) {
	if guess.Len() != solution.Len() {
		return GuessResult{}, fmt.Errorf("%w: guess %q has %d letters, solution has %d",
			ErrLengthMismatch, guess, guess.Len(), solution.Len())
	}
	return Check(guess, solution), nil
}

// Check is Evaluate without the length check; callers guarantee equal lengths.
//
// Pass 1 counts, per letter, the solution positions that are not exact hits.
// Pass 2 walks left to right: an exact hit is Exact; otherwise the letter is
// Partial while unconsumed solution copies remain, else Wrong. Counting
// first keeps repeated letters from being credited more often than the
// solution holds them (guess "speed" against "abide" marks only one 'e').
func Check(guess, solution words.Word) GuessResult {
	n := guess.Len()
	res := GuessResult{Guess: guess}
	res.Feedback.n = uint8(n)

	var unmatched, consumed [words.AlphabetSize]uint8
	for i := 0; i < n; i++ {
		if g, s := guess.At(i), solution.At(i); g != s {
			unmatched[s]++
		}
	}

	for i := 0; i < n; i++ {
		g := guess.At(i)
		switch {
		case g == solution.At(i):
			res.Feedback.marks[i] = Exact
		case consumed[g] < unmatched[g]:
			res.Feedback.marks[i] = Partial
			consumed[g]++
		default:
			res.Feedback.marks[i] = Wrong
		}
	}
	return res
}
