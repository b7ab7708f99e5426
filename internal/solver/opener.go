package solver

import (
	"context"

	"github.com/robalobadob/wordsmith/internal/words"
)

// DefaultOpeners are precomputed first guesses per letter count: the
// BestOpener result for the embedded Wordle list under MinEV. Regenerate
// with "wordsmith first" whenever assets/wordle.txt changes.
var DefaultOpeners = map[int]string{
	5: "arise",
}

// BestOpener scores every word of wl against the full solution pool and
// returns the best first guess with its score. progress, if non-nil, is
// called with the number of words scored after each chunk.
func BestOpener(ctx context.Context, wl *words.WordList, strategy Strategy, workers int, progress func(int)) (words.Word, float64, error) {
	c := NewCandidates(wl)
	best, err := rank(ctx, rankRequest{
		vocab:       wl.Words(),
		active:      wl.Solutions(),
		isCandidate: c.Contains,
		strategy:    strategy,
		effort:      Best,
		workers:     workers,
		progress:    progress,
	})
	if !best.found {
		return words.Word{}, 0, err
	}
	return best.word, best.score, err
}
