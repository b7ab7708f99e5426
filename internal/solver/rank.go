// internal/solver/rank.go
//
// Parallel scan of the guess vocabulary.
//
// The vocabulary is cut into ordered chunks. Each chunk is scored by up to
// `workers` goroutines (errgroup), then folded into the running best in
// vocabulary order, so the winner does not depend on the worker count.
// The context is checked between chunks and periodically inside workers.

package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordsmith/internal/words"
)

// ErrDeadline is returned with the best guess found before the turn deadline.
var ErrDeadline = errors.New("solver: turn deadline exceeded")

const (
	minChunk   = 256
	checkEvery = 64
)

type rankRequest struct {
	vocab       []words.Word
	active      []words.Word
	isCandidate func(words.Word) bool
	strategy    Strategy
	effort      Effort
	workers     int
	progress    func(scored int) // optional, called after each chunk
}

type choice struct {
	word      words.Word
	score     float64
	candidate bool
	found     bool
}

// beats reports whether c should replace best. Equal scores favour words
// that may still be the answer; otherwise the earlier word stays.
func (c choice) beats(best choice) bool {
	if !best.found {
		return true
	}
	if c.score != best.score {
		return c.score < best.score
	}
	return c.candidate && !best.candidate
}

func rank(ctx context.Context, req rankRequest) (choice, error) {
	workers := req.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := workers * checkEvery
	if chunk < minChunk {
		chunk = minChunk
	}

	n := len(req.active)
	cutoff := float64(n) * req.effort.Threshold()
	scores := make([]float64, chunk)

	var best choice
	for lo := 0; lo < len(req.vocab); lo += chunk {
		if err := ctx.Err(); err != nil {
			return best, interrupted(err)
		}
		hi := min(lo+chunk, len(req.vocab))
		batch := req.vocab[lo:hi]

		if err := scoreBatch(ctx, batch, req, workers, scores); err != nil {
			return best, interrupted(err)
		}

		for i, w := range batch {
			c := choice{word: w, score: scores[i], candidate: req.isCandidate(w), found: true}
			if cutoff > 0 && req.strategy.ExpectedRemaining(c.score, n) <= cutoff {
				return c, nil
			}
			if c.beats(best) {
				best = c
			}
		}
		if req.progress != nil {
			req.progress(len(batch))
		}
	}
	return best, nil
}

// scoreBatch fills scores[i] for every word of batch.
func scoreBatch(ctx context.Context, batch []words.Word, req rankRequest, workers int, scores []float64) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	per := (len(batch) + workers - 1) / workers
	for lo := 0; lo < len(batch); lo += per {
		lo, hi := lo, min(lo+per, len(batch))
		g.Go(func() error {
			p := newPartition(batch[lo].Len())
			for i := lo; i < hi; i++ {
				if (i-lo)%checkEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				scores[i] = p.score(batch[i], req.strategy, req.active)
			}
			return nil
		})
	}
	return g.Wait()
}

func interrupted(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrDeadline
	}
	return fmt.Errorf("solver: scan interrupted: %w", err)
}
