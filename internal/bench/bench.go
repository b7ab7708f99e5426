// internal/bench/bench.go
//
// Benchmark harness: let the solver play every puzzle of a word list.
//
// Responsibilities:
//   - Run one game per solution, in parallel (errgroup), each with its own
//     Game and Solver over the shared *words.WordList.
//   - Collect a histogram of guess counts, failures and timing.
//   - Render the report as plain text.

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordsmith/internal/game"
	"github.com/robalobadob/wordsmith/internal/solver"
	"github.com/robalobadob/wordsmith/internal/words"
)

// Options controls a benchmark run.
type Options struct {
	Strategy    solver.Strategy
	Solver      []solver.Option
	MaxAttempts int
	Parallel    int // concurrent games; <= 0 uses GOMAXPROCS
	Limit       int // puzzles to play from the top of the pool; <= 0 plays all

	// OnResult is called once per finished puzzle, serialised.
	OnResult func(Result)
}

// Result is the outcome of one puzzle.
type Result struct {
	Solution words.Word
	Guesses  []words.Word
	State    game.State
	Err      error
}

// Solved reports whether the solver found the word in time.
func (r Result) Solved() bool { return r.State == game.Solved }

// Report aggregates a run.
type Report struct {
	Total    int
	Guesses  Counter // guess counts of solved puzzles
	Failures []Result
	Elapsed  time.Duration
}

// Run plays every selected solution of wl.
func Run(ctx context.Context, wl *words.WordList, opts Options) (*Report, error) {
	sols := wl.Solutions()
	if opts.Limit > 0 && opts.Limit < len(sols) {
		sols = sols[:opts.Limit]
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(sols))
	var mu sync.Mutex

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, sol := range sols {
		g.Go(func() error {
			r, err := playOne(gctx, wl, sol, opts)
			if err != nil {
				return err
			}
			results[i] = r
			if opts.OnResult != nil {
				mu.Lock()
				opts.OnResult(r)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Total: len(results), Elapsed: time.Since(start)}
	for _, r := range results {
		if r.Solved() {
			rep.Guesses.Add(len(r.Guesses))
		} else {
			rep.Failures = append(rep.Failures, r)
		}
	}
	return rep, nil
}

// playOne returns an error only when the run should stop: the context was
// canceled or its deadline passed.
func playOne(ctx context.Context, wl *words.WordList, sol words.Word, opts Options) (Result, error) {
	r := Result{Solution: sol}
	if err := ctx.Err(); err != nil {
		return r, err
	}

	g := game.New(wl, opts.MaxAttempts)
	if err := g.SetSolution(sol.String()); err != nil {
		r.Err = err
		return r, nil
	}
	s, err := solver.New(g, opts.Solver...)
	if err != nil {
		r.Err = err
		return r, nil
	}

	r.State, err = s.Play(ctx, opts.Strategy)
	for _, gr := range g.Guesses() {
		r.Guesses = append(r.Guesses, gr.Guess)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return r, ctxErr
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return r, err
		}
		r.Err = err
		log.Warn().Err(err).Str("solution", sol.String()).Msg("solver failed")
	}
	return r, nil
}

// Average is the mean guess count over solved puzzles.
func (rep *Report) Average() float64 {
	if rep.Guesses.Count() == 0 {
		return 0
	}
	return float64(rep.Guesses.Sum()) / float64(rep.Guesses.Count())
}

// PerPuzzle is wall time divided by puzzles played.
func (rep *Report) PerPuzzle() time.Duration {
	if rep.Total == 0 {
		return 0
	}
	return rep.Elapsed / time.Duration(rep.Total)
}

// Write renders the report: failures, then one histogram row per guess
// count with its share and the cumulative share of all puzzles.
func (rep *Report) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Failed to solve %d of %d puzzles.\n", len(rep.Failures), rep.Total)
	for _, f := range rep.Failures {
		fmt.Fprintf(&b, "  %s: %s\n", f.Solution, joinWords(f.Guesses))
	}

	acc := 0
	for _, bk := range rep.Guesses.Buckets() {
		acc += bk.Count
		fmt.Fprintf(&b, "%d guesses: %d (%.1f%% | %.1f%%)\n",
			bk.Value, bk.Count, percent(bk.Count, rep.Total), percent(acc, rep.Total))
	}
	fmt.Fprintf(&b, "Average: %.2f guesses, %.2f ms/puzzle\n",
		rep.Average(), float64(rep.PerPuzzle().Microseconds())/1000)

	_, err := io.WriteString(w, b.String())
	return err
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func joinWords(ws []words.Word) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.String()
	}
	return strings.Join(parts, ",")
}
