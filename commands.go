// commands.go
//
// Command tree for the wordsmith binary (urfave/cli/v3).
//
// Commands:
//   - play:    a human guesses, one word per line on stdin ("?" asks for a hint).
//   - solve:   the solver plays one game.
//   - suggest: next guess given observed GUESS FEEDBACK pairs.
//   - bench:   the solver plays every puzzle; prints a histogram.
//   - first:   exhaustive search for the best opening guess.
//
// Global flags override config values (see internal/config).

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/robalobadob/wordsmith/internal/bench"
	"github.com/robalobadob/wordsmith/internal/config"
	"github.com/robalobadob/wordsmith/internal/daily"
	"github.com/robalobadob/wordsmith/internal/game"
	"github.com/robalobadob/wordsmith/internal/solver"
	"github.com/robalobadob/wordsmith/internal/words"
)

// app carries what every command needs once Before has run.
type app struct {
	cfg *config.Config
	wl  *words.WordList
}

func newCommand(a *app) *cli.Command {
	solutionFlags := []cli.Flag{
		&cli.StringFlag{Name: "solution", Aliases: []string{"s"}, Usage: "play against this word instead of a random one"},
		&cli.BoolFlag{Name: "daily", Aliases: []string{"d"}, Usage: "play today's word"},
	}

	return &cli.Command{
		Name:   "wordsmith",
		Usage:  "play and solve Wordle-style puzzles",
		Before: a.before,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Usage: "word source: wordle, scrabble or dictionary"},
			&cli.IntFlag{Name: "letters", Aliases: []string{"n"}, Usage: "word length (scrabble/dictionary)"},
			&cli.IntFlag{Name: "top", Usage: "solution pool size, most frequent words first (0 = all)"},
			&cli.StringFlag{Name: "words-file", Usage: "newline-delimited word list (overrides --source)"},
			&cli.StringFlag{Name: "frequency-file", Usage: "tab-separated word/count table for --words-file"},
			&cli.StringFlag{Name: "strategy", Usage: "minev, minlogev or minimax"},
			&cli.StringFlag{Name: "effort", Usage: "best, good or fast"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: "scoring goroutines (0 = GOMAXPROCS)"},
			&cli.IntFlag{Name: "max-attempts", Usage: "guesses per game"},
			&cli.DurationFlag{Name: "timeout", Usage: "time limit per solver turn (0 = none)"},
			&cli.StringFlag{Name: "log-level", Usage: "zerolog level"},
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "guess the word yourself",
				Flags:  solutionFlags,
				Action: a.play,
			},
			{
				Name:   "solve",
				Usage:  "let the solver play one game",
				Flags:  solutionFlags,
				Action: a.solve,
			},
			{
				Name:      "suggest",
				Usage:     "suggest the next guess from observed feedback (g = exact, y = partial, . = wrong)",
				ArgsUsage: "[GUESS FEEDBACK]...",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "show", Value: 10, Usage: "candidates to list"},
				},
				Action: a.suggest,
			},
			{
				Name:  "bench",
				Usage: "solve every puzzle and print the guess histogram",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Usage: "only the first N puzzles (0 = all)"},
					&cli.IntFlag{Name: "parallel", Usage: "concurrent games (0 = GOMAXPROCS)"},
					&cli.BoolFlag{Name: "progress", Aliases: []string{"p"}, Usage: "show progress bar"},
				},
				Action: a.bench,
			},
			{
				Name:  "first",
				Usage: "search the whole vocabulary for the best opening guess",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "progress", Aliases: []string{"p"}, Usage: "show progress bar"},
				},
				Action: a.first,
			},
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return ctx, fmt.Errorf("flags: %w", err)
	}
	setupLogger(cfg.Log, cmd.Root().ErrWriter)

	loader, err := cfg.Words.Loader()
	if err != nil {
		return ctx, err
	}
	wl, err := loader.Load()
	if err != nil {
		return ctx, err
	}
	sols, guesses := wl.Stats()
	log.Debug().
		Int("letters", wl.LetterCount()).
		Int("solutions", sols).
		Int("guesses", guesses).
		Msg("word list loaded")

	a.cfg, a.wl = cfg, wl
	return ctx, nil
}

func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("source") {
		cfg.Words.Source = cmd.String("source")
	}
	if cmd.IsSet("letters") {
		cfg.Words.Letters = cmd.Int("letters")
	}
	if cmd.IsSet("top") {
		cfg.Words.TopN = cmd.Int("top")
	}
	if cmd.IsSet("words-file") {
		cfg.Words.File = cmd.String("words-file")
	}
	if cmd.IsSet("frequency-file") {
		cfg.Words.FrequencyFile = cmd.String("frequency-file")
	}
	if cmd.IsSet("strategy") {
		cfg.Solver.StrategyRaw = cmd.String("strategy")
	}
	if cmd.IsSet("effort") {
		cfg.Solver.EffortRaw = cmd.String("effort")
	}
	if cmd.IsSet("workers") {
		cfg.Solver.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("max-attempts") {
		cfg.Game.MaxAttempts = cmd.Int("max-attempts")
	}
	if cmd.IsSet("timeout") {
		cfg.Solver.TurnTimeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
}

// newGame starts a game on the requested solution: --solution, --daily,
// or random.
func (a *app) newGame(cmd *cli.Command) (*game.Game, error) {
	g := game.New(a.wl, a.cfg.Game.MaxAttempts)
	switch {
	case cmd.String("solution") != "":
		if err := g.SetSolution(cmd.String("solution")); err != nil {
			return nil, err
		}
	case cmd.Bool("daily"):
		now := time.Now()
		sol := daily.Solution(a.wl, now, a.cfg.Daily.Salt)
		if err := g.SetSolution(sol.String()); err != nil {
			return nil, err
		}
		log.Debug().Str("date", daily.DateKey(now)).Msg("daily puzzle")
	}
	return g, nil
}

func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	g, err := a.newGame(cmd)
	if err != nil {
		return err
	}
	out := cmd.Root().Writer
	sc := bufio.NewScanner(cmd.Root().Reader)

	fmt.Fprintf(out, "Guess the %d-letter word in %d attempts. Enter ? for a hint.\n",
		g.LetterCount(), g.MaxAttempts())
	for !g.State().IsTerminal() {
		fmt.Fprintf(out, "%d/%d> ", g.Attempts()+1, g.MaxAttempts())
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "?" {
			if err := a.hint(ctx, out, g); err != nil {
				return err
			}
			continue
		}

		res, err := g.SubmitGuess(line)
		var invalid *game.InvalidGuessError
		if errors.As(err, &invalid) {
			fmt.Fprintf(out, "%q is not in the word list\n", invalid.Guess)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s   %s\n", res, letterSummary(g.LetterStates()))
	}
	if err := sc.Err(); err != nil {
		return err
	}

	switch g.State() {
	case game.Solved:
		fmt.Fprintf(out, "Solved in %d/%d.\n", g.Attempts(), g.MaxAttempts())
	default:
		fmt.Fprintf(out, "The word was %s.\n", g.Solution())
	}
	return nil
}

func (a *app) hint(ctx context.Context, out io.Writer, g *game.Game) error {
	s, err := solver.New(g, a.cfg.Solver.Options()...)
	if err != nil {
		return err
	}
	w, err := s.SelectGuess(ctx, a.cfg.Solver.Strategy)
	if err != nil && !errors.Is(err, solver.ErrDeadline) {
		return err
	}
	fmt.Fprintf(out, "try %s (%d candidates left)\n", w, s.Remaining())
	return nil
}

// letterSummary renders what the history says about each letter.
func letterSummary(states map[words.Letter]game.LetterState) string {
	groups := map[game.LetterState][]string{}
	for i := 0; i < words.AlphabetSize; i++ {
		l := words.Letter(i)
		if st, ok := states[l]; ok {
			groups[st] = append(groups[st], l.String())
		}
	}
	var parts []string
	for _, st := range []game.LetterState{game.Placed, game.Present, game.Eliminated} {
		if ls := groups[st]; len(ls) > 0 {
			parts = append(parts, st.String()+": "+strings.Join(ls, ""))
		}
	}
	return strings.Join(parts, " | ")
}

func (a *app) solve(ctx context.Context, cmd *cli.Command) error {
	g, err := a.newGame(cmd)
	if err != nil {
		return err
	}
	s, err := solver.New(g, a.cfg.Solver.Options()...)
	if err != nil {
		return err
	}
	out := cmd.Root().Writer

	for !g.State().IsTerminal() {
		res, err := s.Guess(ctx, a.cfg.Solver.Strategy)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d. %s  (%d left)\n", g.Attempts(), res, s.Remaining())
	}
	fmt.Fprintf(out, "%s in %d/%d: %s\n", g.State(), g.Attempts(), g.MaxAttempts(), g.Solution())
	return nil
}

func (a *app) suggest(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args)%2 != 0 {
		return cli.Exit("expected GUESS FEEDBACK pairs", 1)
	}

	g := game.New(a.wl, a.cfg.Game.MaxAttempts)
	s, err := solver.New(g, a.cfg.Solver.Options()...)
	if err != nil {
		return err
	}
	for i := 0; i < len(args); i += 2 {
		w, err := words.ParseWord(strings.ToLower(args[i]))
		if err != nil {
			return err
		}
		fb, err := game.ParseFeedback(args[i+1])
		if err != nil {
			return err
		}
		if err := s.Apply(game.GuessResult{Guess: w, Feedback: fb}); err != nil {
			return err
		}
	}

	next, err := s.SelectGuess(ctx, a.cfg.Solver.Strategy)
	if err != nil && !errors.Is(err, solver.ErrDeadline) {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "suggestion: %s\n", next)
	cands := s.Candidates()
	fmt.Fprintf(out, "%d candidates remain\n", len(cands))
	for i, c := range cands {
		if i == cmd.Int("show") {
			fmt.Fprintln(out, "  ...")
			break
		}
		fmt.Fprintf(out, "  %s\n", c)
	}
	return nil
}

func (a *app) bench(ctx context.Context, cmd *cli.Command) error {
	total := len(a.wl.Solutions())
	if limit := cmd.Int("limit"); limit > 0 && limit < total {
		total = limit
	}

	var bar *progressbar.ProgressBar
	if cmd.Bool("progress") {
		bar = progressbar.Default(int64(total), "solving")
	}

	// games run in parallel, so each solver scores on one goroutine
	opts := append(a.cfg.Solver.Options(), solver.WithWorkers(1))
	rep, err := bench.Run(ctx, a.wl, bench.Options{
		Strategy:    a.cfg.Solver.Strategy,
		Solver:      opts,
		MaxAttempts: a.cfg.Game.MaxAttempts,
		Parallel:    cmd.Int("parallel"),
		Limit:       cmd.Int("limit"),
		OnResult: func(r bench.Result) {
			if bar != nil {
				_ = bar.Add(1)
			}
			log.Debug().
				Str("solution", r.Solution.String()).
				Int("guesses", len(r.Guesses)).
				Str("state", r.State.String()).
				Msg("puzzle done")
		},
	})
	if err != nil {
		return err
	}
	return rep.Write(cmd.Root().Writer)
}

func (a *app) first(ctx context.Context, cmd *cli.Command) error {
	var progress func(int)
	if cmd.Bool("progress") {
		bar := progressbar.Default(int64(len(a.wl.Words())), "scoring")
		progress = func(n int) { _ = bar.Add(n) }
	}

	strategy := a.cfg.Solver.Strategy
	start := time.Now()
	w, score, err := solver.BestOpener(ctx, a.wl, strategy, a.cfg.Solver.Workers, progress)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("opener search finished")

	fmt.Fprintf(cmd.Root().Writer, "%s  score %.2f  expected remaining %.2f of %d\n",
		w, score, strategy.ExpectedRemaining(score, len(a.wl.Solutions())), len(a.wl.Solutions()))
	return nil
}
