package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordsmith/internal/solver"
	"github.com/robalobadob/wordsmith/internal/words"
)

// Validate checks ranges and parses the enum fields. Load calls it
// automatically; call it again after overriding fields (e.g. from flags).
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json (got %q)", c.Log.Format)
	}

	if err := c.Words.validate(); err != nil {
		return fmt.Errorf("words: %w", err)
	}

	if c.Game.MaxAttempts < 1 {
		return fmt.Errorf("game.max_attempts must be >= 1 (got %d)", c.Game.MaxAttempts)
	}

	if err := c.Solver.validate(); err != nil {
		return fmt.Errorf("solver: %w", err)
	}

	return nil
}

func (w *WordsConfig) validate() error {
	if w.Letters < 1 || w.Letters > words.MaxLength {
		return fmt.Errorf("letters must be in 1..%d (got %d)", words.MaxLength, w.Letters)
	}
	if w.TopN < 0 {
		return fmt.Errorf("top_n must be >= 0 (got %d)", w.TopN)
	}
	if w.File == "" {
		if _, err := words.ParseSource(w.Source, w.Letters, w.TopN); err != nil {
			return err
		}
	}
	return nil
}

func (s *SolverConfig) validate() error {
	st, err := solver.ParseStrategy(s.StrategyRaw)
	if err != nil {
		return err
	}
	s.Strategy = st

	e, err := solver.ParseEffort(s.EffortRaw)
	if err != nil {
		return err
	}
	s.Effort = e

	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", s.Workers)
	}
	if s.TurnTimeout < 0 {
		return fmt.Errorf("turn_timeout must be >= 0 (got %s)", s.TurnTimeout)
	}
	return nil
}

// Loader returns the word source described by the config.
func (w WordsConfig) Loader() (words.Loader, error) {
	if w.File != "" {
		return words.FileSource{
			Letters:       w.Letters,
			TopN:          w.TopN,
			WordsPath:     w.File,
			FrequencyPath: w.FrequencyFile,
		}, nil
	}
	return words.ParseSource(w.Source, w.Letters, w.TopN)
}

// Options converts the solver settings into solver options.
func (s SolverConfig) Options() []solver.Option {
	opts := []solver.Option{
		solver.WithWorkers(s.Workers),
		solver.WithEffort(s.Effort),
		solver.WithTurnTimeout(s.TurnTimeout),
	}
	if s.Opener != "" {
		openers := make(map[int]string, len(solver.DefaultOpeners)+1)
		for k, v := range solver.DefaultOpeners {
			openers[k] = v
		}
		openers[len(s.Opener)] = strings.ToLower(s.Opener)
		opts = append(opts, solver.WithOpeners(openers))
	}
	return opts
}
