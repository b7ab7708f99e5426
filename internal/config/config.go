package config

import (
	"time"

	"github.com/robalobadob/wordsmith/internal/solver"
)

// Config is the root application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Words  WordsConfig  `yaml:"words"`
	Game   GameConfig   `yaml:"game"`
	Solver SolverConfig `yaml:"solver"`
	Daily  DailyConfig  `yaml:"daily"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

// WordsConfig selects the word source. File, when set, takes precedence
// over the embedded Source.
type WordsConfig struct {
	Source        string `yaml:"source"         env:"WORDS_SOURCE"         env-default:"wordle"`
	Letters       int    `yaml:"letters"        env:"WORDS_LETTERS"        env-default:"5"`
	TopN          int    `yaml:"top_n"          env:"WORDS_TOP_N"          env-default:"1000"`
	File          string `yaml:"file"           env:"WORDS_FILE"`
	FrequencyFile string `yaml:"frequency_file" env:"WORDS_FREQUENCY_FILE"`
}

// GameConfig holds per-round rules.
type GameConfig struct {
	MaxAttempts int `yaml:"max_attempts" env:"GAME_MAX_ATTEMPTS" env-default:"5"`
}

// SolverConfig holds guess-selection settings.
type SolverConfig struct {
	StrategyRaw string        `yaml:"strategy"     env:"SOLVER_STRATEGY"     env-default:"minev"`
	EffortRaw   string        `yaml:"effort"       env:"SOLVER_EFFORT"       env-default:"best"`
	Workers     int           `yaml:"workers"      env:"SOLVER_WORKERS"      env-default:"0"`
	TurnTimeout time.Duration `yaml:"turn_timeout" env:"SOLVER_TURN_TIMEOUT" env-default:"0s"`
	Opener      string        `yaml:"opener"       env:"SOLVER_OPENER"`

	// Strategy is parsed from StrategyRaw during validation.
	Strategy solver.Strategy `yaml:"-" env:"-"`
	// Effort is parsed from EffortRaw during validation.
	Effort solver.Effort `yaml:"-" env:"-"`
}

// DailyConfig holds the daily-puzzle salt.
type DailyConfig struct {
	Salt string `yaml:"salt" env:"DAILY_SALT" env-default:"wordsmith"`
}
