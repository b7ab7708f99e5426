package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsmith/internal/solver"
	"github.com/robalobadob/wordsmith/internal/words"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "wordsmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// inEmptyDir runs the test from a directory without .env or wordsmith.yaml.
func inEmptyDir(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

const validYAML = `
log:
  level: "debug"
  format: "json"

words:
  source: "scrabble"
  letters: 6
  top_n: 500

game:
  max_attempts: 6

solver:
  strategy: "minimax"
  effort: "fast"
  workers: 4
  turn_timeout: "2s"
  opener: "salted"

daily:
  salt: "pepper"
`

func TestLoad_ValidYAML(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), validYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, "scrabble", cfg.Words.Source)
	assert.Equal(t, 6, cfg.Words.Letters)
	assert.Equal(t, 500, cfg.Words.TopN)
	assert.Equal(t, 6, cfg.Game.MaxAttempts)
	assert.Equal(t, solver.Minimax, cfg.Solver.Strategy)
	assert.Equal(t, solver.Fast, cfg.Solver.Effort)
	assert.Equal(t, 4, cfg.Solver.Workers)
	assert.Equal(t, 2*time.Second, cfg.Solver.TurnTimeout)
	assert.Equal(t, "pepper", cfg.Daily.Salt)

	l, err := cfg.Words.Loader()
	require.NoError(t, err)
	assert.Equal(t, words.Source{Kind: words.Scrabble, Letters: 6, TopN: 500}, l)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), validYAML))
	t.Setenv("SOLVER_STRATEGY", "minlogev")
	t.Setenv("GAME_MAX_ATTEMPTS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, solver.MinLogEV, cfg.Solver.Strategy)
	assert.Equal(t, 3, cfg.Game.MaxAttempts)
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "wordle", cfg.Words.Source)
	assert.Equal(t, 5, cfg.Game.MaxAttempts)
	assert.Equal(t, solver.MinEV, cfg.Solver.Strategy)
	assert.Equal(t, solver.Best, cfg.Solver.Effort)
	assert.Zero(t, cfg.Solver.TurnTimeout)
	assert.Equal(t, "wordsmith", cfg.Daily.Salt)
}

func TestLoad_DotEnv(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DAILY_SALT", "") // make sure .env is the only source
	require.NoError(t, os.Unsetenv("DAILY_SALT"))
	require.NoError(t, os.WriteFile(".env", []byte("DAILY_SALT=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DAILY_SALT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Daily.Salt)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/wordsmith.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), `{{{invalid yaml`))

	_, err := Load()
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "console"},
		Words:  WordsConfig{Source: "wordle", Letters: 5},
		Game:   GameConfig{MaxAttempts: 5},
		Solver: SolverConfig{StrategyRaw: "minev", EffortRaw: "best"},
		Daily:  DailyConfig{Salt: "x"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"zero letters", func(c *Config) { c.Words.Letters = 0 }},
		{"too many letters", func(c *Config) { c.Words.Letters = words.MaxLength + 1 }},
		{"negative top", func(c *Config) { c.Words.TopN = -1 }},
		{"unknown source", func(c *Config) { c.Words.Source = "klingon" }},
		{"no attempts", func(c *Config) { c.Game.MaxAttempts = 0 }},
		{"bad strategy", func(c *Config) { c.Solver.StrategyRaw = "greedy" }},
		{"bad effort", func(c *Config) { c.Solver.EffortRaw = "slow" }},
		{"negative workers", func(c *Config) { c.Solver.Workers = -2 }},
		{"negative timeout", func(c *Config) { c.Solver.TurnTimeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestWordsConfig_FileLoader(t *testing.T) {
	t.Parallel()

	w := WordsConfig{Source: "klingon", Letters: 5, TopN: 10, File: "/tmp/w.txt", FrequencyFile: "/tmp/f.tsv"}
	l, err := w.Loader()
	require.NoError(t, err)
	assert.Equal(t, words.FileSource{Letters: 5, TopN: 10, WordsPath: "/tmp/w.txt", FrequencyPath: "/tmp/f.tsv"}, l)
}

func TestSolverConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Solver.Options(), 3)

	cfg.Solver.Opener = "Salted"
	assert.Len(t, cfg.Solver.Options(), 4)
	assert.NotContains(t, solver.DefaultOpeners, 6, "defaults are not mutated")
}
