// internal/solver/strategy.go
//
// Closed enums controlling guess selection.
//
//   - Strategy: how a partition of the candidates is scored (lower is better).
//   - Effort:   how early the scan may stop once a guess is good enough.
//
// Both are parsed once at the edge (flags/config) and passed as values.

package solver

import (
	"fmt"
	"math"
	"strings"
)

// Strategy selects the partition score.
type Strategy int

const (
	// MinEV minimises the expected number of remaining candidates: Σ n_k².
	MinEV Strategy = iota
	// MinLogEV minimises expected remaining uncertainty: Σ n_k·log2(n_k).
	MinLogEV
	// Minimax minimises the largest class: max n_k.
	Minimax
)

// ParseStrategy accepts the names printed by String plus a few aliases.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "minev", "ev":
		return MinEV, nil
	case "minlogev", "logev", "entropy":
		return MinLogEV, nil
	case "minimax", "max":
		return Minimax, nil
	default:
		return 0, fmt.Errorf("solver: unknown strategy %q", s)
	}
}

func (s Strategy) String() string {
	switch s {
	case MinEV:
		return "minev"
	case MinLogEV:
		return "minlogev"
	case Minimax:
		return "minimax"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ExpectedRemaining converts a score over n candidates back into an
// approximate number of candidates left after the guess.
func (s Strategy) ExpectedRemaining(score float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	switch s {
	case MinLogEV:
		return math.Exp2(score / float64(n))
	case Minimax:
		return score
	default:
		return score / float64(n)
	}
}

// Effort trades accuracy for speed.
type Effort int

const (
	Best Effort = iota
	Good
	Fast
)

// ParseEffort accepts "best", "good" or "fast".
func ParseEffort(s string) (Effort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best":
		return Best, nil
	case "good":
		return Good, nil
	case "fast":
		return Fast, nil
	default:
		return 0, fmt.Errorf("solver: unknown effort %q", s)
	}
}

func (e Effort) String() string {
	switch e {
	case Best:
		return "best"
	case Good:
		return "good"
	case Fast:
		return "fast"
	default:
		return fmt.Sprintf("Effort(%d)", int(e))
	}
}

// Threshold is the fraction of the candidate count at or below which the
// expected remaining count is good enough to stop scanning. Best never stops.
func (e Effort) Threshold() float64 {
	switch e {
	case Good:
		return 0.125
	case Fast:
		return 0.25
	default:
		return 0
	}
}
