// internal/solver/candidates.go
//
// Candidate filter.
//
//   - Filter:     pure form over a slice, in-place retention.
//   - Candidates: the live set of a solver session, a bitset over
//     WordList.Solutions() indices.
//
// A candidate s survives a GuessResult r iff Check(r.Guess, s) == r.

package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordsmith/internal/game"
	"github.com/robalobadob/wordsmith/internal/words"
)

// Consistent reports whether s could be the solution given result.
func Consistent(result game.GuessResult, s words.Word) bool {
	return game.Check(result.Guess, s) == result
}

// Filter keeps the members of pool consistent with result, reusing pool's
// backing array. Relative order is preserved.
func Filter(result game.GuessResult, pool []words.Word) []words.Word {
	out := pool[:0]
	for _, s := range pool {
		if Consistent(result, s) {
			out = append(out, s)
		}
	}
	return out
}

// Candidates is the set of solutions still possible in one round.
type Candidates struct {
	wl  *words.WordList
	set *bitset.BitSet
}

// NewCandidates starts with every solution of wl.
func NewCandidates(wl *words.WordList) *Candidates {
	c := &Candidates{wl: wl}
	c.Reset()
	return c
}

// Reset restores the full solution pool.
func (c *Candidates) Reset() {
	n := uint(len(c.wl.Solutions()))
	c.set = bitset.New(n)
	for i := uint(0); i < n; i++ {
		c.set.Set(i)
	}
}

// Len is the number of remaining candidates.
func (c *Candidates) Len() int { return int(c.set.Count()) }

// Contains reports whether w is still a candidate.
func (c *Candidates) Contains(w words.Word) bool {
	i, ok := c.wl.SolutionIndex(w)
	return ok && c.set.Test(uint(i))
}

// Words lists the remaining candidates in solution order.
func (c *Candidates) Words() []words.Word {
	sols := c.wl.Solutions()
	out := make([]words.Word, 0, c.Len())
	for i, ok := c.set.NextSet(0); ok; i, ok = c.set.NextSet(i + 1) {
		out = append(out, sols[i])
	}
	return out
}

// Filter drops candidates inconsistent with result and returns how many
// were removed. result.Guess must have the word list's letter count.
func (c *Candidates) Filter(result game.GuessResult) int {
	sols := c.wl.Solutions()
	removed := 0
	for i, ok := c.set.NextSet(0); ok; i, ok = c.set.NextSet(i + 1) {
		if !Consistent(result, sols[i]) {
			c.set.Clear(i)
			removed++
		}
	}
	return removed
}

// Clone returns an independent copy.
func (c *Candidates) Clone() *Candidates {
	return &Candidates{wl: c.wl, set: c.set.Clone()}
}
