package solver

import (
	"math"

	"github.com/robalobadob/wordsmith/internal/game"
	"github.com/robalobadob/wordsmith/internal/words"
)

// denseLimit is the longest word whose feedback codes (3^n) are counted in
// a flat slice instead of a map.
const denseLimit = 8

// Score partitions active by the feedback each member produces against guess
// and scores the partition under strategy. Lower is better.
func Score(guess words.Word, strategy Strategy, active []words.Word) float64 {
	return newPartition(guess.Len()).score(guess, strategy, active)
}

// partition counts feedback classes. It is reused across guesses by one
// goroutine and is not safe for concurrent use.
type partition struct {
	dense   []int32
	sparse  map[uint32]int32
	touched []uint32
}

func newPartition(letters int) *partition {
	p := &partition{}
	if letters <= denseLimit {
		size := 1
		for i := 0; i < letters; i++ {
			size *= 3
		}
		p.dense = make([]int32, size)
	} else {
		p.sparse = make(map[uint32]int32)
	}
	return p
}

func (p *partition) add(code uint32) {
	if p.dense != nil {
		if p.dense[code] == 0 {
			p.touched = append(p.touched, code)
		}
		p.dense[code]++
		return
	}
	if p.sparse[code] == 0 {
		p.touched = append(p.touched, code)
	}
	p.sparse[code]++
}

func (p *partition) take(code uint32) int32 {
	if p.dense != nil {
		n := p.dense[code]
		p.dense[code] = 0
		return n
	}
	n := p.sparse[code]
	delete(p.sparse, code)
	return n
}

func (p *partition) score(guess words.Word, strategy Strategy, active []words.Word) float64 {
	for _, s := range active {
		p.add(game.Check(guess, s).Feedback.Code())
	}

	var total float64
	for _, code := range p.touched {
		n := float64(p.take(code))
		switch strategy {
		case MinLogEV:
			total += n * math.Log2(n)
		case Minimax:
			total = math.Max(total, n)
		default:
			total += n * n
		}
	}
	p.touched = p.touched[:0]
	return total
}
