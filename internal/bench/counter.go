package bench

import (
	"sort"

	"github.com/samber/lo"
)

// Counter is a histogram of small non-negative integers.
type Counter struct {
	m map[int]int
}

// Bucket is one histogram row.
type Bucket struct {
	Value int
	Count int
}

// Add records one observation of v.
func (c *Counter) Add(v int) {
	if c.m == nil {
		c.m = make(map[int]int)
	}
	c.m[v]++
}

// Get returns how often v was observed.
func (c *Counter) Get(v int) int { return c.m[v] }

// Count is the number of observations.
func (c *Counter) Count() int {
	return lo.Sum(lo.Values(c.m))
}

// Sum is the total of all observed values.
func (c *Counter) Sum() int {
	total := 0
	for v, n := range c.m {
		total += v * n
	}
	return total
}

// Max is the largest observed value, or 0 when empty.
func (c *Counter) Max() int {
	if len(c.m) == 0 {
		return 0
	}
	return lo.Max(lo.Keys(c.m))
}

// Buckets returns the rows in ascending value order.
func (c *Counter) Buckets() []Bucket {
	out := lo.MapToSlice(c.m, func(v, n int) Bucket { return Bucket{Value: v, Count: n} })
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
