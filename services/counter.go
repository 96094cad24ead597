// services/counter.go
package services

import "github.com/gewnthar/bikeshare/models"

// counter tallies values and remembers first-seen order so ties resolve
// deterministically.
type counter[T comparable] struct {
	counts map[T]int
	order  []T
}

func newCounter[T comparable]() *counter[T] {
	return &counter[T]{counts: make(map[T]int)}
}

func (c *counter[T]) add(v T) {
	if _, seen := c.counts[v]; !seen {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

// most returns the highest count; ties go to the value seen first.
func (c *counter[T]) most() models.ModeCount[T] {
	return c.mostIn(c.order)
}

// mostIn returns the highest count among candidates, ties going to the
// earliest candidate. Candidates with a zero count are ignored.
func (c *counter[T]) mostIn(candidates []T) models.ModeCount[T] {
	var best models.ModeCount[T]
	for _, v := range candidates {
		n := c.counts[v]
		if n > 0 && n > best.Count {
			best = models.ModeCount[T]{Value: v, Count: n, OK: true}
		}
	}
	return best
}

// leastIn returns the lowest non-zero count among candidates, ties going to
// the earliest candidate.
func (c *counter[T]) leastIn(candidates []T) models.ModeCount[T] {
	var best models.ModeCount[T]
	for _, v := range candidates {
		n := c.counts[v]
		if n > 0 && (!best.OK || n < best.Count) {
			best = models.ModeCount[T]{Value: v, Count: n, OK: true}
		}
	}
	return best
}
