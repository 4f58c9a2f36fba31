// Package random wraps a seeded math/rand source with the distribution
// helpers the generators draw from. Every sketch owns one *Rand, so a seed
// fully determines its output.
package random

import (
	"math"
	"math/rand"
)

type Rand struct {
	r    *rand.Rand
	seed int64
}

func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed)), seed: seed}
}

func (r *Rand) Seed() int64 { return r.seed }

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 { return r.r.Float64() }

func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// IntRange returns an int in [lo, hi). It returns lo when the range is empty.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo)
}

func (r *Rand) Normal(mu, sigma float64) float64 {
	return mu + sigma*r.r.NormFloat64()
}

// LogNormal draws exp(N(mu, sigma)).
func (r *Rand) LogNormal(mu, sigma float64) float64 {
	return math.Exp(r.Normal(mu, sigma))
}

// Exponential draws from an exponential distribution with the given mean.
func (r *Rand) Exponential(scale float64) float64 {
	return scale * r.r.ExpFloat64()
}

// Triangular draws from the triangular distribution on [lo, hi] peaking at
// mode. A reversed range is swapped and mode is clamped into it.
func (r *Rand) Triangular(lo, mode, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	mode = math.Max(lo, math.Min(mode, hi))
	if hi == lo {
		return lo
	}

	u := r.r.Float64()
	c := (mode - lo) / (hi - lo)
	if u < c {
		return lo + math.Sqrt(u*(hi-lo)*(mode-lo))
	}
	return hi - math.Sqrt((1-u)*(hi-lo)*(hi-mode))
}

// Choice returns a random index into a collection of n items.
func (r *Rand) Choice(n int) int {
	return r.IntRange(0, n)
}

// Sample returns k distinct indices out of n. k is capped at n; k or n below
// one yields an empty sample.
func (r *Rand) Sample(n, k int) []int {
	if n <= 0 || k <= 0 {
		return []int{}
	}
	if k > n {
		k = n
	}
	return r.r.Perm(n)[:k]
}

func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Pick returns a random element of items, or the zero value when items is
// empty.
func Pick[T any](r *Rand, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[r.Choice(len(items))]
}
