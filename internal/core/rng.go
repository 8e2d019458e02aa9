package core

// Rand is the subset of *math/rand.Rand the spawner and engine draw from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// RandRange returns a uniform integer in [lo, hi], inclusive on both ends.
// A degenerate range returns lo.
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance returns true with probability p.
func Chance(r Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// WeightedIndex picks an index with probability proportional to its weight.
// Non-positive weights are never picked; if every weight is non-positive it
// returns 0.
func WeightedIndex(r Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	roll := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
