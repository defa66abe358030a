package stepdetect

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// cacheSlot holds one memoized (l, r) -> (mu, dist) answer. occupied is
// an explicit tag rather than an in-band sentinel value for l or r —
// spec.md 9 flags the source's size_t(-1) sentinel as a clarity wart
// worth fixing in a reimplementation.
type cacheSlot struct {
	l, r     int
	mu, dist float64
	occupied bool
}

// Oracle answers (mu, dist) queries over contiguous weighted subranges
// of a fixed sample (y, w), memoizing answers in a fixed-size,
// open-addressed cache. The oracle owns (y, w) for its lifetime; w is a
// normalized copy (see normalizeWeights), y is an unmodified copy.
type Oracle struct {
	y, w     []float64
	cache    []cacheSlot
	capacity int
}

// NewOracle constructs an Oracle over y and w. len(y) must equal
// len(w). Weights that are zero, negative, or NaN are replaced by the
// median of the remaining positive weights, or by 1 if none are
// positive (spec.md 3).
//
// The cache capacity is 37*N + 401, a deliberately oversized table
// tuned for the bounded-window access pattern the Potts fitter
// produces (spec.md 4.2). NewOracle fails with ErrAllocationFailure if
// that computation would overflow int, or if y and w have mismatched
// lengths.
func NewOracle(y, w []float64) (*Oracle, error) {
	if len(y) != len(w) {
		return nil, ErrAllocationFailure
	}
	n := len(y)
	if n > (math.MaxInt-401)/37 {
		return nil, ErrAllocationFailure
	}
	capacity := 37*n + 401

	yCopy := make([]float64, n)
	copy(yCopy, y)

	return &Oracle{
		y:        yCopy,
		w:        normalizeWeights(w),
		cache:    make([]cacheSlot, capacity),
		capacity: capacity,
	}, nil
}

// N reports the sample size the oracle was constructed over.
func (o *Oracle) N() int { return len(o.y) }

// GetMuDist answers (mu, dist) for the inclusive subrange y[l..=r],
// w[l..=r], serving from cache on a hit and computing + storing on a
// miss. Slots are overwritten unconditionally on collision; the cache
// is a pure memoization accelerator with no effect on correctness
// (spec.md 4.2).
func (o *Oracle) GetMuDist(l, r int) (mu, dist float64, err error) {
	n := len(o.y)
	if l < 0 || l > r || r >= n {
		return 0, 0, ErrOutOfRange
	}

	h := (r*(r+1)/2 + (r - l)) % o.capacity
	slot := &o.cache[h]
	if slot.occupied && slot.l == l && slot.r == r {
		return slot.mu, slot.dist, nil
	}

	mu, dist = weightedMedianDist(o.y[l:r+1], o.w[l:r+1])
	slot.l, slot.r = l, r
	slot.mu, slot.dist = mu, dist
	slot.occupied = true
	return mu, dist, nil
}

// normalizeWeights replaces non-positive or NaN weights with the
// median of the positive weights (or 1, if there are none).
func normalizeWeights(w []float64) []float64 {
	med := medianPositiveWeight(w)
	out := make([]float64, len(w))
	for i, wi := range w {
		if wi > 0 && !math.IsNaN(wi) {
			out[i] = wi
		} else {
			out[i] = med
		}
	}
	return out
}

// medianPositiveWeight returns the plain (unweighted) median of the
// positive entries of w, or 1 if none are positive. Unlike the
// weighted-median primitive in median.go, this value has no pinned tie
// rule, so it is delegated to gonum/stat's empirical quantile.
func medianPositiveWeight(w []float64) float64 {
	pos := make([]float64, 0, len(w))
	for _, wi := range w {
		if wi > 0 && !math.IsNaN(wi) {
			pos = append(pos, wi)
		}
	}
	if len(pos) == 0 {
		return 1
	}
	sort.Float64s(pos)
	return stat.Quantile(0.5, stat.Empirical, pos, nil)
}
