package stepdetect

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// weightedMedianDist computes (mu, dist) for a contiguous weighted
// sample: mu is the weighted median of values, dist is the weighted L1
// deviation Sum(w_i * |values_i - mu|).
//
// Algorithm (spec.md 4.1): copy and sort by value ascending (ties keep
// their original relative order via a stable sort), walk the sorted
// copy accumulating weight until the running sum first reaches half the
// total weight. Tie rule: if the running sum lands exactly on half and
// a next element exists, mu is the mean of the two straddling values;
// otherwise mu is the element that tipped the sum over half.
//
// dist is computed in a second pass over the original (unsorted) slice,
// preserving caller order — the sum's value does not depend on order,
// but pinning the order keeps every invocation bitwise identical.
func weightedMedianDist(values, weights []float64) (mu, dist float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return values[0], 0
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	total := floats.Sum(weights)
	half := total / 2

	mu = values[order[n-1]]
	var wSum float64
	for idx, i := range order {
		wSum += weights[i]
		if wSum >= half {
			if wSum == half && idx+1 < n {
				mu = (values[i] + values[order[idx+1]]) / 2
			} else {
				mu = values[i]
			}
			break
		}
	}

	for i := 0; i < n; i++ {
		d := values[i] - mu
		if d < 0 {
			d = -d
		}
		dist += weights[i] * d
	}
	return mu, dist
}
