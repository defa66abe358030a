package stepdetect

import "math"

// SolvePotts computes, for a fixed penalty gamma, the optimal partition
// of [minPos, maxPos) into contiguous segments whose lengths lie in
// [minSize, maxSize], minimizing
//
//	Sum(dist(segment)) + gamma * (number_of_segments - 1)
//
// where dist comes from oracle. Larger gamma favors fewer segments.
//
// Preconditions: 0 < minSize <= maxSize, 0 <= minPos <= maxPos <= N
// (N is oracle.N()); SolvePotts returns ErrInvalidBounds otherwise.
//
// Algorithm (spec.md 4.3): a forward dynamic program over right
// endpoints. B[t] is the best cost of optimally segmenting
// [minPos, minPos+t), P[t-1] is the last index of that optimal
// solution's penultimate boundary (i.e. left-1 for the winning
// candidate left). B[0] = -gamma so the first segment's +gamma exactly
// cancels, leaving zero overhead for a single-segment (k=1) fit.
//
// The update uses a non-strict <=, so among equally scoring partitions
// the latest-considered (i.e. rightmost) candidate left wins. This is
// deliberate (spec.md 4.3) and is exercised by tests pinning specific
// tie-break outcomes — do not change it to strict '<'.
//
// Complexity: O(M*maxSize) oracle queries, each O(1) amortized via the
// oracle's cache across repeated gamma evaluations.
func SolvePotts(oracle *Oracle, gamma float64, minSize, maxSize, minPos, maxPos int) (Segmentation, error) {
	n := oracle.N()
	if minSize <= 0 || minSize > maxSize {
		return Segmentation{}, ErrInvalidBounds
	}
	if minPos < 0 || minPos > maxPos || maxPos > n {
		return Segmentation{}, ErrInvalidBounds
	}

	m := maxPos - minPos
	B := make([]float64, m+1)
	P := make([]int, m)
	B[0] = -gamma
	for t := 1; t <= m; t++ {
		B[t] = math.Inf(1)
	}

	for t := 1; t <= m; t++ {
		r := minPos + t - 1

		lo := r + 1 - maxSize
		if lo < minPos {
			lo = minPos
		}
		hi := r + 1 - minSize + 1
		if hi < minPos {
			hi = minPos
		}

		for left := lo; left < hi; left++ {
			_, d, err := oracle.GetMuDist(left, r)
			if err != nil {
				return Segmentation{}, err
			}
			b := B[left-minPos] + gamma + d
			if b <= B[t] {
				B[t] = b
				P[t-1] = left - 1
			}
		}
	}

	return reconstructSegmentation(oracle, P, minPos, maxPos)
}

// reconstructSegmentation walks the predecessor array P backward from
// the final right endpoint, collecting segment boundaries and levels,
// then reverses the result into ascending order.
func reconstructSegmentation(oracle *Oracle, P []int, minPos, maxPos int) (Segmentation, error) {
	m := maxPos - minPos
	var rightEdges []int
	var levels []float64

	t := m
	for t > 0 {
		leftMinus1 := P[t-1]
		segLeft := leftMinus1 + 1
		r := minPos + t - 1

		mu, _, err := oracle.GetMuDist(segLeft, r)
		if err != nil {
			return Segmentation{}, err
		}

		rightEdges = append(rightEdges, r+1)
		levels = append(levels, mu)

		t = segLeft - minPos
	}

	for l, rr := 0, len(rightEdges)-1; l < rr; l, rr = l+1, rr-1 {
		rightEdges[l], rightEdges[rr] = rightEdges[rr], rightEdges[l]
		levels[l], levels[rr] = levels[rr], levels[l]
	}

	return Segmentation{RightEdges: rightEdges, Levels: levels}, nil
}
