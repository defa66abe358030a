package stepdetect

import "math"

// maxGammaLadderDepth bounds the recursive bisection in
// collectGammaLadder. It is a termination bound on the continuous
// search, not a heuristic: two runs on identical input still walk an
// identical bracket tree (the split point is always the plain
// arithmetic mean), so this does not affect determinism.
const maxGammaLadderDepth = 64

// SolvePottsAutoGamma brackets gamma to minimize a BIC-style score
// (spec.md 4.4):
//
//	score(gamma) = r(N)*k + ln(sigma0 + S_ar/N)
//
// where r(N) = Beta * ln(N) / N, k is the segment count at that gamma,
// S_ar is the AR(1)-adjusted residual (ar1.go), and sigma0 is a
// noise-floor regularizer that prevents the degenerate k=N,
// zero-residual overfit from producing ln(0) = -Inf.
//
// The search is a monotone-k sweep: a depth-bounded bisection brackets
// a ladder of gamma values, each yielding a distinct segment count in
// {1, ..., KMax}, and the segmentation with the lowest score wins
// (ties broken toward the smaller k). Opts must already be resolved
// against N (see Options.resolved); SolvePottsAutoGamma does not
// re-derive MinSize/MaxSize/KMax/Beta defaults.
func SolvePottsAutoGamma(oracle *Oracle, opts Options) (Segmentation, error) {
	n := oracle.N()
	minSize, maxSize, kMax, beta := opts.MinSize, opts.MaxSize, opts.KMax, opts.Beta

	loSeg, err := SolvePotts(oracle, 0, minSize, maxSize, 0, n)
	if err != nil {
		return Segmentation{}, err
	}

	_, totalDist, err := oracle.GetMuDist(0, n-1)
	if err != nil {
		return Segmentation{}, err
	}
	hiGamma := 2*totalDist + 1
	hiSeg, err := SolvePotts(oracle, hiGamma, minSize, maxSize, 0, n)
	if err != nil {
		return Segmentation{}, err
	}

	results := map[int]Segmentation{
		len(loSeg.RightEdges): loSeg,
		len(hiSeg.RightEdges): hiSeg,
	}
	if err := collectGammaLadder(oracle, minSize, maxSize, n, 0, hiGamma, loSeg, hiSeg, maxGammaLadderDepth, results); err != nil {
		return Segmentation{}, err
	}

	wMed := medianPositiveWeight(oracle.w)
	rN := beta * math.Log(float64(n)) / float64(n)

	// fallback tracks the smallest-k candidate seen, in case every
	// candidate is disqualified below (see the logArg<=0 comment).
	var fallback Segmentation
	fallbackK := math.MaxInt

	var best Segmentation
	bestScore := math.Inf(1)
	bestK := math.MaxInt
	haveValid := false

	for k, seg := range results {
		if k < 1 || k > kMax {
			continue
		}
		if k < fallbackK {
			fallback, fallbackK = seg, k
		}

		_, sAR := fitAR1(oracle, seg)
		sigma0 := noiseFloor(seg.Levels, wMed)
		logArg := sigma0 + sAR/float64(n)

		// logArg == 0 only when both the AR(1) residual and the
		// noise floor vanish: a perfect, zero-variation fit whose
		// own level differences happen to be exactly zero (e.g. a
		// flat or piecewise-flat input with an overfit candidate
		// k). ln(0) diverges to -Inf, which would make this
		// candidate win every time by construction rather than on
		// merit — exactly the degenerate overfit spec.md 4.4 warns
		// about. Disqualify it instead of scoring it.
		if logArg <= 0 {
			continue
		}

		score := rN*float64(k) + math.Log(logArg)
		if score < bestScore || (score == bestScore && k < bestK) {
			best, bestScore, bestK = seg, score, k
			haveValid = true
		}
	}

	if !haveValid {
		return fallback, nil
	}
	return best, nil
}

// collectGammaLadder recursively bisects [loG, hiG] (whose endpoints
// yield loSeg and hiSeg) until every pair of adjacent segment counts
// differ by at most one or the depth budget is spent, recording every
// distinct segment count it observes in results. k(gamma) is monotone
// non-increasing in gamma (spec.md 4.3), so this converges to a
// complete ladder of distinct k values in a small number of probes.
func collectGammaLadder(oracle *Oracle, minSize, maxSize, n int, loG, hiG float64, loSeg, hiSeg Segmentation, depth int, results map[int]Segmentation) error {
	loK := len(loSeg.RightEdges)
	hiK := len(hiSeg.RightEdges)
	if loK-hiK <= 1 || depth <= 0 {
		return nil
	}

	midG := (loG + hiG) / 2
	midSeg, err := SolvePotts(oracle, midG, minSize, maxSize, 0, n)
	if err != nil {
		return err
	}
	midK := len(midSeg.RightEdges)
	if _, ok := results[midK]; !ok {
		results[midK] = midSeg
	}

	switch {
	case midK == loK:
		return collectGammaLadder(oracle, minSize, maxSize, n, midG, hiG, midSeg, hiSeg, depth-1, results)
	case midK == hiK:
		return collectGammaLadder(oracle, minSize, maxSize, n, loG, midG, loSeg, midSeg, depth-1, results)
	default:
		if err := collectGammaLadder(oracle, minSize, maxSize, n, loG, midG, loSeg, midSeg, depth-1, results); err != nil {
			return err
		}
		return collectGammaLadder(oracle, minSize, maxSize, n, midG, hiG, midSeg, hiSeg, depth-1, results)
	}
}

// noiseFloor computes sigma0 (spec.md 4.4): 0.1*wMed*(smallest
// consecutive level gap) for k>=2 segments, or 0.001*wMed*|levels[0]|
// for a single segment.
func noiseFloor(levels []float64, wMed float64) float64 {
	k := len(levels)
	switch {
	case k >= 2:
		minDiff := math.Inf(1)
		for i := 1; i < k; i++ {
			d := math.Abs(levels[i] - levels[i-1])
			if d < minDiff {
				minDiff = d
			}
		}
		return 0.1 * wMed * minDiff
	case k == 1:
		return 0.001 * wMed * math.Abs(levels[0])
	default:
		return 0
	}
}
