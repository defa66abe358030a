package stepdetect

import "math"

// invPhi is 1/golden-ratio, the standard reduction factor for
// golden-section search.
const invPhi = 0.6180339887498949

// fitAR1 estimates rho in (-0.99, 0.99) minimizing the L1 AR(1)
// residual Sum(w_i * |eps_i - rho*eps_{i-1}|), with the convention
// eps_{-1} = 0 and residuals continuous across segment boundaries
// (spec.md 4.5). It returns rho and the minimized residual sum, which
// feeds the BIC score in autogamma.go as S_ar.
//
// If N < 4, the fit is skipped: rho = 0 and S_ar equals the plain
// (rho=0) residual sum, which is exactly the segmentation's total L1
// dist.
func fitAR1(oracle *Oracle, seg Segmentation) (rho, sAR float64) {
	eps := epsilonSeries(oracle.y, seg)

	if oracle.N() < 4 {
		return 0, ar1Objective(oracle.w, eps, 0)
	}

	rho = goldenSectionMinimize(func(r float64) float64 {
		return ar1Objective(oracle.w, eps, r)
	}, -0.99, 0.99, 1e-4)
	sAR = ar1Objective(oracle.w, eps, rho)
	return rho, sAR
}

// epsilonSeries builds the residual series eps_i = y_i - mu(segment(i))
// for every index in [0, N), using the segment boundaries and levels of
// seg.
func epsilonSeries(y []float64, seg Segmentation) []float64 {
	eps := make([]float64, len(y))
	segStart := 0
	for s, edge := range seg.RightEdges {
		mu := seg.Levels[s]
		for i := segStart; i < edge; i++ {
			eps[i] = y[i] - mu
		}
		segStart = edge
	}
	return eps
}

// ar1Objective evaluates Sum(w_i * |eps_i - rho*eps_{i-1}|) with
// eps_{-1} = 0, walking left to right to keep the sum's order fixed.
func ar1Objective(w, eps []float64, rho float64) float64 {
	var sum, prev float64
	for i, e := range eps {
		sum += w[i] * math.Abs(e-rho*prev)
		prev = e
	}
	return sum
}

// goldenSectionMinimize finds the rho in [lo, hi] minimizing f, to
// within tol, assuming f is unimodal on that interval. Derivative-free
// and platform-stable by construction (spec.md 9): no gradient, no
// random restarts, same number of iterations for the same (lo, hi,
// tol) on every platform.
func goldenSectionMinimize(f func(float64) float64, lo, hi, tol float64) float64 {
	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc := f(c)
	fd := f(d)

	for (b - a) > tol {
		if fc < fd {
			b = d
			d = c
			fd = fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a = c
			c = d
			fc = fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	return (a + b) / 2
}
