package stepdetect

// Detect is the engine's single entry point. It wires the oracle (C2),
// the autogamma driver (C4, which in turn drives the Potts fitter C3
// and the AR(1) estimator C5), and the regression classifier (C6) into
// one call: given a filtered, weighted sample (y, w) it returns the
// best-fit segmentation and the regressions found in it.
//
// The caller is responsible for the filter stage described in
// spec.md 6: dropping null/NaN entries and deriving w from a
// confidence interval before calling Detect. Detect itself only
// normalizes zero/undefined weights within the oracle (spec.md 3); it
// performs no other I/O and never mutates y or w.
//
// Preconditions: len(y) == len(w); opts must satisfy Options.Validate.
// Degenerate but valid inputs (N=0, N=1, all-equal values, all-zero
// weights) produce a trivial result, never an error (spec.md 7):
//
//	N == 0: empty segmentation, no regressions.
//	N == 1: a single segment covering the only sample.
func Detect(y, w []float64, opts Options) (Segmentation, []Regression, error) {
	if err := opts.Validate(); err != nil {
		return Segmentation{}, nil, err
	}
	if len(y) != len(w) {
		return Segmentation{}, nil, ErrAllocationFailure
	}

	n := len(y)
	if n == 0 {
		return Segmentation{}, nil, nil
	}

	resolved := opts.resolved(n)
	if resolved.MinSize <= 0 || resolved.MinSize > resolved.MaxSize || resolved.MaxSize > n {
		return Segmentation{}, nil, ErrInvalidBounds
	}

	oracle, err := NewOracle(y, w)
	if err != nil {
		return Segmentation{}, nil, err
	}

	seg, err := SolvePottsAutoGamma(oracle, resolved)
	if err != nil {
		return Segmentation{}, nil, err
	}

	regressions := ClassifyRegressions(seg, resolved.Threshold, resolved.Direction)
	return seg, regressions, nil
}
