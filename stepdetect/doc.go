// Package stepdetect reconstructs a piecewise-constant signal from a
// noisy weighted sequence of benchmark measurements indexed by revision,
// and reports which step changes constitute performance regressions.
//
// # What & Why
//
// Benchmark results are noisy: the same code, measured twice, rarely
// produces the same number. Plotting raw values makes genuine
// performance steps indistinguishable from run-to-run jitter. This
// package fits the noisy series with a piecewise-constant L¹ (Potts)
// model — a small number of flat segments separated by jumps — and
// classifies the jumps that are both large enough and persistent
// enough to be real regressions rather than noise.
//
// # Pipeline
//
//	Oracle            -- memoizes (mu, dist) for any weighted subrange
//	SolvePotts         -- for a fixed gamma, the optimal segmentation
//	SolvePottsAutoGamma -- brackets gamma against a BIC-style score
//	ClassifyRegressions -- walks the final segmentation for regressions
//	Detect              -- wires the above together end to end
//
// # Determinism
//
// Given identical inputs, Detect is bitwise-reproducible across runs:
// every floating-point sum that participates in a tie-break decision is
// accumulated in a fixed, documented order (see fit.go and median.go),
// and the gamma search is a pure function of N and the input weights
// and values — no randomness, no wall-clock, no process state.
//
// # Usage
//
//	opts := stepdetect.DefaultOptions()
//	opts.Threshold = 0.05
//	seg, regressions, err := stepdetect.Detect(y, w, opts)
//
// See ExampleDetect in example_test.go for a complete, runnable
// walkthrough.
package stepdetect
