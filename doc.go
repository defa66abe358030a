// Package stepdetect (module github.com/katalvlaran/stepdetect) is a
// deterministic step-detection engine for continuous-benchmarking
// histories: feed it a weighted series of measurements indexed by
// revision and it recovers a piecewise-constant fit plus the
// transitions that constitute performance regressions.
//
// 🚀 What is stepdetect?
//
//	A small, dependency-light numerics library built around six
//	tightly-coupled pieces:
//
//	  • A weighted-median/L¹-deviation primitive with a pinned tie rule
//	  • A memoizing range-median oracle over contiguous subsequences
//	  • An exact Potts (piecewise-constant, L¹) dynamic-program fitter
//	  • A BIC-driven automatic search over the fitter's penalty term
//	  • A golden-section AR(1) residual estimator
//	  • A threshold-and-direction regression classifier
//
// ✨ Why choose stepdetect?
//
//   - Deterministic — no randomness, no wall-clock dependence, fixed
//     floating-point summation order; the same input always produces
//     the same segmentation on any platform.
//   - Robust to noisy samples — weights absorb per-point confidence,
//     and the fitter is never told how many steps to expect.
//   - Pure computation — no I/O, no serialization, no CLI; it is a
//     library to be embedded in a benchmark runner, not a runner
//     itself.
//
// Everything lives in one package, stepdetect/, the way a single
// tightly-coupled algorithm family is organized in this codebase:
//
//	stepdetect/ — median, oracle, fitter, gamma search, AR(1), classifier
//
// See stepdetect/doc.go for the package-level walkthrough and
// ExampleDetect in stepdetect/example_test.go for a runnable demo.
//
//	go get github.com/katalvlaran/stepdetect
package stepdetect
