// Package stepdetect: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All exported
// functions MUST return these sentinels (never a bare panic) on
// caller-triggered conditions, and tests MUST check them via errors.Is.

package stepdetect

import "errors"

var (
	// ErrOutOfRange is returned by the oracle when a query violates
	// 0 <= l <= r < N.
	ErrOutOfRange = errors.New("stepdetect: query indices out of range")

	// ErrInvalidBounds is returned by the fitter when 0 < min_size <=
	// max_size or the positional bounds 0 <= min_pos <= max_pos <= N
	// do not hold.
	ErrInvalidBounds = errors.New("stepdetect: invalid segment-length or positional bounds")

	// ErrAllocationFailure is returned by oracle construction when the
	// cache capacity computation (37*N + 401) overflows int, or when
	// y and w have mismatched lengths and no sensible cache can be
	// built.
	ErrAllocationFailure = errors.New("stepdetect: oracle cache allocation failed")

	// ErrInvalidThreshold is returned by Options.Validate when
	// Threshold is negative.
	ErrInvalidThreshold = errors.New("stepdetect: threshold must be non-negative")

	// ErrInvalidDirection is returned by Options.Validate for an
	// unrecognized Direction value.
	ErrInvalidDirection = errors.New("stepdetect: unrecognized direction")

	// ErrInvalidBeta is returned by Options.Validate when Beta is
	// negative.
	ErrInvalidBeta = errors.New("stepdetect: beta must be non-negative")
)
