// SPDX-License-Identifier: MIT
// Package field: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the field
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package field

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "field: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when requested field dimensions are invalid
	// (width <= 0 or height <= 0). Constructors must validate before
	// allocation.
	ErrBadShape = errors.New("field: dimensions must be > 0")

	// ErrBadBands is returned when a requested band count is < 1 or a band
	// index is outside [0, Bands).
	ErrBadBands = errors.New("field: invalid band count or band index")

	// ErrOutOfRange indicates that a pixel coordinate is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("field: coordinate out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub over fields of different width or height.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrNilField indicates that a nil field (receiver or argument) was used.
	ErrNilField = errors.New("field: nil field")
)
