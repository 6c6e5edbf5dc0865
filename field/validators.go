// SPDX-License-Identifier: MIT
// Package field: centralized validators.
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks shared by the algorithm packages (convolve, get).
//   - Return plain sentinel errors wrapped with a validator tag so call
//     sites can wrap uniformly and match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package field

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the Scalar reference is non-nil.
//
// Returns ErrNilField if f == nil.
// Complexity: O(1).
func ValidateNotNil(f *Scalar) error {
	// If the field is nil, fail with the unified sentinel.
	if f == nil {
		return validatorErrorf("ValidateNotNil", ErrNilField)
	}

	return nil
}

// ValidateSameShape ensures fields a and b have equal spatial dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Scalar) error {
	if a.Width() != b.Width() {
		return validatorErrorf("ValidateSameShape: Width", ErrDimensionMismatch)
	}
	if a.Height() != b.Height() {
		return validatorErrorf("ValidateSameShape: Height", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape — Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: combines ErrNilField and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Scalar) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateBands ensures a Multi field is non-nil and carries exactly the
// required number of bands.
//
// Errors: ErrNilField if m == nil, ErrBadBands on band-count mismatch.
// Complexity: O(1).
func ValidateBands(m *Multi, bands int) error {
	// Guard nil first to avoid dereferencing.
	if m == nil {
		return validatorErrorf("ValidateBands", ErrNilField)
	}
	// Enforce the exact band count.
	if m.Bands() != bands {
		return validatorErrorf("ValidateBands", ErrBadBands)
	}

	return nil
}

// ValidateScalarMultiShape ensures a Scalar and a Multi share spatial
// dimensions. Assumes both are non-nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateScalarMultiShape(s *Scalar, m *Multi) error {
	if s.Width() != m.Width() || s.Height() != m.Height() {
		return validatorErrorf("ValidateScalarMultiShape", ErrDimensionMismatch)
	}

	return nil
}
