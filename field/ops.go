// SPDX-License-Identifier: MIT
// Package field: element-wise operations over same-shaped Scalar fields.
//
// Purpose:
//   - Provide the point-wise combination primitives consumed by filter
//     cascades (Add is the laplace = gxx + gyy step of the GET operator).
//   - Keep all loops deterministic and cache-friendly over the flat
//     row-major buffers; no hidden allocations beyond the output field.

package field

// Add returns the element-wise sum a + b as a fresh Scalar field.
// Stage 1 (Validate): both fields non-nil and same shape.
// Stage 2 (Execute): single pass over the flat row-major buffers.
// Determinism: fixed flat 0..n-1 loop order.
// Complexity: O(w*h) time and space.
func Add(a, b *Scalar) (*Scalar, error) {
	// Validate presence and shape via the centralized composite validator.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, err
	}
	// Allocate the output field (same shape as inputs).
	out, err := NewScalar(a.Width(), a.Height())
	if err != nil {
		return nil, err
	}

	// Single flat pass: one read per operand, one write per sample.
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := range od {
		od[i] = ad[i] + bd[i]
	}

	return out, nil
}

// Sub returns the element-wise difference a - b as a fresh Scalar field.
// Validation and loop structure mirror Add.
// Complexity: O(w*h) time and space.
func Sub(a, b *Scalar) (*Scalar, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, err
	}
	out, err := NewScalar(a.Width(), a.Height())
	if err != nil {
		return nil, err
	}

	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := range od {
		od[i] = ad[i] - bd[i]
	}

	return out, nil
}

// Scale returns a fresh Scalar with every sample of f multiplied by k.
// Complexity: O(w*h) time and space.
func Scale(f *Scalar, k float64) (*Scalar, error) {
	// Validate presence (shape is inherited from the input).
	if err := ValidateNotNil(f); err != nil {
		return nil, err
	}
	out, err := NewScalar(f.Width(), f.Height())
	if err != nil {
		return nil, err
	}

	fd, od := f.Data(), out.Data()
	for i := range od {
		od[i] = fd[i] * k
	}

	return out, nil
}
