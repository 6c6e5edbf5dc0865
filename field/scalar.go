// Package field: Scalar is a concrete, row-major dense 2-D float64 field,
// storing samples in a flat slice for performance and cache friendliness.
package field

import (
	"fmt"
	"strings"
)

// scalarErrorf wraps an underlying error with Scalar method context.
func scalarErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Scalar.%s(%d,%d): %w", method, x, y, err)
}

// Scalar is a row-major W×H field of float64 samples.
// w is width (columns), h is height (rows), and data holds w*h samples in
// row-major order: sample (x, y) lives at data[y*w+x].
type Scalar struct {
	w, h int       // spatial dimensions
	data []float64 // flat backing storage, length == w*h
}

// NewScalar creates a w×h Scalar field initialized to zeros.
// Stage 1 (Validate): ensure width and height > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Scalar or ErrBadShape.
// Complexity: O(w*h) time and memory.
func NewScalar(width, height int) (*Scalar, error) {
	// Validate dimensions
	if width <= 0 || height <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, width*height)

	// Return initialized Scalar
	return &Scalar{w: width, h: height, data: data}, nil
}

// ScalarFromSlice creates a w×h Scalar backed by a copy of data.
// The slice length must equal width*height (row-major order).
// Complexity: O(w*h) time and memory.
func ScalarFromSlice(width, height int, data []float64) (*Scalar, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != width*height {
		return nil, ErrDimensionMismatch
	}
	// Copy to keep the new field independent of the caller's slice.
	backing := make([]float64, len(data))
	copy(backing, data)

	return &Scalar{w: width, h: height, data: backing}, nil
}

// Width returns the number of columns in the field.
// Complexity: O(1).
func (f *Scalar) Width() int {
	return f.w // return stored width
}

// Height returns the number of rows in the field.
// Complexity: O(1).
func (f *Scalar) Height() int {
	return f.h // return stored height
}

// indexOf computes the flat index for (x, y) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ x < w and 0 ≤ y < h.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (f *Scalar) indexOf(method string, x, y int) (int, error) {
	// Validate column index
	if x < 0 || x >= f.w {
		return 0, scalarErrorf(method, x, y, ErrOutOfRange)
	}
	// Validate row index
	if y < 0 || y >= f.h {
		return 0, scalarErrorf(method, x, y, ErrOutOfRange)
	}

	// Compute flat offset
	return y*f.w + x, nil
}

// At retrieves the sample at (x, y).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (f *Scalar) At(x, y int) (float64, error) {
	// Compute flat index or error
	idx, err := f.indexOf("At", x, y)
	if err != nil {
		return 0, err
	}

	// Return stored sample
	return f.data[idx], nil
}

// Set assigns value v at (x, y).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (f *Scalar) Set(x, y int, v float64) error {
	// Compute flat index or error
	idx, err := f.indexOf("Set", x, y)
	if err != nil {
		return err
	}
	// Assign value
	f.data[idx] = v

	return nil
}

// Data returns the live flat backing slice in row-major order.
// The slice has length Width()*Height(); sample (x, y) is Data()[y*W+x].
// Mutating the slice mutates the field — this is the documented fast path
// for tight per-pixel loops (convolution, tensor assembly).
// Complexity: O(1).
func (f *Scalar) Data() []float64 {
	return f.data
}

// Clone returns a deep copy of the Scalar field.
// Complexity: O(w*h) time and memory.
func (f *Scalar) Clone() *Scalar {
	// Allocate new slice for data copy
	copyData := make([]float64, len(f.data))
	// Copy all samples into new slice
	copy(copyData, f.data)

	return &Scalar{w: f.w, h: f.h, data: copyData}
}

// Fill assigns v to every sample in the field.
// Complexity: O(w*h).
func (f *Scalar) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// String implements fmt.Stringer for easy debugging.
// Rows are printed top to bottom, one bracketed line each.
// Complexity: O(w*h) for string construction.
func (f *Scalar) String() string {
	var sb strings.Builder
	var x, y int
	for y = 0; y < f.h; y++ { // iterate over rows
		sb.WriteString("[") // open row
		for x = 0; x < f.w; x++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(fmt.Sprintf("%g", f.data[y*f.w+x]))
			if x < f.w-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
