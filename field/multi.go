// Package field: Multi is a row-major dense 2-D field with B bands per
// pixel, stored interleaved in a single flat slice.
package field

import (
	"fmt"
	"strings"
)

// TensorBands is the band count of a symmetric 2×2 tensor field stored as
// (t11, t12, t22). Exposed as a constant so callers and validators share
// one definition instead of a magic number.
const TensorBands = 3

// multiErrorf wraps an underlying error with Multi method context.
func multiErrorf(method string, x, y, band int, err error) error {
	return fmt.Errorf("Multi.%s(%d,%d,band=%d): %w", method, x, y, band, err)
}

// Multi is a row-major W×H field carrying b float64 bands per pixel.
// Bands are interleaved: sample (x, y, band) lives at data[(y*w+x)*b+band],
// and data has length w*h*b.
type Multi struct {
	w, h, b int       // spatial dimensions and band count
	data    []float64 // flat interleaved storage, length == w*h*b
}

// NewMulti creates a w×h field with bands float64 components per pixel,
// initialized to zeros.
// Stage 1 (Validate): width and height > 0, bands ≥ 1.
// Stage 2 (Prepare): allocate flat interleaved slice.
// Stage 3 (Finalize): return new Multi or a sentinel error.
// Complexity: O(w*h*bands) time and memory.
func NewMulti(width, height, bands int) (*Multi, error) {
	// Validate spatial dimensions
	if width <= 0 || height <= 0 {
		return nil, ErrBadShape
	}
	// Validate band count
	if bands < 1 {
		return nil, ErrBadBands
	}
	// Allocate interleaved storage
	data := make([]float64, width*height*bands)

	return &Multi{w: width, h: height, b: bands, data: data}, nil
}

// NewTensor creates a w×h 3-band field for symmetric 2×2 tensors with band
// order (t11, t12, t22). Shorthand for NewMulti(width, height, TensorBands).
// Complexity: O(w*h) time and memory.
func NewTensor(width, height int) (*Multi, error) {
	return NewMulti(width, height, TensorBands)
}

// Width returns the number of columns in the field.
// Complexity: O(1).
func (f *Multi) Width() int {
	return f.w
}

// Height returns the number of rows in the field.
// Complexity: O(1).
func (f *Multi) Height() int {
	return f.h
}

// Bands returns the number of components per pixel.
// Complexity: O(1).
func (f *Multi) Bands() int {
	return f.b
}

// indexOf computes the flat index for (x, y, band) or returns a sentinel.
// Stage 1 (Validate): coordinate and band bounds.
// Stage 2 (Execute): compute linear interleaved index.
// Complexity: O(1).
func (f *Multi) indexOf(method string, x, y, band int) (int, error) {
	// Validate pixel coordinate
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0, multiErrorf(method, x, y, band, ErrOutOfRange)
	}
	// Validate band index
	if band < 0 || band >= f.b {
		return 0, multiErrorf(method, x, y, band, ErrBadBands)
	}

	// Compute interleaved offset
	return (y*f.w+x)*f.b + band, nil
}

// At retrieves the component band at pixel (x, y).
// Complexity: O(1).
func (f *Multi) At(x, y, band int) (float64, error) {
	idx, err := f.indexOf("At", x, y, band)
	if err != nil {
		return 0, err
	}

	return f.data[idx], nil
}

// Set assigns value v to component band at pixel (x, y).
// Complexity: O(1).
func (f *Multi) Set(x, y, band int, v float64) error {
	idx, err := f.indexOf("Set", x, y, band)
	if err != nil {
		return err
	}
	f.data[idx] = v

	return nil
}

// Data returns the live flat interleaved backing slice.
// Sample (x, y, band) is Data()[(y*W+x)*B+band]; length is W*H*B.
// Mutating the slice mutates the field — the documented fast path for
// per-pixel loops writing all bands at once.
// Complexity: O(1).
func (f *Multi) Data() []float64 {
	return f.data
}

// Clone returns a deep copy of the Multi field.
// Complexity: O(w*h*b) time and memory.
func (f *Multi) Clone() *Multi {
	copyData := make([]float64, len(f.data))
	copy(copyData, f.data)

	return &Multi{w: f.w, h: f.h, b: f.b, data: copyData}
}

// Band extracts a single band as a standalone Scalar field (deep copy).
// Useful for inspecting one tensor component in tests and demos.
// Complexity: O(w*h).
func (f *Multi) Band(band int) (*Scalar, error) {
	// Validate band index against stored band count.
	if band < 0 || band >= f.b {
		return nil, multiErrorf("Band", 0, 0, band, ErrBadBands)
	}
	out, err := NewScalar(f.w, f.h)
	if err != nil {
		return nil, err
	}
	// Strided gather from interleaved storage into the flat scalar buffer.
	dst := out.Data()
	for i := 0; i < f.w*f.h; i++ {
		dst[i] = f.data[i*f.b+band]
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Each pixel prints as a parenthesized band tuple.
// Complexity: O(w*h*b) for string construction.
func (f *Multi) String() string {
	var sb strings.Builder
	var x, y, c int
	for y = 0; y < f.h; y++ {
		sb.WriteString("[")
		for x = 0; x < f.w; x++ {
			sb.WriteString("(")
			for c = 0; c < f.b; c++ {
				sb.WriteString(fmt.Sprintf("%g", f.data[(y*f.w+x)*f.b+c]))
				if c < f.b-1 {
					sb.WriteString(", ")
				}
			}
			sb.WriteString(")")
			if x < f.w-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
