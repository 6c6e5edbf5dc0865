// Package convolve defines options and border policies for separable
// convolution.
package convolve

import "errors"

// BorderMode controls how samples beyond the field edge are read.
//
//   - Reflect — mirror across the edge sample without repeating it:
//     index -1 reads sample 1, index w reads sample w-2. The default;
//     preserves smooth signals best near the border.
//
//   - Clamp — repeat the edge sample: every out-of-range index reads the
//     nearest valid sample. Cheapest; slightly flattens gradients at the
//     border.
//
//   - Wrap — periodic extension: index -1 reads sample w-1. Use for
//     signals that are genuinely cyclic along the axis.
type BorderMode int

const (
	// Reflect mode: mirror across the edge sample (default).
	Reflect BorderMode = iota

	// Clamp mode: repeat the nearest edge sample.
	Clamp

	// Wrap mode: periodic extension of the axis.
	Wrap
)

// Errors:
//   - ErrNilInput      — the source field or an operand is nil.
//   - ErrKernelTooWide — a kernel's support exceeds the image extent
//     along its axis.
//   - ErrBadBorderMode — an unknown BorderMode value.
var (
	// ErrNilInput indicates a nil source field.
	ErrNilInput = errors.New("convolve: nil input field")

	// ErrKernelTooWide indicates that a kernel reaches further than the
	// image extent along its axis, so no border policy can resolve it in
	// a single reflection.
	ErrKernelTooWide = errors.New("convolve: kernel support exceeds image extent")

	// ErrBadBorderMode indicates an unrecognized BorderMode value.
	ErrBadBorderMode = errors.New("convolve: unknown border mode")
)

// Options configures separable convolution.
//
// Fields:
//   - Border — border policy for samples read beyond the field edge.
//
// Example:
//
//	opts := convolve.DefaultOptions()
//	opts.Border = convolve.Clamp
//	out, err := convolve.Separable(src, kx, ky, &opts)
type Options struct {
	Border BorderMode
}

// DefaultOptions returns the canonical defaults: Reflect borders.
func DefaultOptions() Options {
	return Options{Border: Reflect}
}
