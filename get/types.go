// Package get defines options and sentinel errors for the Gradient
// Energy Tensor operator.
package get

import (
	"errors"

	"github.com/katalvlaran/lvlimg/convolve"
)

// Errors:
//   - ErrTensorBands — the destination field does not carry exactly the
//     3 tensor bands (t11, t12, t22). Raised before any convolution work.
//
// Structural failures (nil fields, shape mismatches, oversized kernels)
// propagate unchanged from the field and convolve packages; match them
// with errors.Is against those packages' sentinels.
var (
	// ErrTensorBands indicates a destination band count other than 3.
	ErrTensorBands = errors.New("get: output tensor field must have exactly 3 bands")
)

// Options configures the Gradient Energy Tensor computation.
//
// Fields:
//   - Border   — border policy forwarded to every separable convolution
//     of the cascade (default convolve.Reflect).
//   - Parallel — if true, mutually independent cascade stages run
//     concurrently and tensor assembly is split across CPUs. Output is
//     bit-identical to the sequential path; this is purely a wall-clock
//     optimization.
//
// Example:
//
//	opts := get.DefaultOptions()
//	opts.Parallel = true
//	err := get.GradientEnergyTensor(src, dst, deriv, smooth, &opts)
type Options struct {
	Border   convolve.BorderMode
	Parallel bool
}

// DefaultOptions returns the canonical defaults: Reflect borders,
// sequential execution.
func DefaultOptions() Options {
	return Options{Border: convolve.Reflect, Parallel: false}
}
