// Package convolve implements separable 2-D convolution over dense
// scalar fields, with selectable border handling.
//
// 🚀 What is separable convolution?
//
//	A 2-D filter whose kernel factors into two 1-D kernels is applied as
//	two cheap passes — rows with the x-kernel, then columns with the
//	y-kernel — in O(w·h·(kx+ky)) time instead of O(w·h·kx·ky).
//	Gaussian smoothing, Gaussian derivatives and binomial filters all
//	factor this way, which is why every stage of the gradient energy
//	tensor cascade runs through this package.
//
// ✨ Key features:
//   - true-convolution orientation (kernels are applied mirrored, so a
//     derivative kernel reports mathematically signed slopes)
//   - border policies: Reflect (default), Clamp, Wrap
//   - float64 working precision end to end — no intermediate truncation
//   - output always has exactly the source dimensions
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlimg/convolve"
//	  "github.com/katalvlaran/lvlimg/kernel"
//	)
//
//	smooth, _ := kernel.Gaussian(1.2)
//	opts := convolve.DefaultOptions()
//	blurred, err := convolve.Separable(src, smooth, smooth, &opts)
//
// Performance:
//
//   - Time:   O(w·h·(len(kx)+len(ky)))
//   - Memory: O(w·h) for the intermediate row-pass buffer
//
// See examples in example_test.go.
package convolve
