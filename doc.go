// Package lvlimg is your in-memory toolkit for dense 2-D image analysis —
// from flat-storage field primitives to separable filtering and the
// Gradient Energy Tensor.
//
// 🚀 What is lvlimg?
//
//	A focused, almost-zero-dependency library that brings together:
//		• Field primitives: dense scalar & multi-band float64 images,
//		  bounds-checked access plus flat fast paths for tight loops
//		• Kernels: central difference, binomial, Gaussian and
//		  Gaussian-derivative 1-D kernels with explicit centers
//		• Separable convolution: two-pass filtering with Reflect /
//		  Clamp / Wrap border policies
//		• GET: the Gradient Energy Tensor operator with orientation
//		  and energy post-processing
//		• Image bridge: decode PNG/JPEG/GIF/TIFF into fields and render
//		  fields back to 16-bit grayscale
//
// ✨ Why choose lvlimg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, float64 precision end to end
//   - Deterministic – fixed loop orders; opt-in parallelism with
//     identical output
//
// Under the hood, everything is organized under five subpackages:
//
//	field/    — dense Scalar and Multi containers + element-wise ops
//	kernel/   — immutable 1-D convolution kernels and constructors
//	convolve/ — separable 2-D convolution with border policies
//	get/      — the Gradient Energy Tensor operator
//	imgio/    — image.Image ↔ field bridges (PNG/JPEG/GIF/TIFF)
//
// Quick ASCII picture of the GET data flow:
//
//	src ─► gx ─► gxx, gxy ─┐
//	  └──► gy ─► gyy ──────┼─► laplace ─► gx3, gy3 ─┐
//	                       │                        ├─► (t11, t12, t22)
//	       gx, gy, gxx, gxy, gyy ───────────────────┘
//
// Dive into the runnable demos under examples/ for full scenarios.
//
//	go get github.com/katalvlaran/lvlimg
package lvlimg
