// Package get computes the Gradient Energy Tensor (GET) of a scalar
// image: a per-pixel 2×2 symmetric tensor capturing local orientation and
// energy from combined first- and third-order directional derivatives.
//
// 🚀 What is the Gradient Energy Tensor?
//
//	The GET operator (Felsberg & Köthe, Scale-Space 2005) assembles, for
//	every pixel, the symmetric tensor
//
//	    | t11 t12 |
//	    | t12 t22 |
//
//	from seven derivative fields of the input image. Orientations derived
//	from the tensor are counter-clockwise positive with the x-axis at
//	zero degrees (right-handed convention). It is used for:
//	  • Local orientation estimation (edges, ridges, textures)
//	  • Corner and junction energy measurement
//	  • Coherence-based image enhancement and segmentation
//
// ✨ Key features:
//   - fixed seven-stage separable derivative cascade (gx, gy, gxx, gxy,
//     gyy, laplace, gx3, gy3) over any derivative/smoothing kernel pair
//   - exact point-wise assembly formula, sign-calibrated for a
//     right-handed coordinate system
//   - fail-fast band-count precondition: the destination must carry
//     exactly 3 bands (t11, t12, t22) — no partial output on error
//   - optional intra-call parallelism (identical output, opt-in)
//   - Orientation and Energy post-processing helpers
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlimg/field"
//	  "github.com/katalvlaran/lvlimg/get"
//	  "github.com/katalvlaran/lvlimg/kernel"
//	)
//
//	src, _ := field.ScalarFromSlice(w, h, samples)
//	dst, _ := field.NewTensor(w, h)
//	opts := get.DefaultOptions()
//	err := get.GradientEnergyTensor(src, dst, kernel.CentralDifference(), kernel.Binomial3(), &opts)
//
// Performance:
//
//   - Time:   O(w·h·(len(D)+len(S))) across seven convolutions
//   - Memory: O(w·h) per intermediate field (eight transient fields)
//
// See examples in example_test.go and the runnable demos under examples/.
package get
