// Package field provides dense 2-D containers for image-processing
// algorithms.
//
// The field package provides:
//
//   - Scalar: a W×H dense float64 field with flat row-major storage,
//     bounds-checked At/Set access and a Data() fast path for tight loops.
//   - Multi: a W×H dense field carrying B ≥ 1 float64 bands per pixel
//     (interleaved storage), used for tensor-valued outputs such as the
//     3-band (t11, t12, t22) gradient energy tensor.
//   - Element-wise operations (Add, Sub, Scale) over same-shaped fields.
//   - Centralized validators shared by the algorithm packages.
//
// Fields store float64 samples regardless of the original pixel type, so
// multi-stage filter cascades never lose precision to an integral working
// type. Flat backing slices keep iteration deterministic and cache-friendly.
//
// See the examples in this package and in convolve/get for usage patterns.
package field
