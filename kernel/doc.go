// Package kernel provides immutable 1-D convolution kernels and the
// standard constructors used by separable image filters.
//
// The kernel package provides:
//
//   - Kernel: an immutable tap sequence with an explicit center offset,
//     the unit consumed by convolve.Separable.
//   - CentralDifference and Binomial3: the minimal 3-tap derivative and
//     smoothing pair ([0.5, 0, -0.5] and [3/16, 10/16, 3/16]).
//   - Gaussian and GaussianDerivative: sampled Gaussian smoothing and
//     first-derivative kernels with 3σ support and standard normalization
//     (smoothing taps sum to 1; derivative taps have unit ramp response).
//
// Kernels are value-copied at construction and never mutated afterwards,
// so a single kernel may be shared freely across concurrent filter runs.
package kernel
