package kernel

import (
	"errors"
	"math"
)

// Errors:
//   - ErrEmptyKernel — a kernel must carry at least one tap.
//   - ErrBadCenter   — the center offset must address an existing tap.
//   - ErrBadSigma    — Gaussian constructors require a finite sigma.
var (
	// ErrEmptyKernel indicates a kernel with no taps.
	ErrEmptyKernel = errors.New("kernel: kernel must have at least one tap")

	// ErrBadCenter indicates a center offset outside [0, len(taps)).
	ErrBadCenter = errors.New("kernel: center offset out of range")

	// ErrBadSigma indicates a NaN or infinite standard deviation.
	ErrBadSigma = errors.New("kernel: sigma must be finite")
)

// Kernel is an immutable 1-D tap sequence with an explicit center offset.
// Tap i carries the kernel value at signed index i - center; consumers
// apply kernels in true-convolution orientation, so tap i weighs the
// source sample at offset center - i from the anchor pixel. A symmetric
// kernel of length n has center n/2.
type Kernel struct {
	taps   []float64 // private copy of the tap weights
	center int       // index of the tap anchored at offset zero
}

// New creates a Kernel from taps with the given center offset.
// Stage 1 (Validate): non-empty taps, 0 ≤ center < len(taps).
// Stage 2 (Prepare): copy taps to guarantee immutability.
// Complexity: O(len(taps)) time and memory.
func New(taps []float64, center int) (Kernel, error) {
	// Reject empty tap sequences.
	if len(taps) == 0 {
		return Kernel{}, ErrEmptyKernel
	}
	// The center must address an existing tap.
	if center < 0 || center >= len(taps) {
		return Kernel{}, ErrBadCenter
	}
	// Copy so later mutation of the caller's slice cannot leak in.
	own := make([]float64, len(taps))
	copy(own, taps)

	return Kernel{taps: own, center: center}, nil
}

// Len returns the number of taps.
// Complexity: O(1).
func (k Kernel) Len() int {
	return len(k.taps)
}

// Center returns the index of the tap anchored at offset zero.
// Complexity: O(1).
func (k Kernel) Center() int {
	return k.center
}

// Radius returns the maximum absolute sample offset reached by the kernel,
// i.e. max(center, len-1-center). A 3-tap centered kernel has radius 1.
// Complexity: O(1).
func (k Kernel) Radius() int {
	left := k.center
	right := len(k.taps) - 1 - k.center
	if left > right {
		return left
	}

	return right
}

// Tap returns the weight of tap i. Out-of-range indices read as zero,
// matching the mathematical view of a kernel with finite support.
// Complexity: O(1).
func (k Kernel) Tap(i int) float64 {
	if i < 0 || i >= len(k.taps) {
		return 0
	}

	return k.taps[i]
}

// Taps returns a copy of the tap weights (the kernel stays immutable).
// Complexity: O(len(taps)).
func (k Kernel) Taps() []float64 {
	out := make([]float64, len(k.taps))
	copy(out, k.taps)

	return out
}

// Sum returns the sum of all tap weights: 1 for normalized smoothing
// kernels, 0 for odd derivative kernels.
// Complexity: O(len(taps)).
func (k Kernel) Sum() float64 {
	var s float64
	for _, t := range k.taps {
		s += t
	}

	return s
}

// CentralDifference returns the minimal first-derivative kernel
// [0.5, 0, -0.5] with center 1. Under convolution the response to a
// unit ramp f(x)=x is exactly 1: (f(x+1) - f(x-1)) / 2.
// Complexity: O(1).
func CentralDifference() Kernel {
	return Kernel{taps: []float64{0.5, 0, -0.5}, center: 1}
}

// Binomial3 returns the 3-tap smoothing kernel [3/16, 10/16, 3/16] with
// center 1, the classic small companion to CentralDifference. Taps sum
// to 1 so constant signals pass through unchanged.
// Complexity: O(1).
func Binomial3() Kernel {
	return Kernel{taps: []float64{3.0 / 16.0, 10.0 / 16.0, 3.0 / 16.0}, center: 1}
}

// Gaussian returns a sampled Gaussian smoothing kernel for the given
// standard deviation, with support ±ceil(3σ) and taps normalized to sum
// to 1. For sigma ≤ 0 the identity kernel [1] is returned.
// Stage 1 (Validate): sigma must be finite.
// Stage 2 (Execute): sample exp(-x²/2σ²) over the support.
// Stage 3 (Finalize): normalize so the taps sum to 1.
// Complexity: O(σ) time and memory.
func Gaussian(sigma float64) (Kernel, error) {
	// Reject non-finite sigma up front.
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return Kernel{}, ErrBadSigma
	}
	// Identity kernel: no smoothing requested.
	if sigma <= 0 {
		return Kernel{taps: []float64{1}, center: 0}, nil
	}

	// Support covers three standard deviations each side (99.7% mass).
	half := int(math.Ceil(sigma * 3))
	size := 2*half + 1
	taps := make([]float64, size)

	// Sample the unnormalized Gaussian; track the sum for normalization.
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := 0; i < size; i++ {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		taps[i] = v
		sum += v
	}

	// Normalize so constant signals are preserved exactly.
	inv := 1 / sum
	for i := range taps {
		taps[i] *= inv
	}

	return Kernel{taps: taps, center: half}, nil
}

// GaussianDerivative returns a sampled first-derivative-of-Gaussian
// kernel for the given standard deviation, with support ±ceil(3σ).
// Taps are normalized so the response to a unit ramp f(x)=x is exactly 1
// (the standard calibration for gradient filters). For sigma ≤ 0 the
// CentralDifference kernel is returned as the minimal approximation.
// Complexity: O(σ) time and memory.
func GaussianDerivative(sigma float64) (Kernel, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return Kernel{}, ErrBadSigma
	}
	// Degenerate sigma: fall back to the minimal 3-tap derivative.
	if sigma <= 0 {
		return CentralDifference(), nil
	}

	half := int(math.Ceil(sigma * 3))
	size := 2*half + 1
	taps := make([]float64, size)

	// Sample g'(x) = -x/σ² · exp(-x²/2σ²) at the signed tap index i - half.
	twoSigmaSq := 2 * sigma * sigma
	sigmaSq := sigma * sigma
	for i := 0; i < size; i++ {
		x := float64(i - half)
		taps[i] = -x / sigmaSq * math.Exp(-(x*x)/twoSigmaSq)
	}

	// Calibrate the ramp response: sum_i taps[i]·(half-i) must equal 1.
	var ramp float64
	for i := 0; i < size; i++ {
		ramp += taps[i] * float64(half-i)
	}
	inv := 1 / ramp
	for i := range taps {
		taps[i] *= inv
	}

	return Kernel{taps: taps, center: half}, nil
}
