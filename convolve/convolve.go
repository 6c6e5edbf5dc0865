package convolve

import (
	"github.com/katalvlaran/lvlimg/field"
	"github.com/katalvlaran/lvlimg/kernel"
)

// Separable convolves src with kx along rows and ky along columns,
// returning a fresh field of exactly the source dimensions.
//
// Algorithm Outline (two-pass):
//  1. Validate src, border mode and kernel support along each axis.
//  2. Horizontal pass: every row is convolved with kx into a temp field.
//  3. Vertical pass: every column of the temp field is convolved with ky
//     into the output field.
//
// Kernels are applied in true-convolution orientation: tap i weighs the
// source sample at offset center-i, so kernel.CentralDifference reports
// (f(x+1)-f(x-1))/2. Out-of-range samples are resolved by opts.Border.
//
// A nil opts is treated as DefaultOptions().
//
// Errors:
//   - ErrNilInput      — src is nil.
//   - ErrKernelTooWide — a kernel's radius meets or exceeds the extent
//     along its axis (see package doc for the validation rationale).
//   - ErrBadBorderMode — opts.Border is not a declared mode.
//
// Complexity:
//
//	Time   = O(w·h·(len(kx)+len(ky)))
//	Memory = O(w·h)
func Separable(src *field.Scalar, kx, ky kernel.Kernel, opts *Options) (*field.Scalar, error) {
	// Validate source presence.
	if src == nil {
		return nil, ErrNilInput
	}

	// Apply options or defaults.
	border := Reflect
	if opts != nil {
		border = opts.Border
	}
	if border != Reflect && border != Clamp && border != Wrap {
		return nil, ErrBadBorderMode
	}

	w, h := src.Width(), src.Height()

	// A kernel reaching beyond one full reflection cannot be resolved
	// deterministically by any single border policy; reject it.
	if kx.Radius() >= w || ky.Radius() >= h {
		return nil, ErrKernelTooWide
	}

	// Temp field for the row pass; output field for the column pass.
	tmp, err := field.NewScalar(w, h)
	if err != nil {
		return nil, err
	}
	out, err := field.NewScalar(w, h)
	if err != nil {
		return nil, err
	}

	// Pass 1: rows with kx (src -> tmp).
	convolveRows(src.Data(), tmp.Data(), w, h, kx, border)
	// Pass 2: columns with ky (tmp -> out).
	convolveCols(tmp.Data(), out.Data(), w, h, ky, border)

	return out, nil
}

// convolveRows applies k along the x axis of a w×h row-major buffer.
// For every output sample: out(x,y) = Σ_i tap(i) · src(B(x+c-i), y),
// where c is the kernel center and B resolves out-of-range indices.
func convolveRows(src, dst []float64, w, h int, k kernel.Kernel, border BorderMode) {
	n, c := k.Len(), k.Center()
	taps := k.Taps()

	for y := 0; y < h; y++ {
		row := y * w // base offset of row y
		for x := 0; x < w; x++ {
			var sum float64
			for i := 0; i < n; i++ {
				sx := x + c - i // mirrored (true convolution) sample index
				if sx < 0 || sx >= w {
					sx = borderIndex(sx, w, border)
				}
				sum += taps[i] * src[row+sx]
			}
			dst[row+x] = sum
		}
	}
}

// convolveCols applies k along the y axis of a w×h row-major buffer.
// Loop order stays y-outer for sequential writes; reads stride by w.
func convolveCols(src, dst []float64, w, h int, k kernel.Kernel, border BorderMode) {
	n, c := k.Len(), k.Center()
	taps := k.Taps()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for i := 0; i < n; i++ {
				sy := y + c - i // mirrored sample row
				if sy < 0 || sy >= h {
					sy = borderIndex(sy, h, border)
				}
				sum += taps[i] * src[sy*w+x]
			}
			dst[y*w+x] = sum
		}
	}
}

// borderIndex maps an out-of-range index into [0, n) per the border mode.
// Callers guarantee n ≥ 1 and pass only indices that are out of range.
func borderIndex(i, n int, mode BorderMode) int {
	switch mode {
	case Clamp:
		if i < 0 {
			return 0
		}

		return n - 1
	case Wrap:
		i %= n
		if i < 0 {
			i += n
		}

		return i
	default: // Reflect
		// Mirror across the edge sample; loop covers kernels wider than
		// one reflection on degenerate 1-sample axes.
		for i < 0 || i >= n {
			if i < 0 {
				i = -i
			}
			if i >= n {
				i = 2*(n-1) - i
			}
			if n == 1 {
				return 0
			}
		}

		return i
	}
}
