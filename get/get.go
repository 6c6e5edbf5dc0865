package get

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/lvlimg/convolve"
	"github.com/katalvlaran/lvlimg/field"
	"github.com/katalvlaran/lvlimg/kernel"
)

// GradientEnergyTensor computes the GET of src into the 3-band field dst
// using derivK for the derivative axis and smoothK for the orthogonal
// smoothing axis of every cascade stage.
//
// Algorithm Outline:
//  1. Preconditions (fail-fast, before any filtering):
//     src non-nil; dst non-nil with exactly 3 bands; dst shape == src shape.
//  2. Derivative cascade — seven separable convolutions plus one
//     point-wise sum, in fixed dependency order:
//     gx      = conv(src;     x: D, y: S)
//     gy      = conv(src;     x: S, y: D)
//     gxx     = conv(gx;      x: D, y: S)
//     gxy     = conv(gx;      x: S, y: D)
//     gyy     = conv(gy;      x: S, y: D)
//     laplace = gxx + gyy
//     gx3     = conv(laplace; x: D, y: S)
//     gy3     = conv(laplace; x: S, y: D)
//  3. Tensor assembly — one point-wise pass over the seven fields:
//     t11 = gxx² + gxy² − gx·gx3
//     t12 = −gxy·(gxx + gyy) + 0.5·(gx·gy3 + gy·gx3)
//     t22 = gxy² + gyy² − gy·gy3
//
// The kernel-axis assignment above is load-bearing: the derivative kernel
// always runs along the axis named by the field ("x-ness"/"y-ness") and
// the smoothing kernel fills the orthogonal axis. Swapping roles on any
// stage yields a differently-oriented, incorrect tensor. Signs are
// calibrated for a right-handed coordinate system, so orientations
// derived from the tensor are counter-clockwise positive with the x-axis
// at zero degrees.
//
// The computation is a pure function of (src, derivK, smoothK, opts):
// all intermediates are created fresh per call and no state is retained.
// With opts.Parallel the independent stages (gx‖gy, {gxx,gxy}‖gyy,
// gx3‖gy3) run concurrently and assembly is split by rows; the result is
// identical to the sequential path.
//
// A nil opts is treated as DefaultOptions().
//
// Errors:
//   - ErrTensorBands — dst band count ≠ 3 (checked before any work).
//   - field.ErrNilField, field.ErrDimensionMismatch — structural
//     precondition failures.
//   - convolve errors propagate unchanged from the cascade stages.
//
// Complexity:
//
//	Time   = O(w·h·(len(D)+len(S))) over seven convolutions
//	Memory = O(w·h) per intermediate field
func GradientEnergyTensor(src *field.Scalar, dst *field.Multi, derivK, smoothK kernel.Kernel, opts *Options) error {
	// Stage 1: fail-fast preconditions, cheapest first.
	if src == nil {
		return fmt.Errorf("GradientEnergyTensor: src: %w", field.ErrNilField)
	}
	if dst == nil {
		return fmt.Errorf("GradientEnergyTensor: dst: %w", field.ErrNilField)
	}
	if dst.Bands() != field.TensorBands {
		return fmt.Errorf("GradientEnergyTensor: %w", ErrTensorBands)
	}
	if err := field.ValidateScalarMultiShape(src, dst); err != nil {
		return fmt.Errorf("GradientEnergyTensor: %w", err)
	}

	// Apply options or defaults.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	convOpts := convolve.Options{Border: o.Border}

	// conv binds the shared options; every cascade stage goes through it.
	conv := func(f *field.Scalar, kx, ky kernel.Kernel) (*field.Scalar, error) {
		return convolve.Separable(f, kx, ky, &convOpts)
	}

	// Stage 2: derivative cascade.
	c, err := runCascade(src, derivK, smoothK, conv, o.Parallel)
	if err != nil {
		return err
	}

	// Stage 3: point-wise tensor assembly.
	assemble(c, dst, o.Parallel)

	return nil
}

// convFunc is the separable-convolution primitive consumed by the cascade.
type convFunc func(f *field.Scalar, kx, ky kernel.Kernel) (*field.Scalar, error)

// cascade bundles the seven intermediate fields feeding the assembler.
type cascade struct {
	gx, gy, gxx, gxy, gyy, gx3, gy3 *field.Scalar
}

// runCascade produces the seven intermediate fields in dependency order.
// When parallel is true, stages with no mutual dependency are computed
// concurrently; the dependency chain itself is unchanged.
func runCascade(src *field.Scalar, derivK, smoothK kernel.Kernel, conv convFunc, parallel bool) (*cascade, error) {
	c := &cascade{}
	var err error

	if !parallel {
		// Straight-line sequential execution in the fixed order.
		if c.gx, err = conv(src, derivK, smoothK); err != nil {
			return nil, err
		}
		if c.gy, err = conv(src, smoothK, derivK); err != nil {
			return nil, err
		}
		if c.gxx, err = conv(c.gx, derivK, smoothK); err != nil {
			return nil, err
		}
		if c.gxy, err = conv(c.gx, smoothK, derivK); err != nil {
			return nil, err
		}
		if c.gyy, err = conv(c.gy, smoothK, derivK); err != nil {
			return nil, err
		}
		laplace, aerr := field.Add(c.gxx, c.gyy)
		if aerr != nil {
			return nil, aerr
		}
		if c.gx3, err = conv(laplace, derivK, smoothK); err != nil {
			return nil, err
		}
		if c.gy3, err = conv(laplace, smoothK, derivK); err != nil {
			return nil, err
		}

		return c, nil
	}

	// Parallel execution: three joins along the dependency chain.
	var wg sync.WaitGroup
	var errX, errY error

	// Wave 1: gx ‖ gy (both depend only on src).
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.gx, errX = conv(src, derivK, smoothK)
	}()
	go func() {
		defer wg.Done()
		c.gy, errY = conv(src, smoothK, derivK)
	}()
	wg.Wait()
	if errX != nil {
		return nil, errX
	}
	if errY != nil {
		return nil, errY
	}

	// Wave 2: {gxx, gxy} on gx ‖ gyy on gy.
	wg.Add(2)
	go func() {
		defer wg.Done()
		if c.gxx, errX = conv(c.gx, derivK, smoothK); errX != nil {
			return
		}
		c.gxy, errX = conv(c.gx, smoothK, derivK)
	}()
	go func() {
		defer wg.Done()
		c.gyy, errY = conv(c.gy, smoothK, derivK)
	}()
	wg.Wait()
	if errX != nil {
		return nil, errX
	}
	if errY != nil {
		return nil, errY
	}

	// Join: laplace = gxx + gyy (point-wise).
	laplace, aerr := field.Add(c.gxx, c.gyy)
	if aerr != nil {
		return nil, aerr
	}

	// Wave 3: gx3 ‖ gy3 (both depend only on laplace).
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.gx3, errX = conv(laplace, derivK, smoothK)
	}()
	go func() {
		defer wg.Done()
		c.gy3, errY = conv(laplace, smoothK, derivK)
	}()
	wg.Wait()
	if errX != nil {
		return nil, errX
	}
	if errY != nil {
		return nil, errY
	}

	return c, nil
}

// assemble writes the three tensor bands from the seven cascade fields.
// Pure point-wise map: output pixel i depends only on sample i of each
// input, so the row split under parallel execution cannot change results.
func assemble(c *cascade, dst *field.Multi, parallel bool) {
	w, h := dst.Width(), dst.Height()

	if !parallel {
		assembleRange(c, dst, 0, w*h)

		return
	}

	// Split the flat pixel range into one contiguous chunk per CPU.
	workers := runtime.GOMAXPROCS(0)
	total := w * h
	chunk := (total + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			assembleRange(c, dst, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// assembleRange evaluates the tensor formula over flat pixels [lo, hi).
func assembleRange(c *cascade, dst *field.Multi, lo, hi int) {
	// Flat fast-path views over all operands.
	gx, gy := c.gx.Data(), c.gy.Data()
	gxx, gxy, gyy := c.gxx.Data(), c.gxy.Data(), c.gyy.Data()
	gx3, gy3 := c.gx3.Data(), c.gy3.Data()
	td := dst.Data()

	for i := lo; i < hi; i++ {
		xx, xy, yy := gxx[i], gxy[i], gyy[i]
		dx, dy := gx[i], gy[i]
		dx3, dy3 := gx3[i], gy3[i]

		base := i * field.TensorBands
		td[base+0] = xx*xx + xy*xy - dx*dx3
		td[base+1] = -xy*(xx+yy) + 0.5*(dx*dy3+dy*dx3)
		td[base+2] = xy*xy + yy*yy - dy*dy3
	}
}
