package get

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlimg/field"
)

// Orientation derives the dominant local orientation from an assembled
// tensor field: angle(x,y) = 0.5·atan2(2·t12, t11 − t22), in radians
// within (−π/2, π/2], counter-clockwise positive with the x-axis at zero.
//
// Stage 1 (Validate): t non-nil with exactly 3 bands.
// Stage 2 (Execute): one point-wise pass over the interleaved bands.
//
// Errors: ErrTensorBands on a non-3-band input, field.ErrNilField on nil.
// Complexity: O(w·h) time and space.
func Orientation(t *field.Multi) (*field.Scalar, error) {
	if err := validateTensor("Orientation", t); err != nil {
		return nil, err
	}

	out, err := field.NewScalar(t.Width(), t.Height())
	if err != nil {
		return nil, err
	}

	td, od := t.Data(), out.Data()
	for i := range od {
		base := i * field.TensorBands
		t11, t12, t22 := td[base+0], td[base+1], td[base+2]
		// Double-angle form: the tensor encodes orientation modulo π.
		od[i] = 0.5 * math.Atan2(2*t12, t11-t22)
	}

	return out, nil
}

// Energy derives the per-pixel tensor energy, the trace t11 + t22.
// Large values mark strong oriented structure; zero marks flat regions.
//
// Errors: ErrTensorBands on a non-3-band input, field.ErrNilField on nil.
// Complexity: O(w·h) time and space.
func Energy(t *field.Multi) (*field.Scalar, error) {
	if err := validateTensor("Energy", t); err != nil {
		return nil, err
	}

	out, err := field.NewScalar(t.Width(), t.Height())
	if err != nil {
		return nil, err
	}

	td, od := t.Data(), out.Data()
	for i := range od {
		base := i * field.TensorBands
		od[i] = td[base+0] + td[base+2]
	}

	return out, nil
}

// validateTensor centralizes the 3-band tensor precondition shared by
// the post-processing helpers.
func validateTensor(method string, t *field.Multi) error {
	if t == nil {
		return fmt.Errorf("%s: %w", method, field.ErrNilField)
	}
	if t.Bands() != field.TensorBands {
		return fmt.Errorf("%s: %w", method, ErrTensorBands)
	}

	return nil
}
