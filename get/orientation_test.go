package get_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlimg/field"
	"github.com/katalvlaran/lvlimg/get"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrientation_BandPrecondition verifies the 3-band check on the
// post-processing helpers.
func TestOrientation_BandPrecondition(t *testing.T) {
	twoBand, err := field.NewMulti(4, 4, 2)
	require.NoError(t, err)

	_, err = get.Orientation(twoBand)
	assert.ErrorIs(t, err, get.ErrTensorBands, "2-band input must error")
	_, err = get.Energy(twoBand)
	assert.ErrorIs(t, err, get.ErrTensorBands, "2-band input must error")

	_, err = get.Orientation(nil)
	assert.ErrorIs(t, err, field.ErrNilField, "nil input must error")
	_, err = get.Energy(nil)
	assert.ErrorIs(t, err, field.ErrNilField, "nil input must error")
}

// TestOrientation_Axes verifies the double-angle decode on synthetic
// tensors: pure-x structure maps to 0 rad, pure-y structure to π/2, and
// a diagonal tensor to π/4 (counter-clockwise positive).
func TestOrientation_Axes(t *testing.T) {
	set := func(t11, t12, t22 float64) *field.Multi {
		m, err := field.NewTensor(1, 1)
		require.NoError(t, err)
		require.NoError(t, m.Set(0, 0, 0, t11))
		require.NoError(t, m.Set(0, 0, 1, t12))
		require.NoError(t, m.Set(0, 0, 2, t22))

		return m
	}

	cases := []struct {
		name            string
		t11, t12, t22   float64
		wantOrientation float64
	}{
		{name: "pure x", t11: 0.5, t12: 0, t22: 0, wantOrientation: 0},
		{name: "pure y", t11: 0, t12: 0, t22: 0.5, wantOrientation: math.Pi / 2},
		{name: "diagonal", t11: 0.5, t12: 0.5, t22: 0.5, wantOrientation: math.Pi / 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := get.Orientation(set(tc.t11, tc.t12, tc.t22))
			require.NoError(t, err)
			v, err := o.At(0, 0)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantOrientation, v, 1e-12, "orientation angle")
		})
	}
}

// TestEnergy_Trace verifies the energy helper is the tensor trace.
func TestEnergy_Trace(t *testing.T) {
	m, err := field.NewTensor(2, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 0, 1.25))
	require.NoError(t, m.Set(0, 0, 2, 0.75))
	require.NoError(t, m.Set(1, 0, 0, -0.5))
	require.NoError(t, m.Set(1, 0, 2, 0.5))

	e, err := get.Energy(m)
	require.NoError(t, err)

	v0, _ := e.At(0, 0)
	v1, _ := e.At(1, 0)
	assert.Equal(t, 2.0, v0, "trace at (0,0)")
	assert.Equal(t, 0.0, v1, "trace at (1,0)")
}
