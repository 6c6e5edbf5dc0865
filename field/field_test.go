package field_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewScalar_BadShape verifies that non-positive dimensions are
// rejected with ErrBadShape before any allocation is visible.
func TestNewScalar_BadShape(t *testing.T) {
	_, err := field.NewScalar(0, 4)
	assert.ErrorIs(t, err, field.ErrBadShape, "zero width must error")

	_, err = field.NewScalar(4, -1)
	assert.ErrorIs(t, err, field.ErrBadShape, "negative height must error")
}

// TestNewScalar_ZeroInitialized verifies fresh fields read as all zeros.
func TestNewScalar_ZeroInitialized(t *testing.T) {
	f, err := field.NewScalar(3, 2)
	require.NoError(t, err, "valid dimensions should not error")

	assert.Equal(t, 3, f.Width(), "width must round-trip")
	assert.Equal(t, 2, f.Height(), "height must round-trip")
	for _, v := range f.Data() {
		assert.Zero(t, v, "fresh field must be zero-initialized")
	}
}

// TestScalar_AtSet verifies bounds-checked access and the row-major
// layout contract of Data().
func TestScalar_AtSet(t *testing.T) {
	f, err := field.NewScalar(4, 3)
	require.NoError(t, err)

	// Valid write then read.
	require.NoError(t, f.Set(2, 1, 7.5), "in-range Set should not error")
	v, err := f.At(2, 1)
	assert.NoError(t, err)
	assert.Equal(t, 7.5, v, "At must read back the Set value")

	// Row-major placement: (x=2, y=1) lives at flat index 1*4+2.
	assert.Equal(t, 7.5, f.Data()[1*4+2], "Data must expose row-major layout")

	// Out-of-range coordinates.
	_, err = f.At(4, 0)
	assert.ErrorIs(t, err, field.ErrOutOfRange, "x == width must error")
	_, err = f.At(0, -1)
	assert.ErrorIs(t, err, field.ErrOutOfRange, "negative y must error")
	assert.ErrorIs(t, f.Set(-1, 0, 1), field.ErrOutOfRange, "negative x Set must error")
}

// TestScalarFromSlice verifies copy semantics and length validation.
func TestScalarFromSlice(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	f, err := field.ScalarFromSlice(3, 2, src)
	require.NoError(t, err, "matching length should not error")

	// Mutating the caller's slice must not leak into the field.
	src[0] = 99
	v, _ := f.At(0, 0)
	assert.Equal(t, 1.0, v, "field must own a private copy of the data")

	// Length mismatch is a dimension error.
	_, err = field.ScalarFromSlice(3, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, field.ErrDimensionMismatch, "short slice must error")
}

// TestScalar_CloneIndependence verifies Clone yields a deep copy.
func TestScalar_CloneIndependence(t *testing.T) {
	f, err := field.NewScalar(2, 2)
	require.NoError(t, err)
	require.NoError(t, f.Set(0, 0, 1))

	c := f.Clone()
	require.NoError(t, c.Set(0, 0, 42), "clone must be writable")

	v, _ := f.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}

// TestScalar_Fill verifies Fill assigns every sample.
func TestScalar_Fill(t *testing.T) {
	f, err := field.NewScalar(3, 3)
	require.NoError(t, err)

	f.Fill(2.5)
	for _, v := range f.Data() {
		assert.Equal(t, 2.5, v, "Fill must reach every sample")
	}
}

// TestNewMulti_Validation verifies shape and band-count sentinels.
func TestNewMulti_Validation(t *testing.T) {
	_, err := field.NewMulti(0, 3, 3)
	assert.ErrorIs(t, err, field.ErrBadShape, "zero width must error")

	_, err = field.NewMulti(3, 3, 0)
	assert.ErrorIs(t, err, field.ErrBadBands, "zero bands must error")
}

// TestNewTensor_Bands verifies the tensor convenience constructor always
// yields exactly 3 bands.
func TestNewTensor_Bands(t *testing.T) {
	m, err := field.NewTensor(4, 2)
	require.NoError(t, err)

	assert.Equal(t, field.TensorBands, m.Bands(), "tensor fields carry 3 bands")
	assert.Len(t, m.Data(), 4*2*3, "interleaved storage is w*h*bands")
}

// TestMulti_AtSet verifies interleaved access and its sentinels.
func TestMulti_AtSet(t *testing.T) {
	m, err := field.NewMulti(3, 2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 2, 9.25), "in-range Set should not error")
	v, err := m.At(1, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 9.25, v, "At must read back the Set value")

	// Interleaved placement: (x=1, y=1, band=2) -> (1*3+1)*3+2.
	assert.Equal(t, 9.25, m.Data()[(1*3+1)*3+2], "Data must expose interleaved layout")

	_, err = m.At(3, 0, 0)
	assert.ErrorIs(t, err, field.ErrOutOfRange, "x == width must error")
	_, err = m.At(0, 0, 3)
	assert.ErrorIs(t, err, field.ErrBadBands, "band == Bands must error")
}

// TestMulti_Band verifies single-band extraction is a deep strided copy.
func TestMulti_Band(t *testing.T) {
	m, err := field.NewMulti(2, 2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 1, 5))

	b, err := m.Band(1)
	require.NoError(t, err, "valid band index should not error")
	v, _ := b.At(1, 0)
	assert.Equal(t, 5.0, v, "band extraction must gather the right component")

	// Extracted band is independent of the source field.
	require.NoError(t, b.Set(1, 0, 0))
	v, _ = m.At(1, 0, 1)
	assert.Equal(t, 5.0, v, "mutating the extracted band must not touch the source")

	_, err = m.Band(3)
	assert.ErrorIs(t, err, field.ErrBadBands, "out-of-range band must error")
}

// TestValidators covers the centralized validator sentinels.
func TestValidators(t *testing.T) {
	a, err := field.NewScalar(3, 3)
	require.NoError(t, err)
	b, err := field.NewScalar(3, 4)
	require.NoError(t, err)

	assert.ErrorIs(t, field.ValidateNotNil(nil), field.ErrNilField, "nil field must error")
	assert.NoError(t, field.ValidateNotNil(a))

	assert.ErrorIs(t, field.ValidateSameShape(a, b), field.ErrDimensionMismatch, "height mismatch must error")
	assert.ErrorIs(t, field.ValidateBinarySameShape(nil, a), field.ErrNilField, "nil first operand must error")

	m, err := field.NewMulti(3, 3, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, field.ValidateBands(m, 3), field.ErrBadBands, "band-count mismatch must error")
	assert.ErrorIs(t, field.ValidateBands(nil, 3), field.ErrNilField, "nil multi must error")

	tns, err := field.NewTensor(3, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, field.ValidateScalarMultiShape(a, tns), field.ErrDimensionMismatch, "shape mismatch must error")
}
