package imgio

import (
	"errors"
	"fmt"
	"image"
	"io"

	// Register stdlib codecs for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Register the TIFF codec (common for scientific imagery).
	_ "golang.org/x/image/tiff"

	"github.com/katalvlaran/lvlimg/field"
)

// ErrNilImage indicates a nil image.Image argument.
var ErrNilImage = errors.New("imgio: nil image")

// Rec. 601 luma weights for RGB → luminance conversion.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// maxChannel is the full-scale value of the 16-bit channels returned by
// color.Color.RGBA.
const maxChannel = 0xffff

// Decode reads one encoded image from r and converts it to a luminance
// Scalar field. Formats: PNG, JPEG, GIF (stdlib) and TIFF (x/image).
// Complexity: O(w·h) on top of the codec's own cost.
func Decode(r io.Reader) (*field.Scalar, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imgio.Decode: %w", err)
	}

	return FromImage(img)
}

// FromImage converts img into a w×h Scalar field of luminance samples
// in [0, 1], using Rec. 601 weights on the 16-bit channel values.
// Stage 1 (Validate): img non-nil with positive bounds.
// Stage 2 (Execute): one pass over the pixel grid.
// Complexity: O(w·h) time and space.
func FromImage(img image.Image) (*field.Scalar, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	out, err := field.NewScalar(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("imgio.FromImage: %w", err)
	}

	data := out.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA() // 16-bit channels
			lum := lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(bl)
			data[i] = lum / maxChannel
			i++
		}
	}

	return out, nil
}

// ToGray16 renders f as a 16-bit grayscale image, linearly mapping
// [min, max] of the field onto the full channel range. A constant field
// renders as mid-gray.
// Complexity: O(w·h) time and space.
func ToGray16(f *field.Scalar) (*image.Gray16, error) {
	if err := field.ValidateNotNil(f); err != nil {
		return nil, fmt.Errorf("imgio.ToGray16: %w", err)
	}

	data := f.Data()
	// Scan the value range once.
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	w, h := f.Width(), f.Height()
	img := image.NewGray16(image.Rect(0, 0, w, h))

	// Degenerate range: render mid-gray instead of dividing by zero.
	if hi == lo {
		for i := range data {
			img.Pix[2*i] = 0x7f
			img.Pix[2*i+1] = 0xff
		}

		return img, nil
	}

	scale := maxChannel / (hi - lo)
	for i, v := range data {
		g := uint16((v - lo) * scale)
		img.Pix[2*i] = uint8(g >> 8) // big-endian per image.Gray16
		img.Pix[2*i+1] = uint8(g)
	}

	return img, nil
}
