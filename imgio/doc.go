// Package imgio bridges Go images and lvlimg scalar fields.
//
// The imgio package provides:
//
//   - Decode: read an encoded image (PNG, JPEG, GIF, TIFF) from a reader
//     straight into a float64 Scalar field of luminance samples in [0, 1].
//   - FromImage: convert an already-decoded image.Image the same way.
//   - ToGray16: render a Scalar field back into a 16-bit grayscale image
//     with min-max normalization, ready for encoding.
//
// TIFF support comes from golang.org/x/image/tiff, registered by this
// package; the stdlib codecs cover PNG, JPEG and GIF. Conversion uses
// Rec. 601 luma weights, matching what grayscale film of a color scene
// would record.
package imgio
