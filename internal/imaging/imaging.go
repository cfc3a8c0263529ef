// Package imaging holds the raster operations of the inference pipeline:
// decoding uploads, projecting to grayscale, and producing the fixed-size
// classifier patch.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	// Decoders for the upload formats browsers actually send.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"

	"github.com/example/emotion-api/internal/vision"
)

// ErrEmptyRegion is returned when a face region does not intersect the frame.
var ErrEmptyRegion = errors.New("imaging: face region outside frame bounds")

// Decode reads an encoded raster image. The format is sniffed from the bytes,
// not from the filename.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}
	return img, nil
}

// DecodeFile decodes the image stored at path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// ToGray projects an image onto a single luminance channel.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// CropPatch cuts the face region out of the grayscale frame and downscales it
// to a vision.PatchSize square. The region is clamped to the frame first; a
// region that does not overlap the frame at all is an adapter contract
// violation.
func CropPatch(frame *image.Gray, region vision.Rect) (*image.Gray, error) {
	r := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	r = r.Intersect(frame.Bounds())
	if r.Empty() {
		return nil, ErrEmptyRegion
	}
	crop := frame.SubImage(r)
	scaled := resize.Resize(vision.PatchSize, vision.PatchSize, crop, resize.Bilinear)
	return ToGray(scaled), nil
}

// IntensitySum adds up every pixel of the patch. A zero sum means there is
// nothing to classify.
func IntensitySum(g *image.Gray) uint64 {
	var sum uint64
	bounds := g.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		off := g.PixOffset(bounds.Min.X, y)
		for _, p := range g.Pix[off : off+bounds.Dx()] {
			sum += uint64(p)
		}
	}
	return sum
}

// Normalize scales the patch into [0,1], row-major, ready for the classifier.
func Normalize(g *image.Gray) []float32 {
	bounds := g.Bounds()
	w := bounds.Dx()
	out := make([]float32, 0, w*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		off := g.PixOffset(bounds.Min.X, y)
		for _, p := range g.Pix[off : off+w] {
			out = append(out, float32(p)/255.0)
		}
	}
	return out
}
