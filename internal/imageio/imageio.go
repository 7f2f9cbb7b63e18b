// Package imageio decodes raster images of any supported format into
// zero-origin RGBA surfaces and encodes surfaces back to PNG.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when the input is not one of the
// registered raster formats (PNG, JPEG, GIF, BMP, TIFF, WebP).
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// ErrEmptyImage is returned when a decoded image has no pixels to convert.
var ErrEmptyImage = errors.New("imageio: image has no pixels")

// Decode reads one image from r, auto-detecting the format, and normalizes
// it to a zero-origin RGBA surface.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return ToRGBA(img)
}

// Load decodes the image file at path.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// ToRGBA converts img to a zero-origin RGBA surface. The input is returned
// unchanged when it already has that shape.
func ToRGBA(img image.Image) (*image.RGBA, error) {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: bounds %v", ErrEmptyImage, b)
	}
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out, nil
}

// SavePNG writes img to path as PNG, the only persisted output format.
func SavePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			return fmt.Errorf("imageio: encode %s: %w (close: %v)", path, err, cerr)
		}
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode: %w", err)
	}
	return nil
}
