package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadPNGRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	img.SetRGBA(2, 0, color.RGBA{0, 0, 0, 0})

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Bounds().Eq(img.Bounds()) {
		t.Fatalf("bounds %v, want %v", got.Bounds(), img.Bounds())
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Fatal("pixel content changed across the round trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadCorruptPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	// Valid PNG signature followed by garbage.
	data := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, []byte("garbage")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt PNG data")
	}
}

func TestDecodeJPEGNormalizesToRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{200, 120, 40, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Bounds().Min != (image.Point{}) {
		t.Fatalf("bounds %v not zero-origin", got.Bounds())
	}
	if got.RGBAAt(4, 4).A != 255 {
		t.Fatal("decoded JPEG pixels are not opaque RGBA")
	}
}

func TestToRGBAZeroOriginPassthrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	got, err := ToRGBA(src)
	if err != nil {
		t.Fatalf("ToRGBA: %v", err)
	}
	if got != src {
		t.Fatal("zero-origin RGBA should be returned unchanged")
	}
}

func TestToRGBARebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.SetRGBA(5, 5, color.RGBA{1, 2, 3, 255})
	got, err := ToRGBA(src)
	if err != nil {
		t.Fatalf("ToRGBA: %v", err)
	}
	if !got.Bounds().Eq(image.Rect(0, 0, 2, 2)) {
		t.Fatalf("bounds %v, want zero-origin 2x2", got.Bounds())
	}
	if got.RGBAAt(0, 0) != (color.RGBA{1, 2, 3, 255}) {
		t.Fatal("content shifted incorrectly during rebase")
	}
}

func TestToRGBAEmptyImage(t *testing.T) {
	src := image.NewRGBA(image.Rectangle{})
	if _, err := ToRGBA(src); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("got %v, want ErrEmptyImage", err)
	}
}
