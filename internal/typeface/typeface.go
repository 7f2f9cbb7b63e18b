// Package typeface resolves font files to faces at a given point size. When
// a font cannot be resolved it falls back to the embedded Go Regular sans
// face, so callers always get a usable face.
package typeface

import (
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultSize is used when a caller passes a non-positive point size.
const DefaultSize = 20.0

var (
	fallbackOnce sync.Once
	fallbackFont *opentype.Font
	fallbackErr  error

	fontCache sync.Map // map[string]*opentype.Font
	faceCache sync.Map // map[faceKey]font.Face
)

type faceKey struct {
	path string
	size float64
}

func fallback() (*opentype.Font, error) {
	fallbackOnce.Do(func() {
		fallbackFont, fallbackErr = opentype.Parse(goregular.TTF)
	})
	return fallbackFont, fallbackErr
}

// Face returns a face for the font file at fontPath at the given point size.
// An empty or unresolvable path yields the default sans-serif face; resolution
// failures are logged, not returned. Faces are cached per path and size.
func Face(fontPath string, size float64) (font.Face, error) {
	if size <= 0 {
		size = DefaultSize
	}
	key := faceKey{path: fontPath, size: size}
	if v, ok := faceCache.Load(key); ok {
		return v.(font.Face), nil
	}
	f := resolveFont(fontPath)
	if f == nil {
		var err error
		f, err = fallback()
		if err != nil {
			return nil, fmt.Errorf("typeface: parse fallback font: %w", err)
		}
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("typeface: face at %gpt: %w", size, err)
	}
	faceCache.Store(key, face)
	return face, nil
}

// resolveFont parses the font file at path, returning nil when the path is
// empty or the file cannot be used.
func resolveFont(path string) *opentype.Font {
	if path == "" {
		return nil
	}
	if v, ok := fontCache.Load(path); ok {
		f, _ := v.(*opentype.Font)
		return f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("typeface: read %s: %v (using default face)", path, err)
		fontCache.Store(path, (*opentype.Font)(nil))
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Printf("typeface: parse %s: %v (using default face)", path, err)
		fontCache.Store(path, (*opentype.Font)(nil))
		return nil
	}
	fontCache.Store(path, f)
	return f
}

// Measure returns the rendered width, height and baseline offset of text at
// the given size using the face resolution rules of Face.
func Measure(text, fontPath string, size float64) (width, height, baseline int, err error) {
	face, err := Face(fontPath, size)
	if err != nil {
		return 0, 0, 0, err
	}
	d := &font.Drawer{Face: face}
	width = d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	return width, ascent + descent, ascent, nil
}
