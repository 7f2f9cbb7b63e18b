package editor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// cloneRGBA returns an independent copy of src. Surfaces owned by the engine
// are always zero-origin, so the copy shares no storage with the source.
func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

// newFilled creates a zero-origin surface of the given size filled with col.
func newFilled(width, height int, col color.RGBA) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return out
}

// extract copies rect from img into a new surface of size rect.Dx() x
// rect.Dy(). Areas of rect outside img are left transparent.
func extract(img *image.RGBA, rect image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	src := rect.Intersect(img.Bounds())
	if !src.Empty() {
		draw.Draw(out, src.Sub(rect.Min), img, src.Min, draw.Src)
	}
	return out
}

// Anchor names the edge or corner of the canvas that stays visually fixed
// when the canvas is resized.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

var anchorNames = []string{
	AnchorTopLeft:     "top-left",
	AnchorTop:         "top",
	AnchorTopRight:    "top-right",
	AnchorLeft:        "left",
	AnchorCenter:      "center",
	AnchorRight:       "right",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottom:      "bottom",
	AnchorBottomRight: "bottom-right",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor returns the anchor named by s, e.g. "top-left" or "center".
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), nil
		}
	}
	return AnchorTopLeft, fmt.Errorf("unknown anchor %q", s)
}

// axes reports the anchor's horizontal and vertical alignment as -1 for
// left/top, 0 for centered and 1 for right/bottom.
func (a Anchor) axes() (x, y int) {
	switch a {
	case AnchorTopLeft, AnchorLeft, AnchorBottomLeft:
		x = -1
	case AnchorTopRight, AnchorRight, AnchorBottomRight:
		x = 1
	}
	switch a {
	case AnchorTopLeft, AnchorTop, AnchorTopRight:
		y = -1
	case AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
		y = 1
	}
	return x, y
}

// anchorOffset computes the placement offset of the old content along one
// axis so the anchored edge keeps its position. Centered anchors floor the
// division so shrinking and growing stay symmetric.
func anchorOffset(axis, oldSize, newSize int) int {
	switch axis {
	case -1:
		return 0
	case 1:
		return newSize - oldSize
	default:
		return floorDiv(newSize-oldSize, 2)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
