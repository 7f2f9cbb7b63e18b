package editor

import (
	"image"
	"image/color"
	"testing"
)

func TestFillDabCoversDisc(t *testing.T) {
	img := newFilled(11, 11, white)
	fillDab(img, image.Pt(5, 5), 6, red)

	if got := img.RGBAAt(5, 5); got != red {
		t.Fatalf("centre pixel = %+v, want red", got)
	}
	// Radius 3: points on the axes at distance 3 are inside.
	for _, p := range []image.Point{{8, 5}, {2, 5}, {5, 8}, {5, 2}} {
		if got := img.RGBAAt(p.X, p.Y); got != red {
			t.Fatalf("pixel %v = %+v, want red inside the dab", p, got)
		}
	}
	// Corner of the bounding square is outside the disc.
	if got := img.RGBAAt(8, 8); got != white {
		t.Fatalf("pixel (8,8) = %+v, want white outside the dab", got)
	}
}

func TestFillDabWidthOnePixel(t *testing.T) {
	img := newFilled(3, 3, white)
	fillDab(img, image.Pt(1, 1), 1, red)
	if got := img.RGBAAt(1, 1); got != red {
		t.Fatalf("centre pixel = %+v, want red", got)
	}
	if got := img.RGBAAt(2, 1); got != white {
		t.Fatalf("neighbour pixel = %+v, want white for width 1", got)
	}
}

func TestStrokePolylineCoversEndpoints(t *testing.T) {
	img := newFilled(20, 20, white)
	pts := []image.Point{{3, 3}, {12, 3}, {12, 12}}
	strokePolyline(img, pts, 3, red)

	for _, p := range pts {
		if got := img.RGBAAt(p.X, p.Y); got != red {
			t.Fatalf("pixel %v = %+v, want red on the stroke", p, got)
		}
	}
	// Midpoints of both segments.
	for _, p := range []image.Point{{7, 3}, {12, 7}} {
		if got := img.RGBAAt(p.X, p.Y); got != red {
			t.Fatalf("pixel %v = %+v, want red on the stroke", p, got)
		}
	}
	// Round cap extends past the endpoint along the stroke direction.
	if got := img.RGBAAt(2, 3); got != red {
		t.Fatalf("pixel (2,3) = %+v, want red from the round cap", got)
	}
	if got := img.RGBAAt(17, 3); got != white {
		t.Fatalf("pixel (17,3) = %+v, want untouched white", got)
	}
}

func TestStrokePolylineNeedsTwoPoints(t *testing.T) {
	img := newFilled(5, 5, white)
	strokePolyline(img, []image.Point{{2, 2}}, 3, red)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := img.RGBAAt(x, y); got != white {
				t.Fatalf("single point painted pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestStrokeTranslucentNoDoubleBlend(t *testing.T) {
	// Overlapping segments through a shared joint must composite the color
	// exactly once per pixel.
	img := newFilled(20, 5, white)
	half := color.RGBA{0, 0, 128, 128} // premultiplied half-alpha blue
	strokePolyline(img, []image.Point{{2, 2}, {10, 2}, {17, 2}}, 3, half)

	joint := img.RGBAAt(10, 2)
	mid := img.RGBAAt(5, 2)
	if joint != mid {
		t.Fatalf("joint pixel %+v differs from segment pixel %+v", joint, mid)
	}
}

func TestStrokeClippedOutsideBounds(t *testing.T) {
	img := newFilled(5, 5, white)
	strokePolyline(img, []image.Point{{-10, -10}, {-2, -2}}, 4, red)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := img.RGBAAt(x, y); got != white {
				t.Fatalf("out-of-bounds stroke painted pixel (%d,%d)", x, y)
			}
		}
	}
}
