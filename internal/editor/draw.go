package editor

import (
	"image"
	"image/color"
	"image/draw"
)

// strokePolyline paints a round-capped, round-joined polyline of the given
// width onto img. Coverage is rasterized into an alpha mask first and
// composited in a single pass so translucent colors do not darken where
// segments overlap.
func strokePolyline(img *image.RGBA, pts []image.Point, width int, col color.Color) {
	if len(pts) < 2 {
		return
	}
	r := penRadius(width)
	box := image.Rectangle{Min: pts[0], Max: pts[0].Add(image.Pt(1, 1))}
	for _, p := range pts[1:] {
		box = box.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	box = box.Inset(-r - 1).Intersect(img.Bounds())
	if box.Empty() {
		return
	}
	mask := image.NewAlpha(box)
	for i := 1; i < len(pts); i++ {
		stampSegment(mask, pts[i-1], pts[i], r)
	}
	draw.DrawMask(img, box, image.NewUniform(col), image.Point{}, mask, box.Min, draw.Over)
}

// fillDab paints a single filled circle of diameter width centred at p.
func fillDab(img *image.RGBA, p image.Point, width int, col color.Color) {
	r := penRadius(width)
	box := image.Rect(p.X-r-1, p.Y-r-1, p.X+r+2, p.Y+r+2).Intersect(img.Bounds())
	if box.Empty() {
		return
	}
	mask := image.NewAlpha(box)
	stampDisc(mask, p.X, p.Y, r)
	draw.DrawMask(img, box, image.NewUniform(col), image.Point{}, mask, box.Min, draw.Over)
}

func penRadius(width int) int {
	if width < 1 {
		width = 1
	}
	return width / 2
}

// stampSegment walks the segment with Bresenham steps and stamps the round
// pen at every step, which yields round caps and joins for free.
func stampSegment(mask *image.Alpha, p0, p1 image.Point, r int) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		stampDisc(mask, x0, y0, r)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// stampDisc sets full coverage for the disc of radius r centred at (cx, cy).
func stampDisc(mask *image.Alpha, cx, cy, r int) {
	b := mask.Bounds()
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x := cx + dx
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			mask.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
