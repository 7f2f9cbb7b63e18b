package editor

import "image"

// selection tracks either a marked rectangle on the authoritative surface or
// a floating detached region with its own position, never both at once.
type selection struct {
	marked    image.Rectangle
	hasMarked bool
	floating  *image.RGBA
	floatPos  image.Point
}

// setMarked records a region of interest; any floating state is dropped.
func (s *selection) setMarked(r image.Rectangle) {
	s.floating = nil
	s.floatPos = image.Point{}
	s.marked = r
	s.hasMarked = true
}

// setFloating records a detached region; any marked rect is dropped.
func (s *selection) setFloating(img *image.RGBA, pos image.Point) {
	s.marked = image.Rectangle{}
	s.hasMarked = false
	s.floating = img
	s.floatPos = pos
}

func (s *selection) markedRect() (image.Rectangle, bool) {
	return s.marked, s.hasMarked
}

func (s *selection) floatingState() (*image.RGBA, image.Point, bool) {
	return s.floating, s.floatPos, s.floating != nil
}

// clear nulls the rect, the floating surface and its position.
func (s *selection) clear() {
	*s = selection{}
}
