// Package editor implements the image editing core: one Engine per open
// document owns the authoritative pixel surface, the selection state and a
// bounded undo/redo history of full-surface snapshots.
package editor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/konverner/gnome-nano-image-edit/internal/imageio"
	"github.com/konverner/gnome-nano-image-edit/internal/typeface"
)

// ErrInvalidGeometry reports a blank-document request with a degenerate size.
var ErrInvalidGeometry = errors.New("editor: width and height must be at least 1")

// ErrNoImage reports an operation that needs a loaded document.
var ErrNoImage = errors.New("editor: no image loaded")

const (
	defaultBrushSize = 10
	defaultTextSize  = 20
)

var defaultBrushColor = color.RGBA{255, 0, 0, 255}

// Engine is the sole owner of the image state for one document. Every pixel
// mutation goes through it and completes before returning, so callers never
// observe a partially drawn surface. It is driven by a single goroutine at a
// time and is not safe for concurrent use.
//
// Any mutating operation commits a pending floating selection first; a float
// is never silently dropped by starting the next edit.
type Engine struct {
	current  *image.RGBA
	original *image.RGBA
	history  historyStack
	sel      selection

	cropping bool
	cropPanX float64
	cropPanY float64

	brushSize  int
	brushColor color.RGBA
	textSize   float64
	fontPath   string

	path string
}

// New returns an engine with no document loaded and default tool settings.
func New() *Engine {
	return &Engine{
		brushSize:  defaultBrushSize,
		brushColor: defaultBrushColor,
		textSize:   defaultTextSize,
	}
}

// CreateBlank starts a fresh document of the given size filled with fill.
// History, selection and the file identity are reset.
func (e *Engine) CreateBlank(width, height int, fill color.RGBA) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	e.sel.clear()
	e.resetCrop()
	e.original = newFilled(width, height, fill)
	e.current = cloneRGBA(e.original)
	e.path = ""
	e.history.clear()
	return nil
}

// Load replaces the document with the decoded contents of the image file at
// path. Any supported raster format is accepted and normalized to RGBA. On
// failure the previous document is left untouched.
func (e *Engine) Load(path string) (*image.RGBA, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	e.sel.clear()
	e.resetCrop()
	e.original = img
	e.current = cloneRGBA(img)
	e.path = path
	e.history.clear()
	return e.current, nil
}

// SetImage replaces the document with img, for example when opening an image
// received from the clipboard. The surface is cloned; history, selection and
// the file identity are reset.
func (e *Engine) SetImage(img *image.RGBA) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("%w: empty surface", ErrInvalidGeometry)
	}
	e.sel.clear()
	e.resetCrop()
	e.original = cloneRGBA(img)
	e.current = cloneRGBA(e.original)
	e.path = ""
	e.history.clear()
	return nil
}

// Save commits any floating selection and writes the surface to path as PNG.
func (e *Engine) Save(path string) error {
	if e.current == nil {
		return ErrNoImage
	}
	e.Paste()
	if err := imageio.SavePNG(path, e.current); err != nil {
		return err
	}
	e.path = path
	return nil
}

// Image returns the surface for display. While a floating selection is
// active the result is a fresh composite owned by the caller; otherwise it
// is the live authoritative surface and must be treated as read-only.
func (e *Engine) Image() *image.RGBA {
	if e.current == nil {
		return nil
	}
	if f, pos, ok := e.sel.floatingState(); ok {
		out := cloneRGBA(e.current)
		draw.Draw(out, f.Bounds().Add(pos), f, f.Bounds().Min, draw.Over)
		return out
	}
	return e.current
}

// Original returns the surface as it was at load or creation time.
func (e *Engine) Original() *image.RGBA { return e.original }

// Path returns the file the document was loaded from or last saved to.
func (e *Engine) Path() string { return e.path }

// saveState pushes the pre-mutation surface onto the undo stack.
func (e *Engine) saveState() {
	if e.current != nil {
		e.history.push(cloneRGBA(e.current))
	}
}

// Undo restores the previous snapshot, reporting whether one was available.
// A restored snapshot never carries selection or crop state forward.
func (e *Engine) Undo() bool {
	if e.current == nil {
		return false
	}
	restored, ok := e.history.popUndo(cloneRGBA(e.current))
	if !ok {
		return false
	}
	e.current = restored
	e.sel.clear()
	e.resetCrop()
	return true
}

// Redo restores the next snapshot, reporting whether one was available.
func (e *Engine) Redo() bool {
	if e.current == nil {
		return false
	}
	restored, ok := e.history.popRedo(cloneRGBA(e.current))
	if !ok {
		return false
	}
	e.current = restored
	e.sel.clear()
	e.resetCrop()
	return true
}

// CanUndo reports whether an undo snapshot is available.
func (e *Engine) CanUndo() bool { return len(e.history.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (e *Engine) CanRedo() bool { return len(e.history.redo) > 0 }

// SetSelection marks a rectangular region of interest on the authoritative
// surface. Any floating selection is discarded; callers paste first when
// they want to keep it.
func (e *Engine) SetSelection(r image.Rectangle) {
	e.sel.setMarked(r.Canon())
}

// Selection returns the marked rect, if any.
func (e *Engine) Selection() (image.Rectangle, bool) {
	return e.sel.markedRect()
}

// ClearSelection drops the marked rect without touching pixels.
func (e *Engine) ClearSelection() {
	if _, ok := e.sel.markedRect(); ok {
		e.sel.clear()
	}
}

// StartCrop commits any floating selection and enters crop framing mode with
// the pan offset reset. A marked rect is still required to apply the crop.
func (e *Engine) StartCrop() {
	e.Paste()
	e.cropping = true
	e.cropPanX, e.cropPanY = 0, 0
}

// CancelCrop leaves crop mode and clears the marked rect and pan offset.
// No pixels change.
func (e *Engine) CancelCrop() {
	e.resetCrop()
	e.sel.clear()
}

// SetCropPan shifts the crop source while framing. It is only meaningful in
// crop mode.
func (e *Engine) SetCropPan(dx, dy float64) {
	if !e.cropping {
		return
	}
	e.cropPanX, e.cropPanY = dx, dy
}

// CropPan returns the current pan offset.
func (e *Engine) CropPan() (dx, dy float64) { return e.cropPanX, e.cropPanY }

// IsCropping reports whether crop framing mode is active.
func (e *Engine) IsCropping() bool { return e.cropping }

func (e *Engine) resetCrop() {
	e.cropping = false
	e.cropPanX, e.cropPanY = 0, 0
}

// ApplyCrop replaces the surface with the marked region, its source shifted
// by the pan offset. Without crop mode and a marked rect it does nothing.
func (e *Engine) ApplyCrop() {
	rect, ok := e.sel.markedRect()
	if e.current == nil || !e.cropping || !ok {
		return
	}
	e.saveState()
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	sp := image.Pt(rect.Min.X-int(e.cropPanX), rect.Min.Y-int(e.cropPanY))
	draw.Draw(out, out.Bounds(), e.current, sp, draw.Src)
	e.current = out
	e.CancelCrop()
}

// Cut extracts rect into a new floating selection positioned where it came
// from and clears the source rectangle to transparent. A pre-existing float
// is pasted first.
func (e *Engine) Cut(r image.Rectangle) {
	if e.current == nil {
		return
	}
	r = r.Canon()
	e.Paste()
	e.saveState()
	float := extract(e.current, r)
	draw.Draw(e.current, r, image.Transparent, image.Point{}, draw.Src)
	e.sel.setFloating(float, r.Min)
}

// Copy returns the pixels of rect without modifying the surface. Like Cut it
// operates on the merged state, so a pending float is pasted first.
func (e *Engine) Copy(r image.Rectangle) *image.RGBA {
	if e.current == nil {
		return nil
	}
	e.Paste()
	return extract(e.current, r.Canon())
}

// SetFloating makes externally supplied pixels (e.g. a clipboard paste) the
// floating selection at (x, y). A prior float is committed first and one
// undo snapshot covers the paste-in.
func (e *Engine) SetFloating(img *image.RGBA, x, y int) {
	if e.current == nil || img == nil {
		return
	}
	e.Paste()
	e.saveState()
	e.sel.setFloating(img, image.Pt(x, y))
}

// Paste alpha-composites the floating selection onto the authoritative
// surface at its stored position and clears the floating state. It pushes no
// undo snapshot itself; operations that need one snapshot around the paste.
func (e *Engine) Paste() {
	f, pos, ok := e.sel.floatingState()
	if e.current == nil || !ok {
		return
	}
	draw.Draw(e.current, f.Bounds().Add(pos), f, f.Bounds().Min, draw.Over)
	e.sel.clear()
}

// ClearFloating discards the floating selection and any marked rect without
// compositing.
func (e *Engine) ClearFloating() {
	e.sel.clear()
}

// MoveFloating repositions the floating selection; no-op without one.
func (e *Engine) MoveFloating(x, y int) {
	if e.sel.floating == nil {
		return
	}
	e.sel.floatPos = image.Pt(x, y)
}

// Floating returns the detached surface and its position, if any.
func (e *Engine) Floating() (*image.RGBA, image.Point, bool) {
	return e.sel.floatingState()
}

// HasFloating reports whether a floating selection is active.
func (e *Engine) HasFloating() bool { return e.sel.floating != nil }

// BeginStroke pushes the single undo snapshot covering a logical brush
// stroke. Call it once per drag, then extend the stroke with any number of
// DrawStroke calls so the whole stroke undoes in one step.
func (e *Engine) BeginStroke() {
	e.saveState()
}

// DrawStroke strokes a round-capped, round-joined polyline through pts. It
// needs at least two points and pushes no undo snapshot of its own.
func (e *Engine) DrawStroke(pts []image.Point, width int, col color.Color) {
	if e.current == nil || len(pts) < 2 {
		return
	}
	if col == nil {
		col = e.brushColor
	}
	strokePolyline(e.current, pts, width, col)
}

// DrawDab paints a single filled circle of diameter width at p, with its own
// undo snapshot. Used for a click that is not part of a drag.
func (e *Engine) DrawDab(p image.Point, width int, col color.Color) {
	if e.current == nil {
		return
	}
	if col == nil {
		col = e.brushColor
	}
	e.saveState()
	fillDab(e.current, p, width, col)
}

// AddText renders text with its baseline at (x, y). The face for fontPath is
// resolved first, falling back to the default sans face, so a failure leaves
// the surface untouched. Empty text is a no-op.
func (e *Engine) AddText(text string, x, y int, fontPath string, size float64, col color.Color) error {
	if e.current == nil || text == "" {
		return nil
	}
	if fontPath == "" {
		fontPath = e.fontPath
	}
	if size <= 0 {
		size = e.textSize
	}
	if col == nil {
		col = e.brushColor
	}
	face, err := typeface.Face(fontPath, size)
	if err != nil {
		return err
	}
	e.Paste()
	e.saveState()
	d := &font.Drawer{
		Dst:  e.current,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// ResizeCanvas replaces the surface with one of the requested size filled
// with fill, compositing the old content so the named anchor stays fixed.
// Dimensions are clamped to a minimum of one pixel.
func (e *Engine) ResizeCanvas(width, height int, anchor Anchor, fill color.RGBA) {
	if e.current == nil {
		return
	}
	e.Paste()
	e.saveState()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	out := newFilled(width, height, fill)
	ax, ay := anchor.axes()
	b := e.current.Bounds()
	off := image.Pt(anchorOffset(ax, b.Dx(), width), anchorOffset(ay, b.Dy(), height))
	draw.Draw(out, b.Add(off), e.current, b.Min, draw.Over)
	e.current = out
}

// BrushSize returns the default brush diameter in pixels.
func (e *Engine) BrushSize() int { return e.brushSize }

// SetBrushSize commits a pending float and updates the brush diameter.
func (e *Engine) SetBrushSize(size int) {
	e.Paste()
	if size < 1 {
		size = 1
	}
	e.brushSize = size
}

// BrushColor returns the default drawing color.
func (e *Engine) BrushColor() color.RGBA { return e.brushColor }

// SetBrushColor commits a pending float and updates the drawing color.
func (e *Engine) SetBrushColor(col color.RGBA) {
	e.Paste()
	e.brushColor = col
}

// TextSize returns the default text point size.
func (e *Engine) TextSize() float64 { return e.textSize }

// SetTextSize updates the default text point size.
func (e *Engine) SetTextSize(size float64) {
	if size > 0 {
		e.textSize = size
	}
}

// FontPath returns the font file used by AddText when none is given.
func (e *Engine) FontPath() string { return e.fontPath }

// SetFontPath updates the font file used by AddText when none is given.
func (e *Engine) SetFontPath(path string) { e.fontPath = path }
