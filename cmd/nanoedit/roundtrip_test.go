package main

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/konverner/gnome-nano-image-edit/internal/imageio"
)

func runCmd(t *testing.T, cmd runnable) {
	t.Helper()
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestNewCreatesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.png")
	cmd, err := parseNewCmd([]string{"-width", "20", "-height", "10", "-color", "white", "-output", path}, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	runCmd(t, cmd)

	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("fill = %v", got)
	}
}

func TestEditBrushWritesStroke(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	create, err := parseNewCmd([]string{"-width", "20", "-height", "10", "-color", "white", "-output", path}, nil)
	if err != nil {
		t.Fatalf("parse new: %v", err)
	}
	runCmd(t, create)

	apply, err := parseEditCmd([]string{"-file", path, "-color", "blue", "-width", "3", "brush", "0", "5", "19", "5"}, nil)
	if err != nil {
		t.Fatalf("parse edit: %v", err)
	}
	runCmd(t, apply)

	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := img.RGBAAt(10, 5); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("stroke midpoint = %v", got)
	}
	if got := img.RGBAAt(10, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("pixel off the stroke = %v", got)
	}
}

func TestEditCropShrinksImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	create, err := parseNewCmd([]string{"-width", "20", "-height", "10", "-output", path}, nil)
	if err != nil {
		t.Fatalf("parse new: %v", err)
	}
	runCmd(t, create)

	apply, err := parseEditCmd([]string{"-file", path, "crop", "2", "2", "8", "6"}, nil)
	if err != nil {
		t.Fatalf("parse edit: %v", err)
	}
	runCmd(t, apply)

	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
}

func TestEditResizeAnchorsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	out := filepath.Join(dir, "out.png")
	create, err := parseNewCmd([]string{"-width", "10", "-height", "10", "-color", "white", "-output", path}, nil)
	if err != nil {
		t.Fatalf("parse new: %v", err)
	}
	runCmd(t, create)

	apply, err := parseEditCmd([]string{"-file", path, "-output", out, "-anchor", "top-left", "-fill", "black", "resize", "20", "20"}, nil)
	if err != nil {
		t.Fatalf("parse edit: %v", err)
	}
	runCmd(t, apply)

	img, err := imageio.Load(out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("anchored content = %v", got)
	}
	if got := img.RGBAAt(15, 15); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("exposed area = %v", got)
	}
}

func TestEditCutClearsRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	create, err := parseNewCmd([]string{"-width", "10", "-height", "10", "-color", "white", "-output", path}, nil)
	if err != nil {
		t.Fatalf("parse new: %v", err)
	}
	runCmd(t, create)

	apply, err := parseEditCmd([]string{"-file", path, "cut", "2", "2", "4", "4"}, nil)
	if err != nil {
		t.Fatalf("parse edit: %v", err)
	}
	runCmd(t, apply)

	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := img.RGBAAt(3, 3); got != (color.RGBA{}) {
		t.Fatalf("cut region = %v", got)
	}
	if got := img.RGBAAt(8, 8); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("untouched pixel = %v", got)
	}
}

func TestEditMoveTranslatesRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	create, err := parseNewCmd([]string{"-width", "10", "-height", "10", "-color", "white", "-output", path}, nil)
	if err != nil {
		t.Fatalf("parse new: %v", err)
	}
	runCmd(t, create)

	// Paint a marker, then move the region containing it.
	dabCmd, err := parseEditCmd([]string{"-file", path, "-color", "red", "-width", "2", "dab", "2", "2"}, nil)
	if err != nil {
		t.Fatalf("parse dab: %v", err)
	}
	runCmd(t, dabCmd)

	moveCmd, err := parseEditCmd([]string{"-file", path, "move", "0", "0", "5", "5", "4", "4"}, nil)
	if err != nil {
		t.Fatalf("parse move: %v", err)
	}
	runCmd(t, moveCmd)

	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := img.RGBAAt(6, 6); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("moved marker = %v", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Fatalf("vacated region = %v", got)
	}
}
