//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"image"
	"sync"
	"testing"
)

func resetInit() {
	initOnce = sync.Once{}
	initErr = nil
}

func TestWriteTextWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	resetInit()

	err := WriteText("hello world")
	if !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
}

func TestImageOperationsWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	resetInit()

	if err := WriteImage(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, errNoDisplay) {
		t.Fatalf("WriteImage: expected errNoDisplay, got %v", err)
	}
	if _, err := ReadImage(); !errors.Is(err, errNoDisplay) {
		t.Fatalf("ReadImage: expected errNoDisplay, got %v", err)
	}
}
