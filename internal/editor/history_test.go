package editor

import (
	"image"
	"testing"
)

func tagged(n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0] = uint8(n)
	return img
}

func TestHistoryPushEvictsOldest(t *testing.T) {
	var h historyStack
	for i := 1; i <= maxUndoSteps+3; i++ {
		h.push(tagged(i))
	}
	if len(h.undo) != maxUndoSteps {
		t.Fatalf("undo length %d, want %d", len(h.undo), maxUndoSteps)
	}
	if got := h.undo[0].Pix[0]; got != 4 {
		t.Fatalf("oldest surviving snapshot is %d, want 4", got)
	}
	if got := h.undo[len(h.undo)-1].Pix[0]; got != maxUndoSteps+3 {
		t.Fatalf("newest snapshot is %d, want %d", got, maxUndoSteps+3)
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	var h historyStack
	h.push(tagged(1))
	if _, ok := h.popUndo(tagged(2)); !ok {
		t.Fatal("popUndo reported no state")
	}
	if len(h.redo) != 1 {
		t.Fatalf("redo length %d, want 1", len(h.redo))
	}
	h.push(tagged(3))
	if len(h.redo) != 0 {
		t.Fatalf("push kept %d redo entries", len(h.redo))
	}
}

func TestHistoryCrossPush(t *testing.T) {
	var h historyStack
	h.push(tagged(1))

	restored, ok := h.popUndo(tagged(2))
	if !ok || restored.Pix[0] != 1 {
		t.Fatalf("popUndo = %v, %v; want snapshot 1", restored, ok)
	}
	redone, ok := h.popRedo(tagged(1))
	if !ok || redone.Pix[0] != 2 {
		t.Fatalf("popRedo = %v, %v; want snapshot 2", redone, ok)
	}
	if len(h.undo) != 1 || h.undo[0].Pix[0] != 1 {
		t.Fatal("popRedo did not cross-push onto undo")
	}
}

func TestHistoryPopEmpty(t *testing.T) {
	var h historyStack
	if _, ok := h.popUndo(tagged(1)); ok {
		t.Fatal("popUndo on empty stack reported success")
	}
	if _, ok := h.popRedo(tagged(1)); ok {
		t.Fatal("popRedo on empty stack reported success")
	}
	if len(h.redo) != 0 || len(h.undo) != 0 {
		t.Fatal("failed pops mutated the stacks")
	}
}
