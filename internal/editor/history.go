package editor

import "image"

// maxUndoSteps bounds both history stacks. Once the undo stack is full the
// oldest snapshot is evicted.
const maxUndoSteps = 20

// historyStack holds full-surface snapshots for undo and redo. Pushing a new
// snapshot invalidates the redo chain; popping either stack cross-pushes the
// surface being replaced onto the other.
type historyStack struct {
	undo []*image.RGBA
	redo []*image.RGBA
}

// push records a pre-mutation snapshot and clears the redo stack.
func (h *historyStack) push(snapshot *image.RGBA) {
	h.undo = append(h.undo, snapshot)
	if len(h.undo) > maxUndoSteps {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// popUndo returns the most recent undo snapshot, pushing current onto the
// redo stack. It reports false when no snapshot is available.
func (h *historyStack) popUndo(current *image.RGBA) (*image.RGBA, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	h.redo = append(h.redo, current)
	if len(h.redo) > maxUndoSteps {
		h.redo = h.redo[1:]
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return top, true
}

// popRedo is the inverse of popUndo.
func (h *historyStack) popRedo(current *image.RGBA) (*image.RGBA, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	h.undo = append(h.undo, current)
	if len(h.undo) > maxUndoSteps {
		h.undo = h.undo[1:]
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return top, true
}

func (h *historyStack) clear() {
	h.undo = nil
	h.redo = nil
}
