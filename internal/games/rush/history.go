package rush

// Snapshot is an immutable copy of board and score taken before a
// reversible mutation. The board is an independent deep copy, never a
// reference into the live game.
type Snapshot struct {
	Board Board
	Score int
	Label string
}

// makeSnapshot captures the given state into an independent snapshot.
func makeSnapshot(b Board, score int, label string) Snapshot {
	return Snapshot{
		Board: b.Clone(),
		Score: score,
		Label: label,
	}
}

// history holds the undo and redo snapshot stacks for one game.
type history struct {
	undo []Snapshot
	redo []Snapshot
}

// record pushes a pre-mutation snapshot onto the undo stack. Any new
// undoable action invalidates the redo history.
func (h *history) record(s Snapshot) {
	h.undo = append(h.undo, s)
	h.redo = h.redo[:0]
}

// popUndo removes and returns the most recent undo snapshot.
func (h *history) popUndo() (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return s, true
}

// popRedo removes and returns the most recent redo snapshot.
func (h *history) popRedo() (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return s, true
}

// pushUndo pushes onto the undo stack without clearing redo.
// Used by redo itself.
func (h *history) pushUndo(s Snapshot) {
	h.undo = append(h.undo, s)
}

// pushRedo pushes onto the redo stack. Used by undo itself.
func (h *history) pushRedo(s Snapshot) {
	h.redo = append(h.redo, s)
}

// clear drops both stacks. Called on game reset and grid-size change.
func (h *history) clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// UndoDepth returns the number of undoable snapshots.
func (h *history) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of redoable snapshots.
func (h *history) RedoDepth() int {
	return len(h.redo)
}
