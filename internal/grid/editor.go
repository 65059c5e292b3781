package grid

import "sync"

// Change records one successful mutation: the position touched and the
// wall state it now holds.
type Change struct {
	Pos  Position
	Wall bool
}

// DefaultQueueDepth bounds the pending change queue when NewEditor is
// given a non-positive depth.
const DefaultQueueDepth = 1024

// Editor is the sole sanctioned write path to a Grid. Every mutation runs
// under one mutex so a single edit window is open at a time, and each
// successful edit is queued as a Change for observers to drain.
type Editor struct {
	mu       sync.Mutex
	grid     *Grid
	changes  []Change
	depth    int
	overflow bool
}

// NewEditor takes ownership of g. Callers must route every subsequent
// write through the returned editor.
func NewEditor(g *Grid, queueDepth int) *Editor {
	if queueDepth <= 0 {
		queueDepth = DefaultQueueDepth
	}
	return &Editor{grid: g, depth: queueDepth}
}

// Mutate sets the wall state at pos, queueing a change record on success.
// An out-of-bounds pos leaves both the grid and the queue untouched.
func (e *Editor) Mutate(pos Position, wall bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.grid.Set(pos, Cell{Wall: wall}); err != nil {
		return err
	}
	e.record(Change{Pos: pos, Wall: wall})
	return nil
}

// Toggle flips the wall state at pos as one exclusive read-flip-write
// window and returns the new state.
func (e *Editor) Toggle(pos Position) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, err := e.grid.Cell(pos)
	if err != nil {
		return false, err
	}
	c.Wall = !c.Wall
	if err := e.grid.Set(pos, c); err != nil {
		return false, err
	}
	e.record(Change{Pos: pos, Wall: c.Wall})
	return c.Wall, nil
}

// record assumes e.mu is held. When the queue is full the oldest record
// is dropped and the overflow flag tells the next drain to rescan.
func (e *Editor) record(ch Change) {
	if len(e.changes) >= e.depth {
		copy(e.changes, e.changes[1:])
		e.changes = e.changes[:len(e.changes)-1]
		e.overflow = true
	}
	e.changes = append(e.changes, ch)
}

// Drain appends all pending change records to dst, clears the queue, and
// reports whether records were dropped since the last drain. On a dropped
// report the consumer must rescan the whole grid.
func (e *Editor) Drain(dst []Change) ([]Change, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	dst = append(dst, e.changes...)
	e.changes = e.changes[:0]
	dropped := e.overflow
	e.overflow = false
	return dst, dropped
}

// View returns a read-only handle onto the editor's grid.
func (e *Editor) View() View { return View{ed: e} }

// View observes an editor's grid without granting mutation. Cell reads go
// through the editor's lock so no scan observes a half-applied edit.
type View struct {
	ed *Editor
}

// Width returns the grid's horizontal cell count.
func (v View) Width() int { return v.ed.grid.width }

// Height returns the grid's vertical cell count.
func (v View) Height() int { return v.ed.grid.height }

// Len returns the grid's total cell count.
func (v View) Len() int { return len(v.ed.grid.cells) }

// Contains reports whether pos falls inside the grid's valid rectangle.
func (v View) Contains(pos Position) bool { return v.ed.grid.Contains(pos) }

// Index maps pos to its row-major index in the grid.
func (v View) Index(pos Position) (int, error) { return v.ed.grid.Index(pos) }

// Cell returns a copy of the cell at pos.
func (v View) Cell(pos Position) (Cell, error) {
	v.ed.mu.Lock()
	defer v.ed.mu.Unlock()
	return v.ed.grid.Cell(pos)
}

// Snapshot appends a row-major copy of every cell to dst. The copy is
// taken under the editor's lock so it is consistent across cells.
func (v View) Snapshot(dst []Cell) []Cell {
	v.ed.mu.Lock()
	defer v.ed.mu.Unlock()
	return append(dst, v.ed.grid.cells...)
}
