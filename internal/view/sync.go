package view

import (
	"fmt"

	"gridviz/internal/grid"
)

// State is the presentation-facing rendition of a cell.
type State uint8

const (
	// StateFloor marks a passable cell.
	StateFloor State = iota
	// StateWall marks a blocked cell.
	StateWall
)

func stateOf(wall bool) State {
	if wall {
		return StateWall
	}
	return StateFloor
}

// Sprite is one presentation entity: a fixed grid position plus the
// visual state it last showed.
type Sprite struct {
	Pos   grid.Position
	State State
}

// Synchronizer projects authoritative grid state onto presentation
// sprites. It reads the grid through a View and never writes to it.
type Synchronizer struct {
	view    grid.View
	sprites []Sprite
	states  []uint8
	scratch []grid.Change
	snap    []grid.Cell
}

// New builds one sprite per grid cell from a full initial scan, in
// row-major order matching the grid's indexing.
func New(v grid.View) *Synchronizer {
	w, h := v.Width(), v.Height()
	s := &Synchronizer{
		view:    v,
		sprites: make([]Sprite, 0, w*h),
		states:  make([]uint8, w*h),
	}
	snap := v.Snapshot(nil)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			st := stateOf(snap[i].Wall)
			s.sprites = append(s.sprites, Sprite{Pos: grid.Position{X: x, Y: y}, State: st})
			s.states[i] = uint8(st)
			i++
		}
	}
	return s
}

// Apply folds drained change records into the sprites they name. Change
// positions originate from the grid itself, so a position the grid does
// not contain means the association is corrupt and Apply panics.
func (s *Synchronizer) Apply(changes []grid.Change) {
	for _, ch := range changes {
		i, err := s.view.Index(ch.Pos)
		if err != nil {
			panic(fmt.Sprintf("view: change names a position outside the grid: %v", err))
		}
		st := stateOf(ch.Wall)
		s.sprites[i].State = st
		s.states[i] = uint8(st)
	}
}

// Rescan re-reads every cell and refreshes each sprite whose cached
// state disagrees with the grid.
func (s *Synchronizer) Rescan() {
	s.snap = s.view.Snapshot(s.snap[:0])
	for i := range s.sprites {
		st := stateOf(s.snap[i].Wall)
		if s.sprites[i].State != st {
			s.sprites[i].State = st
			s.states[i] = uint8(st)
		}
	}
}

// Sync drains the editor's pending changes and updates only the sprites
// they name, falling back to a full rescan when records were dropped.
func (s *Synchronizer) Sync(ed *grid.Editor) {
	var dropped bool
	s.scratch, dropped = ed.Drain(s.scratch[:0])
	if dropped {
		s.Rescan()
		return
	}
	s.Apply(s.scratch)
}

// Sprites exposes the presentation entities in row-major order.
func (s *Synchronizer) Sprites() []Sprite { return s.sprites }

// States returns the row-major presentation states, one byte per cell,
// ready for the pixel painter.
func (s *Synchronizer) States() []uint8 { return s.states }
