package mutate

import "gridviz/internal/grid"

// Randomizer flips one uniformly random cell per step through the grid's
// editor, which owns the exclusive write window for the read-flip-write.
type Randomizer struct {
	ed  *grid.Editor
	src Source
}

// NewRandomizer returns a randomizer driving ed. A nil src gets a
// deterministic default source.
func NewRandomizer(ed *grid.Editor, src Source) *Randomizer {
	if src == nil {
		src = NewSource(1)
	}
	return &Randomizer{ed: ed, src: src}
}

// Step flips one random in-bounds cell and returns the change applied.
// On a grid with no cells it reports false and touches nothing.
func (r *Randomizer) Step() (grid.Change, bool) {
	v := r.ed.View()
	w, h := v.Width(), v.Height()
	if w == 0 || h == 0 {
		return grid.Change{}, false
	}
	pos := grid.Position{X: r.src.IntN(w), Y: r.src.IntN(h)}
	wall, err := r.ed.Toggle(pos)
	if err != nil {
		// Positions drawn from the grid's own bounds cannot miss.
		panic(err)
	}
	return grid.Change{Pos: pos, Wall: wall}, true
}

// Reseed swaps in a fresh deterministic source.
func (r *Randomizer) Reseed(seed int64) {
	r.src = NewSource(seed)
}
