package grid

import (
	"fmt"
	"iter"
)

// Position identifies a grid cell by its integer coordinates.
type Position struct {
	X int
	Y int
}

func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Cell holds the passability state of a single grid slot.
type Cell struct {
	Wall bool
}

// OutOfBoundsError reports a position outside the grid's valid rectangle.
type OutOfBoundsError struct {
	Pos Position
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("out of bounds cell position: %s", e.Pos)
}

// Grid stores a fixed-size rectangle of cells in row-major order.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New allocates a width*height grid with every cell passable. Negative
// dimensions are clamped to zero; a zero-sized grid is valid and rejects
// every position.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// Width returns the horizontal cell count fixed at construction.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical cell count fixed at construction.
func (g *Grid) Height() int { return g.height }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether pos falls inside the valid rectangle.
func (g *Grid) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// Index maps pos to its row-major slice index, width*Y + X. The result is
// always in [0, Len()) for positions Contains accepts.
func (g *Grid) Index(pos Position) (int, error) {
	if !g.Contains(pos) {
		return 0, &OutOfBoundsError{Pos: pos}
	}
	return g.width*pos.Y + pos.X, nil
}

// Cell returns a copy of the cell at pos.
func (g *Grid) Cell(pos Position) (Cell, error) {
	i, err := g.Index(pos)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[i], nil
}

// Set replaces the cell at pos. The grid is left untouched when pos is
// out of bounds.
func (g *Grid) Set(pos Position, c Cell) error {
	i, err := g.Index(pos)
	if err != nil {
		return err
	}
	g.cells[i] = c
	return nil
}

// Positions yields every valid position paired with its current cell in
// row-major order: outer loop over Y, inner over X. The sequence is
// restartable and reflects the grid's current state rather than a snapshot.
func (g *Grid) Positions() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Position{X: x, Y: y}, g.cells[g.width*y+x]) {
					return
				}
			}
		}
	}
}
