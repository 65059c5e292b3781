//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"gridviz/internal/grid"
	"gridviz/internal/mutate"
	"gridviz/internal/render"
	"gridviz/internal/ui"
	"gridviz/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the grid editing pipeline to the ebiten.Game interface:
// the randomizer mutates through the editor, the synchronizer drains the
// editor's change queue, and the painter blits the synced sprite states.
type Game struct {
	editor  *grid.Editor
	sync    *view.Synchronizer
	rand    *mutate.Randomizer
	pacer   *mutate.Pacer
	painter *render.GridPainter
	status  *ui.Status

	wallColor  color.Color
	floorColor color.Color

	width    int
	height   int
	scale    int
	rate     int
	paused   bool
	stepOnce bool
	seed     int64
	flips    uint64
}

// New wires a fresh grid of the configured size to its editor,
// synchronizer and randomizer.
func New(cfg *Config) *Game {
	g := &Game{
		painter:    render.NewGridPainter(cfg.Width, cfg.Height),
		status:     ui.NewStatus(),
		pacer:      mutate.NewPacer(cfg.Rate),
		wallColor:  color.RGBA{B: 0xff, A: 0xff},
		floorColor: color.RGBA{R: 0xff, A: 0xff},
		width:      cfg.Width,
		height:     cfg.Height,
		scale:      cfg.Scale,
		rate:       cfg.Rate,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset replaces the grid with an all-floor one and reseeds the randomizer.
func (g *Game) Reset(seed int64) {
	gr := grid.New(g.width, g.height)
	g.editor = grid.NewEditor(gr, 0)
	g.sync = view.New(g.editor.View())
	g.rand = mutate.NewRandomizer(g.editor, mutate.NewSource(seed))
	g.seed = seed
	g.flips = 0
	g.stepOnce = false
}

// Update handles input, runs due mutations and syncs the presentation state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.status.Update()

	if g.stepOnce {
		if _, ok := g.rand.Step(); ok {
			g.flips++
		}
		g.stepOnce = false
	} else if !g.paused {
		for range g.pacer.Ticks() {
			if _, ok := g.rand.Step(); ok {
				g.flips++
			}
		}
	}

	g.sync.Sync(g.editor)
	return nil
}

// Draw renders the current presentation states and the status readout.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sync.States(), g.wallColor, g.floorColor, g.scale)
	g.status.Draw(screen, g.statusLine())
}

func (g *Game) statusLine() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("%dx%d  %d flips/s  %s  flips: %d", g.width, g.height, g.rate, state, g.flips)
}

// Layout returns the logical screen size, clamped so a zero-cell grid
// still yields a drawable surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(1, g.width*g.scale), max(1, g.height*g.scale)
}
