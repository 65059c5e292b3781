//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from per-cell presentation
// states and scales it onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h. Dimensions
// are clamped to 1 because ebiten images cannot be empty; a zero-cell
// grid then renders nothing since Blit rejects mismatched state lengths.
func NewGridPainter(w, h int) *GridPainter {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided states into the painter image and draws it
// onto dst, one cell per pixel before scaling. States whose length does
// not match the painter's grid are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, states []uint8, wall, floor color.Color, scale int) {
	if len(states) != gp.w*gp.h {
		return
	}
	fillStateRGBA(gp.buf, states, wall, floor)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
