//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status draws a one-line text readout over the grid view.
type Status struct {
	visible bool
}

// NewStatus constructs a visible status readout.
func NewStatus() *Status {
	return &Status{visible: true}
}

// Update handles the Tab visibility toggle.
func (s *Status) Update() {
	if s == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.visible = !s.visible
	}
}

// Draw renders line in the top-left corner when the readout is visible.
func (s *Status) Draw(dst *ebiten.Image, line string) {
	if s == nil || !s.visible || line == "" {
		return
	}
	text.Draw(dst, line, basicfont.Face7x13, 4, 14, color.White)
}
