//go:build !ebiten

package ui

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus returns nil in the headless build.
func NewStatus() *Status { return nil }

// Update is a no-op in the headless build.
func (s *Status) Update() {}

// Draw is a no-op in the headless build.
func (s *Status) Draw(any, string) {}
