package editor

import (
	"math"

	"github.com/ha1tch/deluxedesign/internal/canvas"
)

// fitScale leaves a margin around the workspace when zoomed to fit
const fitScale = 0.85

// AutoResize keeps the surface the size of its container and the
// workspace centered in it.
type AutoResize struct {
	surface canvas.Surface
	width   float64
	height  float64
}

func NewAutoResize(surface canvas.Surface) *AutoResize {
	return &AutoResize{surface: surface}
}

// Observe is called with the container size. It does nothing unless the
// size changed since the last call.
func (r *AutoResize) Observe(width, height float64) bool {
	if width == r.width && height == r.height {
		return false
	}
	r.width = width
	r.height = height
	r.apply()
	return true
}

func (r *AutoResize) apply() {
	r.surface.SetDimensions(r.width, r.height)

	ws := findWorkspace(r.surface)
	if ws == nil || ws.Width <= 0 || ws.Height <= 0 {
		return
	}

	zoom := math.Min(r.width/ws.Width, r.height/ws.Height) * fitScale
	if zoom <= 0 {
		return
	}
	c := ws.CenterPoint()
	r.surface.SetViewport(zoom, canvas.Point{
		X: r.width/2 - c.X*zoom,
		Y: r.height/2 - c.Y*zoom,
	})
	r.surface.RenderAll()
}
