package editor

import (
	"slices"

	"github.com/ha1tch/deluxedesign/internal/canvas"
)

// SelectionMirror keeps a local copy of the surface selection. It is
// subscribed between Start and Stop only.
type SelectionMirror struct {
	surface  canvas.Surface
	onClear  func()
	selected []*canvas.Object
	offs     []func()
}

// NewSelectionMirror returns a stopped mirror. onClear may be nil.
func NewSelectionMirror(surface canvas.Surface, onClear func()) *SelectionMirror {
	return &SelectionMirror{surface: surface, onClear: onClear}
}

// Start subscribes to selection events. Calling Start twice is a no-op.
func (m *SelectionMirror) Start() {
	if m.offs != nil {
		return
	}
	m.selected = m.surface.ActiveObjects()
	m.offs = []func(){
		m.surface.On(canvas.SelectionCreated, m.sync),
		m.surface.On(canvas.SelectionUpdated, m.sync),
		m.surface.On(canvas.SelectionCleared, m.clear),
	}
}

// Stop removes every subscription made by Start and forgets the
// mirrored selection
func (m *SelectionMirror) Stop() {
	for _, off := range m.offs {
		off()
	}
	m.offs = nil
	m.selected = nil
}

// Running reports whether the mirror is subscribed
func (m *SelectionMirror) Running() bool {
	return m.offs != nil
}

// Selected returns the mirrored selection
func (m *SelectionMirror) Selected() []*canvas.Object {
	return slices.Clone(m.selected)
}

func (m *SelectionMirror) sync(canvas.Event) {
	m.selected = m.surface.ActiveObjects()
}

func (m *SelectionMirror) clear(canvas.Event) {
	m.selected = nil
	if m.onClear != nil {
		m.onClear()
	}
}
