package editor

import (
	"errors"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ha1tch/deluxedesign/internal/canvas"
)

// WorkspaceName is the reserved name of the document bounds rectangle
const WorkspaceName = "clip"

// Default workspace size
const (
	WorkspaceWidth  = 900
	WorkspaceHeight = 1200
)

// ErrNoSurface is returned when a session is started without a surface
var ErrNoSurface = errors.New("editor: no canvas surface")

// Session binds an editor to a surface for the surface's lifetime. The
// surface stays owned by the caller; Close only drops subscriptions.
type Session struct {
	surface   canvas.Surface
	style     Style
	wsWidth   float64
	wsHeight  float64
	onClear   func()
	selection *SelectionMirror
	resize    *AutoResize
	editor    *Editor
	log       *logrus.Entry
	closed    bool
}

// Option configures a Session
type Option func(*Session)

// WithStyle sets the initial default style
func WithStyle(style Style) Option {
	return func(s *Session) { s.style = style.withDefaults() }
}

// WithWorkspaceSize overrides the workspace dimensions
func WithWorkspaceSize(width, height float64) Option {
	return func(s *Session) {
		if width > 0 && height > 0 {
			s.wsWidth = width
			s.wsHeight = height
		}
	}
}

// WithClearSelection registers fn to run whenever the selection
// becomes empty.
func WithClearSelection(fn func()) Option {
	return func(s *Session) { s.onClear = fn }
}

func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) { s.log = log }
}

// NewSession initializes surface for editing: it sizes it to the
// container, creates the workspace, and starts mirroring the selection.
func NewSession(surface canvas.Surface, width, height float64, opts ...Option) (*Session, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	s := &Session{
		surface:  surface,
		style:    DefaultStyle(),
		wsWidth:  WorkspaceWidth,
		wsHeight: WorkspaceHeight,
		log:      logrus.WithField("component", "editor"),
	}
	for _, opt := range opts {
		opt(s)
	}

	surface.SetDimensions(width, height)
	ws := findWorkspace(surface)
	if ws == nil {
		ws = canvas.NewRect(s.wsWidth, s.wsHeight)
		ws.Name = WorkspaceName
		ws.Fill = "white"
		surface.Add(ws)
		surface.CenterObject(ws)
	}
	ws.Selectable = false
	if active := surface.ActiveObjects(); slices.Contains(active, ws) {
		surface.SetActiveObjects(slices.DeleteFunc(active, func(o *canvas.Object) bool { return o == ws })...)
	}
	surface.SetClipPath(ws)

	s.selection = NewSelectionMirror(surface, s.clearSelection)
	s.selection.Start()
	s.resize = NewAutoResize(surface)
	s.resize.Observe(width, height)
	s.editor = newEditor(surface, &s.style, s.selection, s.log)

	s.log.WithFields(logrus.Fields{
		"workspace_width":  s.wsWidth,
		"workspace_height": s.wsHeight,
		"width":            width,
		"height":           height,
	}).Info("Editor session started")
	return s, nil
}

func (s *Session) clearSelection() {
	if s.onClear != nil {
		s.onClear()
	}
}

// Editor returns the adapter bound to this session
func (s *Session) Editor() *Editor {
	return s.editor
}

// Resize forwards a container size change to the surface
func (s *Session) Resize(width, height float64) {
	if s.closed {
		return
	}
	if s.resize.Observe(width, height) {
		s.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("Canvas resized")
	}
}

// Close unsubscribes from the surface. Calling Close again is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.selection.Stop()
	s.log.Info("Editor session closed")
}
