// Package editor turns UI intents into scene mutations. It owns the
// session's default style, the workspace rectangle and a mirror of the
// scene selection.
package editor

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ha1tch/deluxedesign/internal/canvas"
)

// Editor is the facade the UI shell calls. It holds no objects itself;
// everything it touches lives on the surface.
type Editor struct {
	surface   canvas.Surface
	style     *Style
	selection *SelectionMirror
	log       *logrus.Entry
}

func newEditor(surface canvas.Surface, style *Style, selection *SelectionMirror, log *logrus.Entry) *Editor {
	return &Editor{
		surface:   surface,
		style:     style,
		selection: selection,
		log:       log,
	}
}

// Surface returns the surface the editor draws on
func (e *Editor) Surface() canvas.Surface {
	return e.surface
}

// Style returns a copy of the current default style
func (e *Editor) Style() Style {
	return *e.style
}

// Selected returns the mirrored selection
func (e *Editor) Selected() []*canvas.Object {
	return e.selection.Selected()
}

// Workspace returns the document bounds rectangle, or nil before the
// session has been initialized.
func (e *Editor) Workspace() *canvas.Object {
	return findWorkspace(e.surface)
}

func findWorkspace(s canvas.Surface) *canvas.Object {
	for _, o := range s.Objects() {
		if o.Name == WorkspaceName {
			return o
		}
	}
	return nil
}

func (e *Editor) center(o *canvas.Object) {
	ws := e.Workspace()
	if ws == nil {
		return
	}
	e.surface.CenterObjectAt(o, ws.CenterPoint())
}

func (e *Editor) addToCanvas(o *canvas.Object) {
	e.center(o)
	e.surface.Add(o)
	e.surface.SetActiveObject(o)
	e.log.WithFields(logrus.Fields{"object_id": o.ID, "kind": o.Kind}).Debug("Object added")
}

func (e *Editor) ChangeFillColor(value string) {
	if value == "" {
		e.log.Warn("Ignoring empty fill color")
		return
	}
	e.style.FillColor = value
	for _, o := range e.surface.ActiveObjects() {
		o.Fill = value
	}
	e.surface.RenderAll()
}

// ChangeStrokeColor sets the stroke of the selection. Text has no
// stroke and takes the color as fill.
func (e *Editor) ChangeStrokeColor(value string) {
	if value == "" {
		e.log.Warn("Ignoring empty stroke color")
		return
	}
	e.style.StrokeColor = value
	for _, o := range e.surface.ActiveObjects() {
		if canvas.IsTextKind(o.Kind) {
			o.Fill = value
			continue
		}
		o.Stroke = value
	}
	e.surface.RenderAll()
}

func (e *Editor) ChangeStrokeWidth(value float64) {
	if value < 0 || math.IsNaN(value) {
		e.log.WithField("stroke_width", value).Warn("Ignoring invalid stroke width")
		return
	}
	e.style.StrokeWidth = value
	for _, o := range e.surface.ActiveObjects() {
		o.StrokeWidth = value
	}
	e.surface.RenderAll()
}

// ActiveFillColor returns the fill of the first selected object, or the
// default fill.
func (e *Editor) ActiveFillColor() string {
	sel := e.Selected()
	if len(sel) == 0 || sel[0].Fill == "" {
		return e.style.FillColor
	}
	return sel[0].Fill
}

// ActiveStrokeColor returns the stroke of the first selected object, or
// the default stroke.
func (e *Editor) ActiveStrokeColor() string {
	sel := e.Selected()
	if len(sel) == 0 || sel[0].Stroke == "" {
		return e.style.StrokeColor
	}
	return sel[0].Stroke
}

func (e *Editor) ActiveStrokeWidth() float64 {
	sel := e.Selected()
	if len(sel) == 0 {
		return e.style.StrokeWidth
	}
	return sel[0].StrokeWidth
}
