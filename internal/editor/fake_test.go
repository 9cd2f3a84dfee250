package editor

import (
	"slices"

	"github.com/ha1tch/deluxedesign/internal/canvas"
)

// fakeSurface records calls and emits selection events the way the
// scene does, without any geometry.
type fakeSurface struct {
	objects  []*canvas.Object
	active   []*canvas.Object
	clip     *canvas.Object
	width    float64
	height   float64
	zoom     float64
	offset   canvas.Point
	renders  int
	handlers map[canvas.EventType][]*canvas.Handler
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{zoom: 1, handlers: make(map[canvas.EventType][]*canvas.Handler)}
}

func (f *fakeSurface) Add(objs ...*canvas.Object) { f.objects = append(f.objects, objs...) }

func (f *fakeSurface) Objects() []*canvas.Object { return slices.Clone(f.objects) }

func (f *fakeSurface) ActiveObjects() []*canvas.Object { return slices.Clone(f.active) }

func (f *fakeSurface) SetActiveObject(o *canvas.Object) { f.SetActiveObjects(o) }

func (f *fakeSurface) SetActiveObjects(objs ...*canvas.Object) {
	had := len(f.active) > 0
	f.active = slices.Clone(objs)
	switch {
	case len(objs) == 0 && had:
		f.emit(canvas.SelectionCleared)
	case len(objs) > 0 && had:
		f.emit(canvas.SelectionUpdated)
	case len(objs) > 0:
		f.emit(canvas.SelectionCreated)
	}
}

func (f *fakeSurface) DiscardActiveObject() { f.SetActiveObjects() }

func (f *fakeSurface) CenterObject(o *canvas.Object) {
	f.CenterObjectAt(o, canvas.Point{X: f.width / 2, Y: f.height / 2})
}

func (f *fakeSurface) CenterObjectAt(o *canvas.Object, p canvas.Point) { o.SetCenter(p) }

func (f *fakeSurface) RenderAll() { f.renders++ }

func (f *fakeSurface) SetClipPath(o *canvas.Object) { f.clip = o }

func (f *fakeSurface) ClipPath() *canvas.Object { return f.clip }

func (f *fakeSurface) SetDimensions(w, h float64) { f.width, f.height = w, h }

func (f *fakeSurface) Dimensions() (float64, float64) { return f.width, f.height }

func (f *fakeSurface) SetViewport(zoom float64, offset canvas.Point) { f.zoom, f.offset = zoom, offset }

func (f *fakeSurface) Viewport() (float64, canvas.Point) { return f.zoom, f.offset }

func (f *fakeSurface) On(t canvas.EventType, fn canvas.Handler) func() {
	h := &fn
	f.handlers[t] = append(f.handlers[t], h)
	return func() {
		f.handlers[t] = slices.DeleteFunc(f.handlers[t], func(x *canvas.Handler) bool { return x == h })
	}
}

func (f *fakeSurface) subscribers() int {
	n := 0
	for _, hs := range f.handlers {
		n += len(hs)
	}
	return n
}

func (f *fakeSurface) emit(t canvas.EventType) {
	for _, h := range slices.Clone(f.handlers[t]) {
		(*h)(canvas.Event{Type: t})
	}
}
