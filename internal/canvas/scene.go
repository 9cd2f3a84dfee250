package canvas

import "slices"

type subscription struct {
	fn Handler
}

// Scene is the in-memory Surface implementation driven by the UI shell
type Scene struct {
	objects []*Object
	active  []*Object
	clip    *Object

	width  float64
	height float64
	zoom   float64
	offset Point

	handlers map[EventType][]*subscription
	renders  int
	disposed bool
}

// NewScene creates an empty scene of the given pixel size
func NewScene(width, height float64) *Scene {
	return &Scene{
		width:    width,
		height:   height,
		zoom:     1,
		handlers: make(map[EventType][]*subscription),
	}
}

var _ Surface = (*Scene)(nil)

func (s *Scene) Add(objs ...*Object) {
	for _, o := range objs {
		if o == nil || slices.Contains(s.objects, o) {
			continue
		}
		s.objects = append(s.objects, o)
		s.emit(Event{Type: ObjectAdded, Target: o})
	}
}

func (s *Scene) Objects() []*Object {
	return slices.Clone(s.objects)
}

func (s *Scene) ActiveObjects() []*Object {
	return slices.Clone(s.active)
}

func (s *Scene) SetActiveObject(o *Object) {
	if o == nil {
		s.DiscardActiveObject()
		return
	}
	s.SetActiveObjects(o)
}

// SetActiveObjects replaces the selection. Objects that are not
// selectable or not part of the scene are skipped.
func (s *Scene) SetActiveObjects(objs ...*Object) {
	var next []*Object
	for _, o := range objs {
		if o == nil || !o.Selectable || !slices.Contains(s.objects, o) || slices.Contains(next, o) {
			continue
		}
		next = append(next, o)
	}
	s.setSelection(next)
}

func (s *Scene) DiscardActiveObject() {
	s.setSelection(nil)
}

func (s *Scene) setSelection(next []*Object) {
	prev := s.active
	if slices.Equal(prev, next) {
		return
	}
	s.active = next

	var deselected []*Object
	for _, o := range prev {
		if !slices.Contains(next, o) {
			deselected = append(deselected, o)
		}
	}
	var selected []*Object
	for _, o := range next {
		if !slices.Contains(prev, o) {
			selected = append(selected, o)
		}
	}

	switch {
	case len(next) == 0:
		s.emit(Event{Type: SelectionCleared, Deselected: deselected})
	case len(prev) == 0:
		s.emit(Event{Type: SelectionCreated, Selected: selected})
	default:
		s.emit(Event{Type: SelectionUpdated, Selected: selected, Deselected: deselected})
	}
}

func (s *Scene) CenterObject(o *Object) {
	s.CenterObjectAt(o, Point{X: s.width / 2, Y: s.height / 2})
}

func (s *Scene) CenterObjectAt(o *Object, p Point) {
	o.SetCenter(p)
}

func (s *Scene) RenderAll() {
	s.renders++
	s.emit(Event{Type: AfterRender})
}

// Renders returns how many redraws have been requested
func (s *Scene) Renders() int {
	return s.renders
}

func (s *Scene) SetClipPath(o *Object) {
	s.clip = o
}

func (s *Scene) ClipPath() *Object {
	return s.clip
}

func (s *Scene) SetDimensions(width, height float64) {
	s.width = width
	s.height = height
}

func (s *Scene) Dimensions() (float64, float64) {
	return s.width, s.height
}

func (s *Scene) SetViewport(zoom float64, offset Point) {
	if zoom <= 0 {
		zoom = 1
	}
	s.zoom = zoom
	s.offset = offset
}

func (s *Scene) Viewport() (float64, Point) {
	return s.zoom, s.offset
}

// ToScene converts a point on the surface to scene coordinates
func (s *Scene) ToScene(p Point) Point {
	return Point{X: (p.X - s.offset.X) / s.zoom, Y: (p.Y - s.offset.Y) / s.zoom}
}

// ToScreen converts a scene point to surface coordinates
func (s *Scene) ToScreen(p Point) Point {
	return Point{X: p.X*s.zoom + s.offset.X, Y: p.Y*s.zoom + s.offset.Y}
}

func (s *Scene) On(t EventType, fn Handler) func() {
	if s.disposed || fn == nil {
		return func() {}
	}
	sub := &subscription{fn: fn}
	s.handlers[t] = append(s.handlers[t], sub)
	return func() {
		s.handlers[t] = slices.DeleteFunc(s.handlers[t], func(x *subscription) bool { return x == sub })
	}
}

func (s *Scene) emit(e Event) {
	// Handlers may unsubscribe while we iterate
	for _, sub := range slices.Clone(s.handlers[e.Type]) {
		sub.fn(e)
	}
}

// FindTarget returns the topmost selectable object containing the scene
// point p, or nil.
func (s *Scene) FindTarget(p Point) *Object {
	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		if o.Selectable && o.Contains(p) {
			return o
		}
	}
	return nil
}

// PointerDown handles a click at scene point p. A hit selects the
// target, or toggles it in the selection when additive is set. A miss
// clears the selection. The target is returned.
func (s *Scene) PointerDown(p Point, additive bool) *Object {
	target := s.FindTarget(p)
	switch {
	case target == nil:
		if !additive {
			s.DiscardActiveObject()
		}
	case additive && slices.Contains(s.active, target):
		s.setSelection(slices.DeleteFunc(slices.Clone(s.active), func(o *Object) bool { return o == target }))
	case additive:
		s.setSelection(append(slices.Clone(s.active), target))
	case !slices.Contains(s.active, target):
		s.SetActiveObject(target)
	}
	return target
}

// MoveActive translates every selected object
func (s *Scene) MoveActive(dx, dy float64) {
	for _, o := range s.active {
		o.Move(dx, dy)
	}
}

// Dispose drops all objects and subscriptions. The scene must not be
// used afterwards.
func (s *Scene) Dispose() {
	s.objects = nil
	s.active = nil
	s.clip = nil
	s.handlers = make(map[EventType][]*subscription)
	s.disposed = true
}
