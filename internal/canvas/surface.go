// Package canvas is the 2D scene the editor draws on. It owns objects,
// selection, hit-testing and the viewport; the editor only talks to it
// through the Surface interface.
package canvas

// EventType names a scene event
type EventType string

const (
	SelectionCreated EventType = "selection:created"
	SelectionUpdated EventType = "selection:updated"
	SelectionCleared EventType = "selection:cleared"
	ObjectAdded      EventType = "object:added"
	AfterRender      EventType = "after:render"
)

// Event is passed to handlers registered with Surface.On
type Event struct {
	Type       EventType
	Selected   []*Object
	Deselected []*Object
	Target     *Object
}

// Handler receives scene events
type Handler func(Event)

// Surface is the set of scene capabilities the editor relies on.
type Surface interface {
	// Add inserts objects on top of the stack
	Add(objs ...*Object)
	// Objects returns every object in stacking order
	Objects() []*Object
	// ActiveObjects returns the current selection
	ActiveObjects() []*Object
	SetActiveObject(o *Object)
	SetActiveObjects(objs ...*Object)
	DiscardActiveObject()

	// CenterObject centers o on the surface
	CenterObject(o *Object)
	// CenterObjectAt moves o so that its center lies at p
	CenterObjectAt(o *Object, p Point)

	// RenderAll requests a redraw
	RenderAll()

	SetClipPath(o *Object)
	ClipPath() *Object

	SetDimensions(width, height float64)
	Dimensions() (width, height float64)

	// SetViewport sets the scene-to-screen transform:
	// screen = scene*zoom + offset
	SetViewport(zoom float64, offset Point)
	Viewport() (zoom float64, offset Point)

	// On subscribes fn to events of type t. Calling the returned
	// function removes the subscription.
	On(t EventType, fn Handler) (off func())
}
