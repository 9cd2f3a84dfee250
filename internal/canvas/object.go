package canvas

import (
	"math"

	"github.com/oklog/ulid/v2"
)

// Kind identifies the shape type of an Object
type Kind string

const (
	KindRect     Kind = "rect"
	KindCircle   Kind = "circle"
	KindTriangle Kind = "triangle"
	KindPolygon  Kind = "polygon"
	KindText     Kind = "text"
	KindIText    Kind = "i-text"
	KindTextbox  Kind = "textbox"
)

// IsTextKind reports whether objects of kind k carry text. Text objects
// have no stroke; callers paint them through Fill instead.
func IsTextKind(k Kind) bool {
	return k == KindText || k == KindIText || k == KindTextbox
}

// Point is a position in scene coordinates
type Point struct {
	X, Y float64
}

// Object is a drawable owned by a Scene. Left and Top locate the
// unrotated bounding box; Angle rotates it about its center.
type Object struct {
	ID   string
	Name string
	Kind Kind

	Left   float64
	Top    float64
	Width  float64
	Height float64
	Angle  float64

	Radius float64
	RX, RY float64

	// Polygon vertices, relative to the top-left of the bounding box
	Points []Point

	Text     string
	FontSize float64

	Fill        string
	Stroke      string
	StrokeWidth float64

	Selectable bool
}

func newObject(kind Kind, width, height float64) *Object {
	return &Object{
		ID:         ulid.Make().String(),
		Kind:       kind,
		Width:      width,
		Height:     height,
		Selectable: true,
	}
}

// NewRect creates a rectangle of the given size at the origin
func NewRect(width, height float64) *Object {
	return newObject(KindRect, width, height)
}

// NewCircle creates a circle of the given radius at the origin
func NewCircle(radius float64) *Object {
	o := newObject(KindCircle, radius*2, radius*2)
	o.Radius = radius
	return o
}

// NewTriangle creates an isosceles triangle with its apex at the top
// center of the box.
func NewTriangle(width, height float64) *Object {
	return newObject(KindTriangle, width, height)
}

// NewPolygon creates a polygon through points. The points are
// normalized so the bounding box starts at zero.
func NewPolygon(points []Point) *Object {
	if len(points) == 0 {
		return newObject(KindPolygon, 0, 0)
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	o := newObject(KindPolygon, maxX-minX, maxY-minY)
	o.Points = make([]Point, len(points))
	for i, p := range points {
		o.Points[i] = Point{X: p.X - minX, Y: p.Y - minY}
	}
	return o
}

// NewTextbox creates a text object. Its box is estimated from the
// rune count since no font metrics are available to the scene.
func NewTextbox(text string, fontSize float64) *Object {
	n := float64(len([]rune(text)))
	o := newObject(KindTextbox, math.Max(n, 1)*fontSize*0.6, fontSize*1.16)
	o.Text = text
	o.FontSize = fontSize
	return o
}

// CenterPoint returns the center of the object in scene coordinates
func (o *Object) CenterPoint() Point {
	return Point{X: o.Left + o.Width/2, Y: o.Top + o.Height/2}
}

// SetCenter moves the object so that its center lies at p
func (o *Object) SetCenter(p Point) {
	o.Left = p.X - o.Width/2
	o.Top = p.Y - o.Height/2
}

// Move translates the object by dx, dy
func (o *Object) Move(dx, dy float64) {
	o.Left += dx
	o.Top += dy
}

// toScene maps a point in box-local coordinates to the scene, applying
// the rotation about the center.
func (o *Object) toScene(p Point) Point {
	c := o.CenterPoint()
	x := o.Left + p.X - c.X
	y := o.Top + p.Y - c.Y
	if o.Angle == 0 {
		return Point{X: x + c.X, Y: y + c.Y}
	}
	sin, cos := math.Sincos(o.Angle * math.Pi / 180)
	return Point{X: x*cos - y*sin + c.X, Y: x*sin + y*cos + c.Y}
}

// toLocal is the inverse of toScene
func (o *Object) toLocal(p Point) Point {
	c := o.CenterPoint()
	x := p.X - c.X
	y := p.Y - c.Y
	if o.Angle != 0 {
		sin, cos := math.Sincos(-o.Angle * math.Pi / 180)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return Point{X: x + c.X - o.Left, Y: y + c.Y - o.Top}
}

// Outline returns the vertices of the object in scene coordinates.
// Circles and text return their rotated bounding box.
func (o *Object) Outline() []Point {
	var local []Point
	switch o.Kind {
	case KindTriangle:
		local = []Point{{X: o.Width / 2, Y: 0}, {X: o.Width, Y: o.Height}, {X: 0, Y: o.Height}}
	case KindPolygon:
		local = o.Points
	default:
		local = []Point{{X: 0, Y: 0}, {X: o.Width, Y: 0}, {X: o.Width, Y: o.Height}, {X: 0, Y: o.Height}}
	}

	out := make([]Point, len(local))
	for i, p := range local {
		out[i] = o.toScene(p)
	}
	return out
}

// Corners returns the rotated bounding box, clockwise from the top-left
func (o *Object) Corners() []Point {
	return []Point{
		o.toScene(Point{X: 0, Y: 0}),
		o.toScene(Point{X: o.Width, Y: 0}),
		o.toScene(Point{X: o.Width, Y: o.Height}),
		o.toScene(Point{X: 0, Y: o.Height}),
	}
}

// Contains reports whether the scene point p lies inside the object
func (o *Object) Contains(p Point) bool {
	l := o.toLocal(p)
	switch o.Kind {
	case KindCircle:
		dx := l.X - o.Radius
		dy := l.Y - o.Radius
		return dx*dx+dy*dy <= o.Radius*o.Radius
	case KindTriangle:
		return insidePolygon(l, []Point{{X: o.Width / 2, Y: 0}, {X: o.Width, Y: o.Height}, {X: 0, Y: o.Height}})
	case KindPolygon:
		return insidePolygon(l, o.Points)
	default:
		return l.X >= 0 && l.X <= o.Width && l.Y >= 0 && l.Y <= o.Height
	}
}

// Even-odd ray casting
func insidePolygon(p Point, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
