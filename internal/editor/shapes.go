package editor

import "github.com/ha1tch/deluxedesign/internal/canvas"

// Shape presets
const (
	circleRadius   = 225
	shapeWidth     = 400
	shapeHeight    = 400
	softCornerRad  = 50
	diamondWidth   = 400
	diamondHeight  = 400
	textFontSize   = 32
	presetPosition = 100
)

func (e *Editor) styled(o *canvas.Object) *canvas.Object {
	o.Left = presetPosition
	o.Top = presetPosition
	o.Fill = e.style.FillColor
	o.Stroke = e.style.StrokeColor
	o.StrokeWidth = e.style.StrokeWidth
	return o
}

func (e *Editor) AddCircle() {
	e.addToCanvas(e.styled(canvas.NewCircle(circleRadius)))
}

func (e *Editor) AddRectangle() {
	e.addToCanvas(e.styled(canvas.NewRect(shapeWidth, shapeHeight)))
}

// AddSoftRectangle adds a rectangle with rounded corners
func (e *Editor) AddSoftRectangle() {
	o := e.styled(canvas.NewRect(shapeWidth, shapeHeight))
	o.RX = softCornerRad
	o.RY = softCornerRad
	e.addToCanvas(o)
}

func (e *Editor) AddTriangle() {
	e.addToCanvas(e.styled(canvas.NewTriangle(shapeWidth, shapeHeight)))
}

// AddInverseTriangle adds a triangle pointing down
func (e *Editor) AddInverseTriangle() {
	o := e.styled(canvas.NewTriangle(shapeWidth, shapeHeight))
	o.Angle = 180
	e.addToCanvas(o)
}

// AddDiamond adds a polygon through the edge midpoints of a fixed box
func (e *Editor) AddDiamond() {
	o := canvas.NewPolygon([]canvas.Point{
		{X: diamondWidth / 2, Y: 0},
		{X: diamondWidth, Y: diamondHeight / 2},
		{X: diamondWidth / 2, Y: diamondHeight},
		{X: 0, Y: diamondHeight / 2},
	})
	e.addToCanvas(e.styled(o))
}

// AddText adds a text box painted with the default fill
func (e *Editor) AddText(text string) {
	o := e.styled(canvas.NewTextbox(text, textFontSize))
	o.Stroke = ""
	o.StrokeWidth = 0
	e.addToCanvas(o)
}
