package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/deluxedesign/internal/canvas"
)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func newScene() (*canvas.Scene, *canvas.Object) {
	s := canvas.NewScene(1000, 1000)
	ws := canvas.NewRect(900, 1200)
	ws.Name = "clip"
	ws.Fill = "white"
	ws.Selectable = false
	s.Add(ws)
	s.CenterObject(ws)
	s.SetClipPath(ws)
	return s, ws
}

func TestWorkspaceWithoutClip(t *testing.T) {
	assert.Nil(t, Workspace(canvas.NewScene(10, 10), 100, 100))
}

func TestWorkspaceScalesToFit(t *testing.T) {
	s, _ := newScene()
	img := Workspace(s, 90, 200)
	require.NotNil(t, img)
	assert.Equal(t, 90, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestWorkspaceDrawsObjects(t *testing.T) {
	s, ws := newScene()
	rect := canvas.NewRect(400, 400)
	rect.Fill = "#ff0000"
	rect.Stroke = "#0000ff"
	rect.StrokeWidth = 2
	s.CenterObjectAt(rect, ws.CenterPoint())
	s.Add(rect)

	img := Workspace(s, 90, 120)
	require.NotNil(t, img)

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba(img.At(45, 60)))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(img.At(2, 2)))
}

func TestWorkspaceDrawsRotatedTriangle(t *testing.T) {
	s, ws := newScene()
	tri := canvas.NewTriangle(400, 400)
	tri.Fill = "black"
	tri.Angle = 180
	s.CenterObjectAt(tri, ws.CenterPoint())
	s.Add(tri)

	img := Workspace(s, 90, 120)
	// pointing down: wide at the top of its box, empty near the top corners of the bottom
	top := ws.CenterPoint().Y - 190
	bottom := ws.CenterPoint().Y + 190
	left := ws.CenterPoint().X - 190
	scale := 0.1
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgba(img.At(int((left-ws.Left)*scale), int((top-ws.Top)*scale))))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(img.At(int((left-ws.Left)*scale), int((bottom-ws.Top)*scale))))
}
