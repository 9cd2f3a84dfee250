// Package raster draws a surface's workspace into an image offscreen.
// The shell uses it for the navigator thumbnail.
package raster

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/ha1tch/deluxedesign/internal/canvas"
	"github.com/ha1tch/deluxedesign/internal/paint"
)

// Workspace renders the clip region of s scaled to fit within maxW by
// maxH pixels. It returns nil if s has no clip path.
func Workspace(s canvas.Surface, maxW, maxH int) image.Image {
	ws := s.ClipPath()
	if ws == nil || ws.Width <= 0 || ws.Height <= 0 || maxW <= 0 || maxH <= 0 {
		return nil
	}

	scale := math.Min(float64(maxW)/ws.Width, float64(maxH)/ws.Height)
	w := max(int(math.Round(ws.Width*scale)), 1)
	h := max(int(math.Round(ws.Height*scale)), 1)

	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	dc.Translate(-ws.Left, -ws.Top)

	for _, o := range s.Objects() {
		drawObject(dc, o, scale)
	}
	return dc.Image()
}

func drawObject(dc *gg.Context, o *canvas.Object, scale float64) {
	c := o.CenterPoint()

	dc.Push()
	defer dc.Pop()
	if o.Angle != 0 {
		dc.RotateAbout(gg.Radians(o.Angle), c.X, c.Y)
	}

	if canvas.IsTextKind(o.Kind) {
		dc.SetColor(paint.ParseOrTransparent(o.Fill))
		dc.DrawStringAnchored(o.Text, c.X, c.Y, 0.5, 0.5)
		return
	}

	switch o.Kind {
	case canvas.KindCircle:
		dc.DrawCircle(c.X, c.Y, o.Radius)
	case canvas.KindRect:
		if o.RX > 0 {
			dc.DrawRoundedRectangle(o.Left, o.Top, o.Width, o.Height, o.RX)
		} else {
			dc.DrawRectangle(o.Left, o.Top, o.Width, o.Height)
		}
	case canvas.KindTriangle:
		dc.MoveTo(o.Left+o.Width/2, o.Top)
		dc.LineTo(o.Left+o.Width, o.Top+o.Height)
		dc.LineTo(o.Left, o.Top+o.Height)
		dc.ClosePath()
	case canvas.KindPolygon:
		for i, p := range o.Points {
			if i == 0 {
				dc.MoveTo(o.Left+p.X, o.Top+p.Y)
				continue
			}
			dc.LineTo(o.Left+p.X, o.Top+p.Y)
		}
		dc.ClosePath()
	default:
		return
	}

	dc.SetColor(paint.ParseOrTransparent(o.Fill))
	if o.Stroke == "" || o.StrokeWidth <= 0 {
		dc.Fill()
		return
	}
	dc.FillPreserve()
	dc.SetColor(paint.ParseOrTransparent(o.Stroke))
	dc.SetLineWidth(o.StrokeWidth * scale)
	dc.Stroke()
}
