package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxedesign/internal/canvas"
	"github.com/ha1tch/deluxedesign/internal/paint"
	"github.com/ha1tch/deluxedesign/internal/tool"
)

var (
	selectionBorder = rl.Color{0x3b, 0x82, 0xf6, 255}
	workspaceShadow = rl.Color{0, 0, 0, 80}
)

func toColor(s string) rl.Color {
	c := paint.ParseOrTransparent(s)
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Draw application
func (app *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{40, 40, 40, 255})

	area := app.canvasRect()
	app.drawCanvas(area)
	app.drawNavbar()
	app.drawSidebar()
	app.drawPanel()
	app.drawToolbar(area)
	app.drawRightPanel()
	app.drawFooter(area)

	rl.EndDrawing()
}

func (app *App) drawNavbar() {
	screenWidth := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenWidth, navbarHeight, rl.Color{60, 60, 60, 255})
	rl.DrawText("DELUXE DESIGN", 10, 20, fontSize, rl.White)
	app.selectButton.draw()
	app.exportButton.draw()

	info := fmt.Sprintf("TOOL: %s | OBJECTS: %d | SELECTED: %d",
		app.tools.Active(), len(app.scene.Objects())-1, len(app.editor.Selected()))
	rl.DrawText(info, 280, 20, fontSize, rl.White)
}

func (app *App) drawSidebar() {
	screenHeight := int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, navbarHeight, leftPanel, screenHeight-navbarHeight, rl.Color{50, 50, 50, 255})
	for i := range app.toolButtons {
		app.toolButtons[i].draw()
	}
}

func (app *App) drawPanel() {
	if !app.hasPanel() {
		return
	}

	screenHeight := int32(rl.GetScreenHeight())
	rl.DrawRectangle(leftPanel, navbarHeight, toolPanel, screenHeight-navbarHeight, rl.Color{55, 55, 55, 255})
	rl.DrawLine(leftPanel+toolPanel, navbarHeight, leftPanel+toolPanel, screenHeight, rl.Color{70, 70, 70, 255})

	switch app.tools.Active() {
	case tool.Shapes:
		panelHeader("SHAPES", "ADD SHAPES TO YOUR CANVAS")
		for i := range app.shapeButtons {
			app.shapeButtons[i].draw()
		}
	case tool.Text:
		panelHeader("TEXT", "ADD TEXT TO YOUR CANVAS")
		app.textButton.draw()
	case tool.Fill:
		panelHeader("FILL COLOR", "ADD FILL COLOR TO YOUR ELEMENT")
		current := app.editor.ActiveFillColor()
		for i := range app.swatches {
			app.swatches[i].draw(current)
		}
	case tool.StrokeColor:
		panelHeader("STROKE COLOR", "ADD STROKE COLOR TO YOUR ELEMENT")
		current := app.editor.ActiveStrokeColor()
		for i := range app.swatches {
			app.swatches[i].draw(current)
		}
	case tool.StrokeWidth:
		panelHeader("STROKE WIDTH", "MODIFY THE STROKE OF YOUR ELEMENT")
		app.strokeSlider.draw()
		rl.DrawText(fmt.Sprintf("%.0f", app.strokeSlider.value), int32(app.strokeSlider.rect.X), int32(app.strokeSlider.rect.Y+25), fontSize, rl.White)
	}
}

func panelHeader(title, description string) {
	rl.DrawText(title, leftPanel+10, navbarHeight+12, fontSize, rl.White)
	rl.DrawText(description, leftPanel+10, navbarHeight+28, fontSize, rl.LightGray)
	rl.DrawLine(leftPanel, navbarHeight+45, leftPanel+toolPanel, navbarHeight+45, rl.Color{70, 70, 70, 255})
}

func (app *App) drawToolbar(area rl.Rectangle) {
	rl.DrawRectangle(int32(area.X), navbarHeight, int32(area.Width), toolbarHeight, rl.Color{50, 50, 50, 255})
	if len(app.editor.Selected()) == 0 {
		return
	}

	for i := range app.toolbar {
		btn := &app.toolbar[i]
		btn.draw()

		// Swatch under the label
		sw := rl.Rectangle{X: btn.rect.X + 4, Y: btn.rect.Y + btn.rect.Height - 6, Width: btn.rect.Width - 8, Height: 3}
		switch btn.tool {
		case tool.Fill:
			rl.DrawRectangleRec(sw, toColor(app.editor.ActiveFillColor()))
		case tool.StrokeColor:
			rl.DrawRectangleRec(sw, toColor(app.editor.ActiveStrokeColor()))
		case tool.StrokeWidth:
			rl.DrawText(fmt.Sprintf("%.0f", app.editor.ActiveStrokeWidth()), int32(btn.rect.X+btn.rect.Width-14), int32(btn.rect.Y+4), fontSize, rl.LightGray)
		}
	}
}

func (app *App) drawRightPanel() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())
	x := screenWidth - rightPanel
	rl.DrawRectangle(x, navbarHeight, rightPanel, screenHeight-navbarHeight, rl.Color{50, 50, 50, 255})
	rl.DrawText("NAVIGATOR", x+10, navbarHeight+10, fontSize, rl.White)

	if app.hasPreview {
		px := x + (rightPanel-app.preview.Width)/2
		py := int32(navbarHeight + 30)
		rl.DrawTexture(app.preview, px, py, rl.White)
		rl.DrawRectangleLines(px, py, app.preview.Width, app.preview.Height, rl.Color{70, 70, 70, 255})
	}

	// Properties of the first selected object
	sel := app.editor.Selected()
	if len(sel) == 0 {
		return
	}
	o := sel[0]
	y := int32(navbarHeight + 30 + previewHeight + 20)
	lines := []string{
		fmt.Sprintf("KIND: %s", o.Kind),
		fmt.Sprintf("POS: %.0f, %.0f", o.Left, o.Top),
		fmt.Sprintf("SIZE: %.0fX%.0f", o.Width, o.Height),
		fmt.Sprintf("ANGLE: %.0f", o.Angle),
		fmt.Sprintf("FILL: %s", o.Fill),
		fmt.Sprintf("STROKE: %s", o.Stroke),
	}
	for i, l := range lines {
		rl.DrawText(l, x+10, y+int32(i)*14, fontSize, rl.LightGray)
	}
}

func (app *App) drawFooter(area rl.Rectangle) {
	zoom, _ := app.scene.Viewport()
	w, h := app.scene.Dimensions()
	y := int32(area.Y + area.Height)
	rl.DrawRectangle(int32(area.X), y, int32(area.Width), footerHeight, rl.Color{60, 60, 60, 255})
	rl.DrawText(fmt.Sprintf("ZOOM: %.0f%% | VIEW: %.0fX%.0f", zoom*100, w, h), int32(area.X)+10, y+8, fontSize, rl.White)
}

// drawCanvas paints the scene inside the container
func (app *App) drawCanvas(area rl.Rectangle) {
	rl.BeginScissorMode(int32(area.X), int32(area.Y), int32(area.Width), int32(area.Height))

	// Draw checkerboard background
	tileSize := int32(16)
	for y := int32(0); y < int32(area.Height)/tileSize+1; y++ {
		for x := int32(0); x < int32(area.Width)/tileSize+1; x++ {
			if (x+y)%2 == 0 {
				rl.DrawRectangle(int32(area.X)+x*tileSize, int32(area.Y)+y*tileSize, tileSize, tileSize, rl.Color{45, 45, 45, 255})
			}
		}
	}

	clip := app.scene.ClipPath()
	var clipRect rl.Rectangle
	if clip != nil {
		clipRect = app.screenRect(area, clip)
		shadow := clipRect
		shadow.X += 4
		shadow.Y += 4
		rl.DrawRectangleRec(shadow, workspaceShadow)
		app.drawObject(area, clip)
	}
	rl.EndScissorMode()

	// Everything else is clipped to the workspace
	if clip != nil {
		r := rl.GetCollisionRec(area, clipRect)
		rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))
	} else {
		rl.BeginScissorMode(int32(area.X), int32(area.Y), int32(area.Width), int32(area.Height))
	}
	for _, o := range app.scene.Objects() {
		if o != clip {
			app.drawObject(area, o)
		}
	}
	rl.EndScissorMode()

	// Selection controls sit above the clip
	rl.BeginScissorMode(int32(area.X), int32(area.Y), int32(area.Width), int32(area.Height))
	for _, o := range app.editor.Selected() {
		app.drawSelection(area, o)
	}
	rl.EndScissorMode()
}

func (app *App) toScreen(area rl.Rectangle, p canvas.Point) rl.Vector2 {
	s := app.scene.ToScreen(p)
	return rl.Vector2{X: area.X + float32(s.X), Y: area.Y + float32(s.Y)}
}

func (app *App) screenRect(area rl.Rectangle, o *canvas.Object) rl.Rectangle {
	tl := app.toScreen(area, canvas.Point{X: o.Left, Y: o.Top})
	zoom, _ := app.scene.Viewport()
	return rl.Rectangle{X: tl.X, Y: tl.Y, Width: float32(o.Width * zoom), Height: float32(o.Height * zoom)}
}

func (app *App) screenPoints(area rl.Rectangle, pts []canvas.Point) []rl.Vector2 {
	out := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		out[i] = app.toScreen(area, p)
	}
	// raylib fills counter-clockwise fans only
	sum := float32(0)
	for i := range out {
		a, b := out[i], out[(i+1)%len(out)]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum > 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (app *App) drawObject(area rl.Rectangle, o *canvas.Object) {
	zoom, _ := app.scene.Viewport()
	fill := toColor(o.Fill)
	stroke := toColor(o.Stroke)
	thick := float32(o.StrokeWidth * zoom)
	hasStroke := o.Stroke != "" && o.StrokeWidth > 0

	switch o.Kind {
	case canvas.KindCircle:
		c := app.toScreen(area, o.CenterPoint())
		r := float32(o.Radius * zoom)
		rl.DrawCircleV(c, r, fill)
		if hasStroke {
			rl.DrawRing(c, r-thick/2, r+thick/2, 0, 360, 64, stroke)
		}

	case canvas.KindRect:
		if o.RX > 0 && o.Angle == 0 {
			rec := app.screenRect(area, o)
			if hasStroke {
				outer := rl.Rectangle{X: rec.X - thick/2, Y: rec.Y - thick/2, Width: rec.Width + thick, Height: rec.Height + thick}
				rl.DrawRectangleRounded(outer, roundness(o.RX*zoom+float64(thick)/2, outer), 16, stroke)
				inner := rl.Rectangle{X: rec.X + thick/2, Y: rec.Y + thick/2, Width: rec.Width - thick, Height: rec.Height - thick}
				rl.DrawRectangleRounded(inner, roundness(o.RX*zoom-float64(thick)/2, inner), 16, fill)
			} else {
				rl.DrawRectangleRounded(rec, roundness(o.RX*zoom, rec), 16, fill)
			}
			return
		}
		app.drawPolygon(area, o.Outline(), fill, stroke, thick, hasStroke)

	case canvas.KindTriangle, canvas.KindPolygon:
		app.drawPolygon(area, o.Outline(), fill, stroke, thick, hasStroke)

	case canvas.KindText, canvas.KindIText, canvas.KindTextbox:
		tl := app.toScreen(area, canvas.Point{X: o.Left, Y: o.Top})
		rl.DrawText(o.Text, int32(tl.X), int32(tl.Y), int32(o.FontSize*zoom), fill)
	}
}

func (app *App) drawPolygon(area rl.Rectangle, outline []canvas.Point, fill, stroke rl.Color, thick float32, hasStroke bool) {
	pts := app.screenPoints(area, outline)
	if len(pts) < 3 {
		return
	}
	rl.DrawTriangleFan(pts, fill)
	if hasStroke {
		for i := range pts {
			rl.DrawLineEx(pts[i], pts[(i+1)%len(pts)], thick, stroke)
		}
	}
}

// roundness converts a corner radius to raylib's 0..1 ratio
func roundness(radius float64, rec rl.Rectangle) float32 {
	short := min(rec.Width, rec.Height)
	if short <= 0 || radius <= 0 {
		return 0
	}
	return clamp(float32(radius)*2/short, 0, 1)
}

func (app *App) drawSelection(area rl.Rectangle, o *canvas.Object) {
	corners := o.Corners()
	pts := make([]rl.Vector2, len(corners))
	for i, c := range corners {
		pts[i] = app.toScreen(area, c)
	}
	for i := range pts {
		rl.DrawLineEx(pts[i], pts[(i+1)%len(pts)], 1.5, selectionBorder)
	}
	for _, p := range pts {
		rl.DrawCircleV(p, 5, rl.White)
		rl.DrawCircleLinesV(p, 5, selectionBorder)
	}
}
