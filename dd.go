package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/ha1tch/deluxedesign/internal/canvas"
	"github.com/ha1tch/deluxedesign/internal/config"
	"github.com/ha1tch/deluxedesign/internal/editor"
	"github.com/ha1tch/deluxedesign/internal/paint"
	"github.com/ha1tch/deluxedesign/internal/raster"
	"github.com/ha1tch/deluxedesign/internal/tool"
)

const (
	fontSize      = 8
	navbarHeight  = 50
	toolbarHeight = 40
	footerHeight  = 24
	leftPanel     = 100
	toolPanel     = 200
	rightPanel    = 200
	previewWidth  = 180
	previewHeight = 240
	defaultText   = "TEXT"
)

// Application state
type App struct {
	// Canvas
	scene   *canvas.Scene
	session *editor.Session
	editor  *editor.Editor

	// Tools
	tools *tool.State

	// UI
	selectButton Button
	exportButton Button
	toolButtons  []ToolButton
	toolbar      []ToolButton
	shapeButtons []Button
	shapeActions []func()
	textButton   Button
	swatches     []Swatch
	strokeSlider Slider

	// State
	isDragging bool
	lastMouse  rl.Vector2

	// Navigator
	preview      rl.Texture2D
	hasPreview   bool
	previewDirty bool
	offs         []func()

	log *logrus.Entry
}

// Initialize application
func NewApp(cfg config.Config) (*App, error) {
	app := &App{
		log:          logrus.WithField("component", "app"),
		previewDirty: true,
	}
	app.tools = tool.NewState(tool.WithListener(func(from, to tool.Tool) {
		// a tool switch ends any drag in progress
		app.isDragging = false
	}))

	// The scene lives as long as the window; the session only borrows it
	area := app.canvasRect()
	app.scene = canvas.NewScene(float64(area.Width), float64(area.Height))
	session, err := editor.NewSession(app.scene, float64(area.Width), float64(area.Height),
		editor.WithStyle(cfg.Style),
		editor.WithWorkspaceSize(cfg.WorkspaceWidth, cfg.WorkspaceHeight),
		editor.WithClearSelection(app.tools.ClearSelection),
	)
	if err != nil {
		app.scene.Dispose()
		return nil, err
	}
	app.session = session
	app.editor = session.Editor()

	markDirty := func(canvas.Event) { app.previewDirty = true }
	app.offs = append(app.offs,
		app.scene.On(canvas.AfterRender, markDirty),
		app.scene.On(canvas.ObjectAdded, markDirty),
	)

	// Navbar buttons
	app.selectButton = Button{rect: rl.Rectangle{X: 130, Y: 10, Width: 60, Height: 30}, text: "SELECT"}
	app.exportButton = Button{rect: rl.Rectangle{X: 200, Y: 10, Width: 60, Height: 30}, text: "EXPORT"}

	// Sidebar tools
	tools := []struct {
		tool tool.Tool
		name string
	}{
		{tool.Shapes, "SHAPES"},
		{tool.Text, "TEXT"},
		{tool.Image, "IMAGE"},
		{tool.Draw, "DRAW"},
		{tool.Settings, "SETTINGS"},
	}
	y := float32(navbarHeight + 10)
	for i, t := range tools {
		app.toolButtons = append(app.toolButtons, ToolButton{
			Button: Button{rect: rl.Rectangle{X: 10, Y: y + float32(i)*45, Width: 80, Height: 36}, text: t.name},
			tool:   t.tool,
		})
	}

	// Toolbar entries are positioned every frame
	app.toolbar = []ToolButton{
		{Button: Button{text: "FILL"}, tool: tool.Fill},
		{Button: Button{text: "STROKE"}, tool: tool.StrokeColor},
		{Button: Button{text: "WIDTH"}, tool: tool.StrokeWidth},
	}

	// Shape panel
	shapes := []struct {
		name string
		add  func()
	}{
		{"CIRCLE", app.editor.AddCircle},
		{"SOFT RECT", app.editor.AddSoftRectangle},
		{"RECT", app.editor.AddRectangle},
		{"TRIANGLE", app.editor.AddTriangle},
		{"INV TRI", app.editor.AddInverseTriangle},
		{"DIAMOND", app.editor.AddDiamond},
	}
	for i, s := range shapes {
		app.shapeButtons = append(app.shapeButtons, Button{
			rect: rl.Rectangle{X: leftPanel + 10 + float32(i%3)*62, Y: navbarHeight + 60 + float32(i/3)*62, Width: 56, Height: 56},
			text: s.name,
		})
		app.shapeActions = append(app.shapeActions, s.add)
	}

	app.textButton = Button{rect: rl.Rectangle{X: leftPanel + 10, Y: navbarHeight + 60, Width: toolPanel - 20, Height: 36}, text: "ADD TEXTBOX"}

	// Color panels share one palette
	for i, c := range paint.Palette {
		app.swatches = append(app.swatches, Swatch{
			rect:  rl.Rectangle{X: leftPanel + 10 + float32(i%4)*45, Y: navbarHeight + 60 + float32(i/4)*45, Width: 40, Height: 40},
			color: c,
		})
	}

	app.strokeSlider = Slider{
		rect:  rl.Rectangle{X: leftPanel + 10, Y: navbarHeight + 80, Width: toolPanel - 20, Height: 20},
		value: float32(app.editor.ActiveStrokeWidth()),
		min:   0,
		max:   50,
		label: "STROKE WIDTH",
	}

	app.log.WithFields(logrus.Fields{
		"fill":         cfg.Style.FillColor,
		"stroke":       cfg.Style.StrokeColor,
		"stroke_width": cfg.Style.StrokeWidth,
	}).Info("Editor ready")
	return app, nil
}

// hasPanel reports whether the active tool opens a panel next to the sidebar
func (app *App) hasPanel() bool {
	switch app.tools.Active() {
	case tool.Shapes, tool.Text, tool.Fill, tool.StrokeColor, tool.StrokeWidth:
		return true
	}
	return false
}

// canvasRect is the container the scene is sized to
func (app *App) canvasRect() rl.Rectangle {
	x := float32(leftPanel)
	if app.tools != nil && app.hasPanel() {
		x += toolPanel
	}
	y := float32(navbarHeight + toolbarHeight)
	w := float32(rl.GetScreenWidth()) - x - rightPanel
	h := float32(rl.GetScreenHeight()) - y - footerHeight
	return rl.Rectangle{X: x, Y: y, Width: max(w, 1), Height: max(h, 1)}
}

// Update application
func (app *App) Update() {
	mousePos := rl.GetMousePosition()

	if rl.IsKeyPressed(rl.KeyEscape) {
		app.scene.DiscardActiveObject()
		app.scene.RenderAll()
	}

	// Navbar
	if app.selectButton.clicked(mousePos) {
		app.tools.Change(tool.Select)
	}
	if app.exportButton.clicked(mousePos) {
		app.tools.Change(tool.Export)
	}

	// Sidebar
	for i := range app.toolButtons {
		if app.toolButtons[i].clicked(mousePos) {
			app.tools.Change(app.toolButtons[i].tool)
		}
	}

	// Toolbar, only meaningful with a selection
	area := app.canvasRect()
	if len(app.editor.Selected()) > 0 {
		for i := range app.toolbar {
			btn := &app.toolbar[i]
			btn.rect = rl.Rectangle{X: area.X + 10 + float32(i)*70, Y: navbarHeight + 5, Width: 64, Height: 30}
			if btn.clicked(mousePos) {
				app.tools.Change(btn.tool)
			}
		}
	}

	app.updatePanel(mousePos)

	// The panel may have opened or closed above
	area = app.canvasRect()
	app.session.Resize(float64(area.Width), float64(area.Height))
	app.updateCanvas(mousePos, area)

	for i := range app.toolButtons {
		app.toolButtons[i].selected = app.toolButtons[i].tool == app.tools.Active()
	}
	for i := range app.toolbar {
		app.toolbar[i].selected = app.toolbar[i].tool == app.tools.Active()
	}
	app.selectButton.selected = app.tools.Active() == tool.Select
	app.exportButton.selected = app.tools.Active() == tool.Export

	if app.previewDirty {
		app.refreshPreview()
	}
}

func (app *App) updatePanel(mousePos rl.Vector2) {
	switch app.tools.Active() {
	case tool.Shapes:
		for i := range app.shapeButtons {
			if app.shapeButtons[i].clicked(mousePos) {
				app.shapeActions[i]()
			}
		}
	case tool.Text:
		if app.textButton.clicked(mousePos) {
			app.editor.AddText(defaultText)
		}
	case tool.Fill:
		for i := range app.swatches {
			if app.swatches[i].clicked(mousePos) {
				app.editor.ChangeFillColor(app.swatches[i].color)
			}
		}
	case tool.StrokeColor:
		for i := range app.swatches {
			if app.swatches[i].clicked(mousePos) {
				app.editor.ChangeStrokeColor(app.swatches[i].color)
			}
		}
	case tool.StrokeWidth:
		if app.strokeSlider.update(mousePos) {
			app.editor.ChangeStrokeWidth(float64(app.strokeSlider.value))
		}
		if !app.strokeSlider.dragging {
			app.strokeSlider.value = float32(app.editor.ActiveStrokeWidth())
		}
	}
}

func (app *App) updateCanvas(mousePos rl.Vector2, area rl.Rectangle) {
	inside := rl.CheckCollisionPointRec(mousePos, area)
	local := canvas.Point{X: float64(mousePos.X - area.X), Y: float64(mousePos.Y - area.Y)}
	zoom, offset := app.scene.Viewport()

	// Handle zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 && inside {
		newZoom := float64(clamp(float32(zoom)*(1.0+wheel*0.1), 0.05, 8.0))

		// Zoom towards mouse position
		factor := newZoom / zoom
		offset.X = local.X - (local.X-offset.X)*factor
		offset.Y = local.Y - (local.Y-offset.Y)*factor
		app.scene.SetViewport(newZoom, offset)
		zoom = newZoom
	}

	// Handle panning with middle mouse button
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		offset.X += float64(delta.X)
		offset.Y += float64(delta.Y)
		app.scene.SetViewport(zoom, offset)
	}

	if inside && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		additive := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		target := app.scene.PointerDown(app.scene.ToScene(local), additive)
		app.isDragging = target != nil && !additive
		app.lastMouse = mousePos
		app.scene.RenderAll()
	}

	if app.isDragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		dx := float64(mousePos.X-app.lastMouse.X) / zoom
		dy := float64(mousePos.Y-app.lastMouse.Y) / zoom
		if dx != 0 || dy != 0 {
			app.scene.MoveActive(dx, dy)
		}
		app.lastMouse = mousePos
	}

	if app.isDragging && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.isDragging = false
		app.scene.RenderAll()
	}
}

// refreshPreview rasterizes the workspace into the navigator texture
func (app *App) refreshPreview() {
	app.previewDirty = false
	img := raster.Workspace(app.scene, previewWidth, previewHeight)
	if img == nil {
		return
	}

	rlImg := rl.NewImageFromImage(img)
	if app.hasPreview {
		rl.UnloadTexture(app.preview)
	}
	app.preview = rl.LoadTextureFromImage(rlImg)
	app.hasPreview = true
	rl.UnloadImage(rlImg)
}

// Close ends the editing session and releases the scene
func (app *App) Close() {
	app.session.Close()
	for _, off := range app.offs {
		off()
	}
	app.scene.Dispose()
	if app.hasPreview {
		rl.UnloadTexture(app.preview)
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	logrus.SetLevel(cfg.LogLevel)

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Deluxe Design")
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	app, err := NewApp(cfg)
	if err != nil {
		rl.CloseWindow()
		logrus.WithError(err).Fatal("Could not start editor")
	}

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	// Clean up
	app.Close()
	rl.CloseWindow()
}
