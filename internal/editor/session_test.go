package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/deluxedesign/internal/canvas"
	"github.com/ha1tch/deluxedesign/internal/tool"
)

func workspaces(s canvas.Surface) int {
	n := 0
	for _, o := range s.Objects() {
		if o.Name == WorkspaceName {
			n++
		}
	}
	return n
}

func TestNewSessionCreatesWorkspace(t *testing.T) {
	scene := canvas.NewScene(0, 0)
	s, err := NewSession(scene, 1000, 800)
	require.NoError(t, err)
	defer s.Close()

	ws := s.Editor().Workspace()
	require.NotNil(t, ws)
	assert.Equal(t, 1, workspaces(scene))
	assert.False(t, ws.Selectable)
	assert.Equal(t, "white", ws.Fill)
	assert.Equal(t, float64(WorkspaceWidth), ws.Width)
	assert.Equal(t, float64(WorkspaceHeight), ws.Height)
	assert.Same(t, ws, scene.ClipPath())
	assert.Equal(t, canvas.Point{X: 500, Y: 400}, ws.CenterPoint())

	w, h := scene.Dimensions()
	assert.Equal(t, 1000.0, w)
	assert.Equal(t, 800.0, h)
}

func TestNewSessionReusesWorkspace(t *testing.T) {
	scene := canvas.NewScene(0, 0)
	first, err := NewSession(scene, 800, 600)
	require.NoError(t, err)
	first.Close()

	second, err := NewSession(scene, 800, 600)
	require.NoError(t, err)
	defer second.Close()
	assert.Equal(t, 1, workspaces(scene))
}

func TestNewSessionLocksExistingWorkspace(t *testing.T) {
	scene := canvas.NewScene(1000, 800)
	existing := canvas.NewRect(900, 1200)
	existing.Name = WorkspaceName
	scene.Add(existing)
	scene.CenterObject(existing)
	scene.SetActiveObject(existing)
	require.True(t, existing.Selectable)

	s, err := NewSession(scene, 1000, 800)
	require.NoError(t, err)
	defer s.Close()

	ws := s.Editor().Workspace()
	assert.Same(t, existing, ws)
	assert.Equal(t, 1, workspaces(scene))
	assert.False(t, ws.Selectable)
	assert.Empty(t, scene.ActiveObjects())
	assert.Nil(t, scene.PointerDown(ws.CenterPoint(), false))
	assert.Empty(t, s.Editor().Selected())
}

func TestNewSessionWithoutSurface(t *testing.T) {
	_, err := NewSession(nil, 100, 100)
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestWorkspaceIsNeverSelected(t *testing.T) {
	scene := canvas.NewScene(0, 0)
	s, err := NewSession(scene, 1000, 800)
	require.NoError(t, err)
	defer s.Close()

	ws := s.Editor().Workspace()
	assert.Nil(t, scene.PointerDown(ws.CenterPoint(), false))
	scene.SetActiveObject(ws)
	assert.Empty(t, scene.ActiveObjects())
	assert.Empty(t, s.Editor().Selected())
}

func TestClearSelectionDrivesToolState(t *testing.T) {
	scene := canvas.NewScene(0, 0)
	tools := tool.NewState()
	s, err := NewSession(scene, 1000, 800, WithClearSelection(tools.ClearSelection))
	require.NoError(t, err)
	defer s.Close()

	ed := s.Editor()
	ed.AddRectangle()
	tools.Change(tool.Fill)

	// click on the workspace margin, away from the rectangle
	ws := ed.Workspace()
	scene.PointerDown(canvas.Point{X: ws.Left + 5, Y: ws.Top + 5}, false)

	assert.Empty(t, ed.Selected())
	assert.Equal(t, tool.Select, tools.Active())
}

func TestSelectionMirrorFollowsScene(t *testing.T) {
	scene := canvas.NewScene(0, 0)
	s, err := NewSession(scene, 1000, 800)
	require.NoError(t, err)
	defer s.Close()

	ed := s.Editor()
	ed.AddCircle()
	circle := ed.Selected()[0]
	ed.AddRectangle()
	rect := ed.Selected()[0]
	assert.Equal(t, []*canvas.Object{rect}, ed.Selected())

	scene.SetActiveObjects(circle, rect)
	assert.Equal(t, []*canvas.Object{circle, rect}, ed.Selected())
}

func TestCloseStopsCallbacks(t *testing.T) {
	f := newFakeSurface()
	calls := 0
	s, err := NewSession(f, 1000, 800, WithClearSelection(func() { calls++ }))
	require.NoError(t, err)

	s.Editor().AddRectangle()
	f.DiscardActiveObject()
	assert.Equal(t, 1, calls)

	s.Close()
	s.Close()
	assert.Zero(t, f.subscribers())

	f.SetActiveObject(f.objects[len(f.objects)-1])
	f.DiscardActiveObject()
	assert.Equal(t, 1, calls)
}

func TestCloseForgetsSelection(t *testing.T) {
	scene := canvas.NewScene(0, 0)
	s, err := NewSession(scene, 1000, 800, WithStyle(Style{FillColor: "red", StrokeColor: "blue", StrokeWidth: 3}))
	require.NoError(t, err)

	ed := s.Editor()
	ed.ChangeFillColor("green")
	ed.AddRectangle()
	require.Len(t, ed.Selected(), 1)

	s.Close()
	scene.DiscardActiveObject()

	assert.Empty(t, scene.ActiveObjects())
	assert.Empty(t, ed.Selected())
	assert.Equal(t, "green", ed.ActiveFillColor())
	assert.Equal(t, "blue", ed.ActiveStrokeColor())
}

func TestResizeRecentersWorkspace(t *testing.T) {
	scene := canvas.NewScene(0, 0)
	s, err := NewSession(scene, 1000, 800)
	require.NoError(t, err)
	defer s.Close()

	ws := s.Editor().Workspace()
	check := func(w, h float64) {
		t.Helper()
		zoom, _ := scene.Viewport()
		assert.InDelta(t, 0.85*min(w/ws.Width, h/ws.Height), zoom, 1e-9)
		c := scene.ToScreen(ws.CenterPoint())
		assert.InDelta(t, w/2, c.X, 1e-9)
		assert.InDelta(t, h/2, c.Y, 1e-9)
	}
	check(1000, 800)

	renders := scene.Renders()
	s.Resize(1600, 900)
	check(1600, 900)
	gw, gh := scene.Dimensions()
	assert.Equal(t, 1600.0, gw)
	assert.Equal(t, 900.0, gh)
	assert.Equal(t, renders+1, scene.Renders())

	s.Resize(1600, 900)
	assert.Equal(t, renders+1, scene.Renders(), "same size does not redraw")
}
