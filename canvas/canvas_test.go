package canvas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/scene"
	"github.com/milk9111/scenestudio/state"
)

type testStore struct {
	r       *state.Reducer
	s       state.State
	actions []state.Action
}

func (t *testStore) State() state.State { return t.s }

func (t *testStore) Dispatch(a state.Action) {
	t.actions = append(t.actions, a)
	t.s = t.r.Reduce(t.s, a)
}

func newStore(objects ...scene.GameObject) *testStore {
	p := scene.Project{
		ID:            "p1",
		Type:          scene.Platformer,
		ActiveSceneID: "s1",
		Settings:      scene.DefaultSettings(),
		Scenes: []scene.Scene{{
			ID: "s1", Width: 1024, Height: 576, Objects: objects,
		}},
	}
	s := state.Initial()
	s.Project = &p
	return &testStore{
		r: state.NewReducer(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }),
		s: s,
	}
}

func obj(id string, x, y, w, h float64) scene.GameObject {
	return scene.GameObject{ID: id, Type: scene.Platform, X: x, Y: y, Width: w, Height: h, Visible: true}
}

func TestHitTestTopmostWins(t *testing.T) {
	objects := []scene.GameObject{
		obj("bottom", 0, 0, 100, 100),
		obj("middle", 20, 20, 50, 50),
		obj("top", 40, 40, 10, 10),
	}
	tests := []struct {
		p    geom.Point
		want string
	}{
		{geom.Pt(45, 45), "top"},
		{geom.Pt(40, 40), "top"},
		{geom.Pt(25, 25), "middle"},
		{geom.Pt(5, 5), "bottom"},
		{geom.Pt(100, 100), "bottom"},
	}
	for _, tt := range tests {
		got, ok := HitTest(objects, tt.p)
		require.True(t, ok, "point %v", tt.p)
		assert.Equal(t, tt.want, got.ID, "point %v", tt.p)
	}

	_, ok := HitTest(objects, geom.Pt(101, 50))
	assert.False(t, ok)
}

func TestHitTestSkipsLockedAndHidden(t *testing.T) {
	locked := obj("locked", 0, 0, 50, 50)
	locked.Locked = true
	hidden := obj("hidden", 0, 0, 50, 50)
	hidden.Visible = false

	_, ok := HitTest([]scene.GameObject{locked, hidden}, geom.Pt(10, 10))
	assert.False(t, ok)

	under := obj("under", 0, 0, 50, 50)
	got, ok := HitTest([]scene.GameObject{under, locked, hidden}, geom.Pt(10, 10))
	require.True(t, ok)
	assert.Equal(t, "under", got.ID)
}

func TestDragPlatformWithSnap(t *testing.T) {
	st := newStore(obj("platform", 0, 480, 1024, 96))
	c := NewController()

	c.PointerDown(st, geom.Pt(10, 490))
	assert.Equal(t, "platform", st.s.Editor.SelectedObjectID)
	id, grab, ok := c.Dragging()
	require.True(t, ok)
	assert.Equal(t, "platform", id)
	assert.Equal(t, geom.Pt(10, 10), grab)

	c.PointerMove(st, geom.Pt(100, 300))
	moved, _ := st.s.Project.Scenes[0].Object("platform")
	assert.Equal(t, 96.0, moved.X)
	assert.Equal(t, 288.0, moved.Y)
	assert.Equal(t, state.UpdateObject{SceneID: "s1", ObjectID: "platform", Patch: state.MoveTo(96, 288)}, st.actions[len(st.actions)-1])

	c.PointerUp(st, geom.Pt(100, 300))
	assert.Equal(t, Idle, c.Mode())

	n := len(st.actions)
	c.PointerMove(st, geom.Pt(400, 400))
	assert.Len(t, st.actions, n, "moves after release dispatch nothing")
}

func TestDragWithoutSnap(t *testing.T) {
	st := newStore(obj("box", 10, 10, 40, 40))
	st.s.Project.Settings.SnapToGrid = false
	c := NewController()

	c.PointerDown(st, geom.Pt(20, 25))
	c.PointerMove(st, geom.Pt(33.5, 71.25))
	box, _ := st.s.Project.Scenes[0].Object("box")
	assert.Equal(t, geom.Pt(23.5, 56.25), geom.Pt(box.X, box.Y))
}

func TestSnappedDragLandsOnGrid(t *testing.T) {
	st := newStore(obj("box", 0, 0, 64, 64))
	c := NewController()
	c.PointerDown(st, geom.Pt(13, 7))

	for _, p := range []geom.Point{{X: 57, Y: 91}, {X: 300.3, Y: 12}, {X: -45, Y: 600}, {X: 1000, Y: 1000}} {
		c.PointerMove(st, p)
		box, _ := st.s.Project.Scenes[0].Object("box")
		assert.Zero(t, int(box.X)%32, "x=%v", box.X)
		assert.Zero(t, int(box.Y)%32, "y=%v", box.Y)
		assert.Equal(t, box.X, float64(int(box.X)))
	}
}

func TestDragHonorsZoomAndPan(t *testing.T) {
	st := newStore(obj("box", 100, 100, 50, 50))
	st.s.Project.Settings.SnapToGrid = false
	st.s.Editor.Zoom = 2
	st.s.Editor.PanX, st.s.Editor.PanY = -50, 0
	c := NewController()

	// world (110, 120) is screen ((110-50)*2, 120*2)
	c.PointerDown(st, geom.Pt(120, 240))
	require.Equal(t, "box", st.s.Editor.SelectedObjectID)

	c.PointerMove(st, geom.Pt(140, 240))
	box, _ := st.s.Project.Scenes[0].Object("box")
	assert.Equal(t, geom.Pt(110, 100), geom.Pt(box.X, box.Y))
}

func TestPointerDownMissClearsSelection(t *testing.T) {
	st := newStore(obj("box", 0, 0, 10, 10))
	c := NewController()
	c.PointerDown(st, geom.Pt(5, 5))
	c.PointerUp(st, geom.Pt(5, 5))
	require.Equal(t, "box", st.s.Editor.SelectedObjectID)

	c.PointerDown(st, geom.Pt(500, 500))
	assert.Empty(t, st.s.Editor.SelectedObjectID)
	assert.Equal(t, Idle, c.Mode())
}

func TestLockedObjectIsNotDragged(t *testing.T) {
	locked := obj("locked", 0, 0, 100, 100)
	locked.Locked = true
	st := newStore(locked)
	c := NewController()

	c.PointerDown(st, geom.Pt(50, 50))
	c.PointerMove(st, geom.Pt(80, 80))
	assert.Equal(t, Idle, c.Mode())
	got, _ := st.s.Project.Scenes[0].Object("locked")
	assert.Equal(t, 0.0, got.X)
}

func TestDragEndsWhenObjectStopsBeingPickable(t *testing.T) {
	yes := true
	no := false
	tests := []struct {
		name   string
		change state.Action
	}{
		{"locked", state.UpdateObject{SceneID: "s1", ObjectID: "box", Patch: state.ObjectPatch{Locked: &yes}}},
		{"hidden", state.UpdateObject{SceneID: "s1", ObjectID: "box", Patch: state.ObjectPatch{Visible: &no}}},
		{"deleted", state.DeleteObject{SceneID: "s1", ObjectID: "box"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newStore(obj("box", 0, 0, 64, 64))
			c := NewController()
			c.PointerDown(st, geom.Pt(10, 10))
			require.Equal(t, Dragging, c.Mode())

			st.Dispatch(tt.change)
			n := len(st.actions)
			c.PointerMove(st, geom.Pt(200, 200))

			assert.Equal(t, Idle, c.Mode())
			assert.Len(t, st.actions, n)
			if box, ok := st.s.Project.Scenes[0].Object("box"); ok {
				assert.Equal(t, geom.Pt(0, 0), geom.Pt(box.X, box.Y))
			}
		})
	}
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	st := newStore(obj("box", 0, 0, 10, 10))
	c := NewController()
	c.PointerDown(st, geom.Pt(5, 5))
	require.Equal(t, Dragging, c.Mode())
	c.PointerLeave(st)
	assert.Equal(t, Idle, c.Mode())
}

func TestWheelZoomClamps(t *testing.T) {
	st := newStore()
	c := NewController()
	for i := 0; i < 100; i++ {
		c.Wheel(st, -1)
		z := st.s.Editor.Zoom
		require.True(t, z >= geom.MinZoom && z <= geom.MaxZoom, "zoom %v", z)
	}
	assert.Equal(t, geom.MaxZoom, st.s.Editor.Zoom)

	for i := 0; i < 100; i++ {
		c.Wheel(st, 1)
	}
	assert.Equal(t, geom.MinZoom, st.s.Editor.Zoom)
}

func TestWheelDuringDragKeepsDragging(t *testing.T) {
	st := newStore(obj("box", 0, 0, 10, 10))
	c := NewController()
	c.PointerDown(st, geom.Pt(5, 5))
	c.Wheel(st, 1)
	assert.Equal(t, Dragging, c.Mode())
	assert.InDelta(t, 0.9, st.s.Editor.Zoom, 1e-9)
}

func TestNoProjectIgnoresPointer(t *testing.T) {
	st := &testStore{r: state.NewReducer(nil), s: state.Initial()}
	c := NewController()
	c.PointerDown(st, geom.Pt(1, 1))
	c.PointerMove(st, geom.Pt(2, 2))
	assert.Empty(t, st.actions)
	assert.Equal(t, Idle, c.Mode())
}

func TestFocusPanCentersTarget(t *testing.T) {
	s := newStore(obj("crate", 200, 100, 40, 20))
	viewport := geom.Pt(800, 600)

	// whole scene: center (512, 288) lands mid-viewport
	pan, ok := FocusPan(s.State(), viewport)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(400, 300), geom.WorldToScreen(geom.Pt(512, 288), 1, pan))

	s.Dispatch(state.SelectObject{ID: "crate"})
	s.Dispatch(state.SetZoom{Zoom: 2})
	pan, ok = FocusPan(s.State(), viewport)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(400, 300), geom.WorldToScreen(geom.Pt(220, 110), 2, pan))

	_, ok = FocusPan(state.Initial(), viewport)
	assert.False(t, ok)
}
