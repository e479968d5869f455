package canvas

import (
	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/state"
)

// Store is what the controller needs from an editor session: a snapshot of
// the current state and a way to dispatch actions.
type Store interface {
	State() state.State
	Dispatch(a state.Action)
}

type Mode int

const (
	Idle Mode = iota
	Dragging
)

func (m Mode) String() string {
	if m == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller turns pointer and wheel input into actions. It belongs to a
// single session and is not safe for concurrent use.
type Controller struct {
	mode     Mode
	objectID string
	sceneID  string
	grab     geom.Point
}

func NewController() *Controller { return &Controller{} }

func (c *Controller) Mode() Mode { return c.mode }

// Dragging returns the id of the object being dragged and the grab offset
// between the pointer and the object's origin.
func (c *Controller) Dragging() (id string, grab geom.Point, ok bool) {
	if c.mode != Dragging {
		return "", geom.Point{}, false
	}
	return c.objectID, c.grab, true
}

// PointerDown selects the topmost object under the pointer and starts a drag,
// or clears the selection on a miss.
func (c *Controller) PointerDown(s Store, screen geom.Point) {
	st := s.State()
	sc, ok := st.ActiveScene()
	if !ok {
		return
	}
	p := geom.ScreenToWorld(screen, st.Editor.Zoom, st.Editor.Pan())
	obj, hit := HitTest(sc.Objects, p)
	if !hit {
		s.Dispatch(state.SelectObject{})
		c.reset()
		return
	}
	s.Dispatch(state.SelectObject{ID: obj.ID})
	c.mode = Dragging
	c.objectID = obj.ID
	c.sceneID = sc.ID
	c.grab = p.Sub(geom.Pt(obj.X, obj.Y))
}

// PointerMove moves the dragged object so the grab point stays under the
// pointer, snapping to the grid when the project asks for it. The drag ends
// if the object has since been removed, locked or hidden.
func (c *Controller) PointerMove(s Store, screen geom.Point) {
	if c.mode != Dragging {
		return
	}
	st := s.State()
	if !c.draggable(st) {
		c.reset()
		return
	}
	p := geom.ScreenToWorld(screen, st.Editor.Zoom, st.Editor.Pan())
	next := p.Sub(c.grab)
	if settings := st.Project.Settings; settings.SnapToGrid {
		next = geom.SnapPoint(next, settings.GridSize)
	}
	s.Dispatch(state.UpdateObject{
		SceneID:  c.sceneID,
		ObjectID: c.objectID,
		Patch:    state.MoveTo(next.X, next.Y),
	})
}

func (c *Controller) draggable(st state.State) bool {
	if st.Project == nil {
		return false
	}
	sc, ok := st.Project.Scene(c.sceneID)
	if !ok {
		return false
	}
	obj, ok := sc.Object(c.objectID)
	return ok && obj.Pickable()
}

func (c *Controller) PointerUp(Store, geom.Point) { c.reset() }

func (c *Controller) PointerLeave(Store) { c.reset() }

// Wheel zooms by one fixed step. Positive deltaY zooms out. Any drag in
// progress is left alone.
func (c *Controller) Wheel(s Store, deltaY float64) {
	if deltaY == 0 {
		return
	}
	st := s.State()
	s.Dispatch(state.SetZoom{Zoom: geom.WheelZoom(st.Editor.Zoom, deltaY)})
}

func (c *Controller) reset() {
	c.mode = Idle
	c.objectID = ""
	c.sceneID = ""
	c.grab = geom.Point{}
}
