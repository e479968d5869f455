package canvas

import (
	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/state"
)

// FocusPan returns the pan that centers the selected object, or the whole
// active scene when nothing is selected, in a viewport of the given screen
// size. It reports false when there is no active scene.
func FocusPan(st state.State, viewport geom.Point) (geom.Point, bool) {
	sc, ok := st.ActiveScene()
	if !ok {
		return geom.Point{}, false
	}
	center := geom.Rect{W: sc.Width, H: sc.Height}.Center()
	if obj, ok := st.Selected(); ok {
		center = obj.Bounds().Center()
	}
	zoom := st.Editor.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return viewport.Mul(0.5 / zoom).Sub(center), true
}
