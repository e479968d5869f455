package canvas

import (
	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/scene"
)

// HitTest returns the topmost pickable object containing p (world space).
// Objects are scanned from last to first so the one drawn on top wins.
func HitTest(objects []scene.GameObject, p geom.Point) (scene.GameObject, bool) {
	for i := len(objects) - 1; i >= 0; i-- {
		o := objects[i]
		if !o.Pickable() {
			continue
		}
		if o.Bounds().Contains(p) {
			return o, true
		}
	}
	return scene.GameObject{}, false
}
