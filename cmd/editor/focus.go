package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/milk9111/scenestudio/geom"
)

const focusDuration = 0.35

// panTween animates the view pan towards a target.
type panTween struct {
	x, y         *gween.Tween
	doneX, doneY bool
}

func newPanTween(from, to geom.Point) *panTween {
	return &panTween{
		x: gween.New(float32(from.X), float32(to.X), focusDuration, ease.OutQuad),
		y: gween.New(float32(from.Y), float32(to.Y), focusDuration, ease.OutQuad),
	}
}

// step advances the tween by dt seconds and returns the current pan and
// whether the animation has finished.
func (t *panTween) step(dt float32, cur geom.Point) (geom.Point, bool) {
	if !t.doneX {
		v, done := t.x.Update(dt)
		cur.X = float64(v)
		t.doneX = done
	}
	if !t.doneY {
		v, done := t.y.Update(dt)
		cur.Y = float64(v)
		t.doneY = done
	}
	return cur, t.doneX && t.doneY
}
