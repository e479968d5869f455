package render

import (
	"image/color"
	"strings"

	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/scene"
	"github.com/milk9111/scenestudio/state"
)

var (
	GridColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	LabelColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
	SelectionColor = color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
	ColliderColor  = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)

const (
	handleSize      = 6
	selectionMargin = 2
	labelSize       = 12
	labelDrop       = 4
)

var (
	selectionDash = []float64{5, 5}
	colliderDash  = []float64{3, 3}
)

// Frame is everything one draw needs.
type Frame struct {
	Scene    scene.Scene
	View     state.View
	GridSize float64
}

// FrameOf builds the frame for the active scene of s.
func FrameOf(s state.State) (Frame, bool) {
	sc, ok := s.ActiveScene()
	if !ok {
		return Frame{}, false
	}
	return Frame{Scene: sc, View: s.Editor, GridSize: s.Project.Settings.GridSize}, true
}

// Renderer draws a frame. It keeps no state between calls; drawing the same
// frame twice produces the same output.
type Renderer struct{}

func (Renderer) Render(dst Surface, f Frame) {
	tr := f.View.Transform()
	if tr.Zoom == 0 {
		tr.Zoom = 1
	}
	sc := f.Scene

	dst.Clear()
	bounds := geom.Rect{W: sc.Width, H: sc.Height}
	dst.FillRect(tr.ApplyRect(bounds), scene.ParseHexColor(sc.BackgroundColor))

	if f.View.ShowGrid && f.GridSize > 0 {
		drawGrid(dst, tr, sc, f.GridSize)
	}

	for _, o := range sc.Objects {
		if !o.Visible {
			continue
		}
		drawObject(dst, tr, o)
		if o.ID == f.View.SelectedObjectID {
			drawSelection(dst, tr, o)
		}
	}

	if f.View.ShowColliders {
		stroke := Stroke{Width: tr.Scale(1), Dash: scaleDash(tr, colliderDash), Color: ColliderColor}
		for _, o := range sc.Objects {
			if !o.Visible {
				continue
			}
			dst.StrokeRect(tr.ApplyRect(o.Bounds()), stroke)
		}
	}
}

func drawGrid(dst Surface, tr geom.Transform, sc scene.Scene, grid float64) {
	stroke := Stroke{Width: tr.Scale(1), Color: GridColor}
	for x := 0.0; x <= sc.Width; x += grid {
		dst.StrokeLine(tr.Apply(geom.Pt(x, 0)), tr.Apply(geom.Pt(x, sc.Height)), stroke)
	}
	for y := 0.0; y <= sc.Height; y += grid {
		dst.StrokeLine(tr.Apply(geom.Pt(0, y)), tr.Apply(geom.Pt(sc.Width, y)), stroke)
	}
}

func drawObject(dst Surface, tr geom.Transform, o scene.GameObject) {
	dst.FillRect(tr.ApplyRect(o.Bounds()), scene.ParseHexColor(scene.ResolveColor(o)))
	anchor := geom.Pt(o.X+o.Width/2, o.Y+o.Height/2+labelDrop)
	dst.Text(strings.ToUpper(string(o.Type)), tr.Apply(anchor), tr.Scale(labelSize), LabelColor)
}

func drawSelection(dst Surface, tr geom.Transform, o scene.GameObject) {
	outline := o.Bounds().Inset(selectionMargin)
	dst.StrokeRect(tr.ApplyRect(outline), Stroke{
		Width: tr.Scale(2),
		Dash:  scaleDash(tr, selectionDash),
		Color: SelectionColor,
	})
	for _, c := range corners(o.Bounds()) {
		h := geom.Rect{X: c.X - handleSize/2, Y: c.Y - handleSize/2, W: handleSize, H: handleSize}
		dst.FillRect(tr.ApplyRect(h), SelectionColor)
	}
}

// corners lists top-left, top-right, bottom-left, bottom-right.
func corners(r geom.Rect) [4]geom.Point {
	return [4]geom.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X, Y: r.Y + r.H},
		{X: r.X + r.W, Y: r.Y + r.H},
	}
}

func scaleDash(tr geom.Transform, dash []float64) []float64 {
	out := make([]float64, len(dash))
	for i, d := range dash {
		out[i] = tr.Scale(d)
	}
	return out
}
