package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/render"
)

// labelFaceSize is the pixel height of basicfont.Face7x13.
const labelFaceSize = 13

// imageSurface draws render commands onto an ebiten image.
type imageSurface struct {
	dst  *ebiten.Image
	face text.Face
}

var _ render.Surface = (*imageSurface)(nil)

func newImageSurface(dst *ebiten.Image) *imageSurface {
	return &imageSurface{dst: dst, face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *imageSurface) Clear() { s.dst.Clear() }

func (s *imageSurface) FillRect(r geom.Rect, c color.Color) {
	vector.FillRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *imageSurface) StrokeRect(r geom.Rect, st render.Stroke) {
	if len(st.Dash) == 0 {
		vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(st.Width), st.Color, false)
		return
	}
	for _, e := range render.RectEdges(r) {
		s.StrokeLine(e.A, e.B, st)
	}
}

func (s *imageSurface) StrokeLine(a, b geom.Point, st render.Stroke) {
	for _, seg := range render.DashLine(a, b, st.Dash) {
		vector.StrokeLine(s.dst,
			float32(seg.A.X), float32(seg.A.Y), float32(seg.B.X), float32(seg.B.Y),
			float32(st.Width), st.Color, false)
	}
}

func (s *imageSurface) Text(label string, anchor geom.Point, size float64, c color.Color) {
	scale := size / labelFaceSize
	if scale <= 0 {
		scale = 1
	}
	w, _ := text.Measure(label, s.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -labelFaceSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(anchor.X, anchor.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, label, s.face, op)
}
