package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/milk9111/scenestudio/geom"
)

// Raster is a software Surface over an RGBA image. Labels use the fixed
// 7x13 face regardless of the requested size.
type Raster struct {
	Img  *image.RGBA
	Face font.Face
}

func NewRaster(w, h int) *Raster {
	return &Raster{
		Img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		Face: basicfont.Face7x13,
	}
}

func (r *Raster) Clear() {
	draw.Draw(r.Img, r.Img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillRect(rect geom.Rect, c color.Color) {
	draw.Draw(r.Img, pixelRect(rect), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Raster) StrokeRect(rect geom.Rect, s Stroke) {
	for _, e := range RectEdges(rect) {
		r.StrokeLine(e.A, e.B, s)
	}
}

func (r *Raster) StrokeLine(a, b geom.Point, s Stroke) {
	w := math.Max(1, s.Width)
	src := image.NewUniform(s.Color)
	for _, seg := range DashLine(a, b, s.Dash) {
		r.segment(seg, w, src)
	}
}

func (r *Raster) segment(seg Segment, w float64, src image.Image) {
	a, b := seg.A, seg.B
	half := w / 2
	if a.X == b.X || a.Y == b.Y {
		box := geom.Rect{
			X: math.Min(a.X, b.X) - half,
			Y: math.Min(a.Y, b.Y) - half,
			W: math.Abs(b.X-a.X) + w,
			H: math.Abs(b.Y-a.Y) + w,
		}
		draw.Draw(r.Img, pixelRect(box), src, image.Point{}, draw.Over)
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := a.Add(b.Sub(a).Mul(t))
		dot := geom.Rect{X: p.X - half, Y: p.Y - half, W: w, H: w}
		draw.Draw(r.Img, pixelRect(dot), src, image.Point{}, draw.Over)
	}
}

func (r *Raster) Text(label string, anchor geom.Point, _ float64, c color.Color) {
	d := &font.Drawer{Dst: r.Img, Src: image.NewUniform(c), Face: r.Face}
	width := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(math.Round(anchor.X))) - width/2,
		Y: fixed.I(int(math.Round(anchor.Y))),
	}
	d.DrawString(label)
}

func pixelRect(r geom.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)),
	)
}
