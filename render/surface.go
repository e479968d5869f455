package render

import (
	"image/color"
	"math"

	"github.com/milk9111/scenestudio/geom"
)

// Stroke describes an outline. An empty Dash draws a solid line; otherwise
// Dash alternates on and off lengths in screen pixels.
type Stroke struct {
	Width float64
	Dash  []float64
	Color color.Color
}

// Surface is a screen-space drawing target.
type Surface interface {
	Clear()
	FillRect(r geom.Rect, c color.Color)
	StrokeRect(r geom.Rect, s Stroke)
	StrokeLine(a, b geom.Point, s Stroke)
	// Text draws label horizontally centered on anchor, with anchor on the
	// baseline.
	Text(label string, anchor geom.Point, size float64, c color.Color)
}

// Segment is one drawn piece of a dashed line.
type Segment struct {
	A, B geom.Point
}

// DashLine splits a->b into the visible segments of pattern. A solid pattern
// yields the whole line.
func DashLine(a, b geom.Point, pattern []float64) []Segment {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if len(pattern) == 0 || length == 0 {
		return []Segment{{a, b}}
	}
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return []Segment{{a, b}}
	}
	dir := geom.Pt((b.X-a.X)/length, (b.Y-a.Y)/length)
	var segs []Segment
	pos, i := 0.0, 0
	for pos < length {
		step := pattern[i%len(pattern)]
		end := math.Min(pos+step, length)
		if i%2 == 0 && end > pos {
			segs = append(segs, Segment{a.Add(dir.Mul(pos)), a.Add(dir.Mul(end))})
		}
		pos = end
		i++
	}
	return segs
}

// RectEdges returns the four edges of r clockwise from the top-left corner.
func RectEdges(r geom.Rect) [4]Segment {
	tl, br := r.Min(), r.Max()
	tr, bl := geom.Pt(br.X, tl.Y), geom.Pt(tl.X, br.Y)
	return [4]Segment{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}
