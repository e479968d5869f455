package geom

import "math"

const (
	MinZoom  = 0.1
	MaxZoom  = 3.0
	ZoomStep = 0.1
)

// Point is a position in either screen or world space; the caller knows which.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Min() Point    { return Point{r.X, r.Y} }
func (r Rect) Max() Point    { return Point{r.X + r.W, r.Y + r.H} }
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Inset grows r by d on every side (negative d shrinks it).
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// ScreenToWorld maps a canvas pixel to world units: screen/zoom - pan.
func ScreenToWorld(p Point, zoom float64, pan Point) Point {
	if zoom == 0 {
		zoom = 1
	}
	return Point{p.X/zoom - pan.X, p.Y/zoom - pan.Y}
}

// WorldToScreen is the forward render transform, scale then translate:
// (world + pan) * zoom.
func WorldToScreen(p Point, zoom float64, pan Point) Point {
	return Point{(p.X + pan.X) * zoom, (p.Y + pan.Y) * zoom}
}

// Snap rounds v to the nearest multiple of grid. Non-positive grids leave v alone.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

func SnapPoint(p Point, grid float64) Point {
	return Point{Snap(p.X, grid), Snap(p.Y, grid)}
}

func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// WheelZoom applies one fixed zoom step for a wheel event. Positive deltaY
// (scrolling down) zooms out.
func WheelZoom(zoom, deltaY float64) float64 {
	if deltaY > 0 {
		return ClampZoom(zoom - ZoomStep)
	}
	return ClampZoom(zoom + ZoomStep)
}

// Transform is the canvas view transform: scale by Zoom, then translate by Pan
// in the scaled space.
type Transform struct {
	Zoom float64
	Pan  Point
}

func (t Transform) Apply(p Point) Point  { return WorldToScreen(p, t.Zoom, t.Pan) }
func (t Transform) Invert(p Point) Point { return ScreenToWorld(p, t.Zoom, t.Pan) }

// ApplyRect maps a world rectangle to screen space. There is no rotation so the
// result is still axis aligned.
func (t Transform) ApplyRect(r Rect) Rect {
	min := t.Apply(r.Min())
	return Rect{X: min.X, Y: min.Y, W: r.W * t.Zoom, H: r.H * t.Zoom}
}

// Scale converts a world length (line width, font size) to screen pixels.
func (t Transform) Scale(v float64) float64 { return v * t.Zoom }
