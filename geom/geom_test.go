package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestScreenWorldRoundTrip(t *testing.T) {
	points := []Point{{0, 0}, {10, 490}, {-250.5, 33.25}, {1024, 576}, {1e5, -1e5}}
	zooms := []float64{0.1, 0.25, 1, 1.7, 3}
	pans := []Point{{0, 0}, {12, -40}, {-500.5, 3}}

	for _, p := range points {
		for _, z := range zooms {
			for _, pan := range pans {
				back := ScreenToWorld(WorldToScreen(p, z, pan), z, pan)
				if !approxEqual(back.X, p.X, 1e-9) || !approxEqual(back.Y, p.Y, 1e-9) {
					t.Errorf("round trip %v zoom=%v pan=%v = %v", p, z, pan, back)
				}
			}
		}
	}
}

func TestScreenToWorld(t *testing.T) {
	got := ScreenToWorld(Pt(200, 100), 2, Pt(10, 20))
	assert.Equal(t, Pt(90, 30), got)

	// zero zoom is treated as identity scale
	got = ScreenToWorld(Pt(5, 5), 0, Point{})
	assert.Equal(t, Pt(5, 5), got)
}

func TestTransformMatchesFunctions(t *testing.T) {
	tr := Transform{Zoom: 1.5, Pan: Pt(-20, 8)}
	p := Pt(64, 96)
	assert.Equal(t, WorldToScreen(p, 1.5, Pt(-20, 8)), tr.Apply(p))
	assert.Equal(t, p, tr.Invert(tr.Apply(p)))

	r := tr.ApplyRect(Rect{X: 64, Y: 96, W: 32, H: 10})
	assert.Equal(t, Rect{X: 66, Y: 156, W: 48, H: 15}, r)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		v, grid, want float64
	}{
		{0, 32, 0},
		{15.9, 32, 0},
		{16, 32, 32},
		{47, 32, 32},
		{-17, 32, -32},
		{490, 32, 480},
		{101, 0, 101},
		{101, -8, 101},
	}
	for _, tt := range tests {
		if got := Snap(tt.v, tt.grid); got != tt.want {
			t.Errorf("Snap(%v, %v) = %v, want %v", tt.v, tt.grid, got, tt.want)
		}
	}
}

func TestSnapPointIsGridMultiple(t *testing.T) {
	for _, p := range []Point{{13.2, 99}, {-70, 512.4}, {1000.01, 3}} {
		s := SnapPoint(p, 32)
		assert.Zero(t, math.Mod(s.X, 32))
		assert.Zero(t, math.Mod(s.Y, 32))
	}
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, MinZoom, ClampZoom(0.01))
	assert.Equal(t, MaxZoom, ClampZoom(12))
	assert.Equal(t, 1.2, ClampZoom(1.2))
	assert.Equal(t, 1.0, ClampZoom(math.NaN()))
}

func TestWheelZoomStaysInRange(t *testing.T) {
	z := 1.0
	for i := 0; i < 100; i++ {
		z = WheelZoom(z, -120)
		if z < MinZoom || z > MaxZoom {
			t.Fatalf("zoom in step %d left range: %v", i, z)
		}
	}
	assert.Equal(t, MaxZoom, z)

	for i := 0; i < 100; i++ {
		z = WheelZoom(z, 120)
		if z < MinZoom || z > MaxZoom {
			t.Fatalf("zoom out step %d left range: %v", i, z)
		}
	}
	assert.Equal(t, MinZoom, z)
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{X: 0, Y: 480, W: 1024, H: 96}
	assert.True(t, r.Contains(Pt(0, 480)))
	assert.True(t, r.Contains(Pt(1024, 576)))
	assert.True(t, r.Contains(Pt(10, 490)))
	assert.False(t, r.Contains(Pt(1024.01, 500)))
	assert.False(t, r.Contains(Pt(10, 479.9)))
}
