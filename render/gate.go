package render

import "sync"

// Gate tracks the last state version that was drawn so hosts only redraw
// when something changed.
type Gate struct {
	mu    sync.Mutex
	drawn uint64
	valid bool
}

// Due reports whether version has not been drawn yet.
func (g *Gate) Due(version uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.valid || g.drawn != version
}

// Mark records version as drawn.
func (g *Gate) Mark(version uint64) {
	g.mu.Lock()
	g.drawn, g.valid = version, true
	g.mu.Unlock()
}

// Invalidate forces the next Due to report true, e.g. after a resize.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	g.valid = false
	g.mu.Unlock()
}
