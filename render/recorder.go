package render

import (
	"image/color"

	"github.com/milk9111/scenestudio/geom"
)

type Op int

const (
	OpClear Op = iota
	OpFillRect
	OpStrokeRect
	OpStrokeLine
	OpText
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpStrokeLine:
		return "stroke-line"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Command is one recorded draw call. Only the fields relevant to Op are set.
type Command struct {
	Op     Op
	Rect   geom.Rect
	A, B   geom.Point
	Stroke Stroke
	Color  color.Color
	Label  string
	Size   float64
}

// Recorder is a Surface that keeps the calls made to it. It can replay them
// onto another surface.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Clear() {
	r.Commands = []Command{{Op: OpClear}}
}

func (r *Recorder) FillRect(rect geom.Rect, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect geom.Rect, s Stroke) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeRect, Rect: rect, Stroke: s})
}

func (r *Recorder) StrokeLine(a, b geom.Point, s Stroke) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeLine, A: a, B: b, Stroke: s})
}

func (r *Recorder) Text(label string, anchor geom.Point, size float64, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpText, Label: label, A: anchor, Size: size, Color: c})
}

// Count returns how many recorded commands have op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Replay draws the recorded commands onto dst.
func (r *Recorder) Replay(dst Surface) {
	for _, c := range r.Commands {
		switch c.Op {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(c.Rect, c.Color)
		case OpStrokeRect:
			dst.StrokeRect(c.Rect, c.Stroke)
		case OpStrokeLine:
			dst.StrokeLine(c.A, c.B, c.Stroke)
		case OpText:
			dst.Text(c.Label, c.A, c.Size, c.Color)
		}
	}
}
