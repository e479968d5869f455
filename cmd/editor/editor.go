package main

import (
	"context"
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/scenestudio/canvas"
	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/render"
	"github.com/milk9111/scenestudio/scene"
	"github.com/milk9111/scenestudio/session"
	"github.com/milk9111/scenestudio/state"
)

const saveTimeout = 10 * time.Second

var backdrop = color.RGBA{2, 6, 23, 255}

// toolKeys select the tools in state.Tools order.
var toolKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Editor is the ebiten game hosting one session.
type Editor struct {
	ctx  context.Context
	sess *session.Session
	log  *zap.Logger

	ui      *ebitenui.UI
	toolBar *ToolBar

	renderer render.Renderer
	gate     render.Gate
	canvas   *ebiten.Image
	surface  *imageSurface
	width    int
	height   int

	pointerDown bool
	lastCursor  geom.Point
	panning     bool
	lastPan     geom.Point
	tween       *panTween

	clip     *objectClipboard
	drawType int
	saving   atomic.Bool
}

func NewEditor(ctx context.Context, sess *session.Session, log *zap.Logger, clip *objectClipboard) (*Editor, error) {
	e := &Editor{ctx: ctx, sess: sess, log: log, clip: clip}
	ui, tb, err := BuildEditorUI(toolbarHandlers{
		onTool:            func(t state.Tool) { sess.Dispatch(state.SetTool{Tool: t}) },
		onToggleGrid:      func() { sess.Dispatch(state.ToggleGrid{}) },
		onToggleColliders: func() { sess.Dispatch(state.ToggleColliders{}) },
		onTogglePlay:      func() { sess.Dispatch(state.TogglePlay{}) },
		onSave:            e.save,
		onFocus:           e.focus,
	}, sess.State().Editor.Tool)
	if err != nil {
		return nil, err
	}
	e.ui, e.toolBar = ui, tb
	return e, nil
}

func (e *Editor) Update() error {
	e.ui.Update()
	e.handleKeys()
	e.handlePointer()
	e.stepTween()

	st := e.sess.State()
	e.toolBar.Sync(st.Editor)
	e.toolBar.SetStatus(e.status(st))
	return nil
}

func (e *Editor) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	pressed := inpututil.IsKeyJustPressed

	switch {
	case ctrl && pressed(ebiten.KeyS):
		e.save()
	case ctrl && pressed(ebiten.KeyC):
		e.copySelected()
	case ctrl && pressed(ebiten.KeyV):
		e.paste()
	case pressed(ebiten.KeyDelete) || pressed(ebiten.KeyBackspace):
		e.sess.DeleteSelected()
	case pressed(ebiten.KeyEscape):
		e.sess.Dispatch(state.SelectObject{})
	case pressed(ebiten.KeyG):
		e.sess.Dispatch(state.ToggleGrid{})
	case pressed(ebiten.KeyC):
		e.sess.Dispatch(state.ToggleColliders{})
	case pressed(ebiten.KeyP):
		e.sess.Dispatch(state.TogglePlay{})
	case pressed(ebiten.KeyF):
		e.focus()
	case pressed(ebiten.KeyTab):
		e.drawType = (e.drawType + 1) % len(scene.ObjectTypes())
	}

	for i, t := range state.Tools() {
		if pressed(toolKeys[i]) {
			e.sess.Dispatch(state.SetTool{Tool: t})
		}
	}
}

// canvasPoint converts the cursor position to canvas coordinates and reports
// whether it lies inside the canvas area.
func (e *Editor) canvasPoint() (geom.Point, bool) {
	cx, cy := ebiten.CursorPosition()
	p := geom.Pt(float64(cx), float64(cy-toolbarHeight))
	inside := p.X >= 0 && p.Y >= 0 && p.X < float64(e.width) && p.Y < float64(e.height-toolbarHeight)
	return p, inside
}

func (e *Editor) handlePointer() {
	p, inside := e.canvasPoint()
	st := e.sess.State()

	// middle drag pans
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) && inside {
		e.panning, e.lastPan, e.tween = true, p, nil
	}
	if e.panning {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
			e.panning = false
		} else if p != e.lastPan {
			d := p.Sub(e.lastPan).Mul(1 / st.Editor.Zoom)
			e.sess.Dispatch(state.SetPan{X: st.Editor.PanX + d.X, Y: st.Editor.PanY + d.Y})
			e.lastPan = p
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 && inside {
		// ebiten reports wheel-up as positive
		e.sess.Wheel(-dy)
	}

	if e.pointerDown {
		switch {
		case !inside:
			e.sess.PointerLeave()
			e.pointerDown = false
		case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
			e.sess.PointerUp(p)
			e.pointerDown = false
		case p != e.lastCursor:
			e.sess.PointerMove(p)
		}
		e.lastCursor = p
		return
	}

	if !inside || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || st.Editor.Playing {
		return
	}
	switch st.Editor.Tool {
	case state.ToolSelect, state.ToolMove:
		e.tween = nil
		e.sess.PointerDown(p)
		e.pointerDown = e.sess.Dragging()
		e.lastCursor = p
	case state.ToolDraw:
		t := scene.ObjectTypes()[e.drawType]
		w, h := defaultSize(t)
		world := geom.ScreenToWorld(p, st.Editor.Zoom, st.Editor.Pan())
		if _, err := e.sess.AddObject(t, world, w, h); err != nil {
			e.log.Warn("add object failed", zap.Error(err))
		}
	case state.ToolErase:
		sc, ok := st.ActiveScene()
		if !ok {
			return
		}
		world := geom.ScreenToWorld(p, st.Editor.Zoom, st.Editor.Pan())
		if obj, hit := canvas.HitTest(sc.Objects, world); hit {
			e.sess.Dispatch(state.DeleteObject{SceneID: sc.ID, ObjectID: obj.ID})
		}
	}
}

func defaultSize(t scene.ObjectType) (float64, float64) {
	switch t {
	case scene.Platform:
		return 128, 32
	case scene.Player:
		return 32, 48
	case scene.Background:
		return 256, 128
	case scene.Collectible:
		return 16, 16
	default:
		return 32, 32
	}
}

func (e *Editor) focus() {
	st := e.sess.State()
	target, ok := canvas.FocusPan(st, geom.Pt(float64(e.width), float64(e.height-toolbarHeight)))
	if !ok {
		return
	}
	e.tween = newPanTween(st.Editor.Pan(), target)
}

func (e *Editor) stepTween() {
	if e.tween == nil {
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	pan, done := e.tween.step(dt, e.sess.State().Editor.Pan())
	e.sess.Dispatch(state.SetPan{X: pan.X, Y: pan.Y})
	if done {
		e.tween = nil
	}
}

func (e *Editor) save() {
	if !e.saving.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer e.saving.Store(false)
		ctx, cancel := context.WithTimeout(e.ctx, saveTimeout)
		defer cancel()
		if err := e.sess.Save(ctx); err != nil {
			e.log.Error("save failed", zap.Error(err))
			return
		}
		if p := e.sess.State().Project; p != nil {
			e.log.Info("saved project", zap.String("id", p.ID), zap.Time("lastModified", p.LastModified))
		}
	}()
}

func (e *Editor) copySelected() {
	obj, ok := e.sess.State().Selected()
	if !ok {
		return
	}
	if err := e.clip.Copy(obj); err != nil {
		e.log.Warn("copy failed", zap.Error(err))
	}
}

func (e *Editor) paste() {
	obj, err := e.clip.Paste()
	if err != nil {
		e.log.Debug("nothing to paste", zap.Error(err))
		return
	}
	if p := e.sess.State().Project; p != nil {
		obj.X += p.Settings.GridSize
		obj.Y += p.Settings.GridSize
	}
	if _, err := e.sess.Paste(obj); err != nil {
		e.log.Warn("paste failed", zap.Error(err))
	}
}

func (e *Editor) status(st state.State) string {
	if st.Error != "" {
		return "Error: " + st.Error
	}
	if st.Project == nil {
		return "No project"
	}
	msg := fmt.Sprintf("%s  |  zoom %d%%  |  draw: %s",
		st.Project.Name, int(st.Editor.Zoom*100+0.5), scene.ObjectTypes()[e.drawType])
	if obj, ok := st.Selected(); ok {
		msg += fmt.Sprintf("  |  %s (%.0f, %.0f)", obj.Name, obj.X, obj.Y)
	}
	if st.Loading {
		msg += "  |  saving..."
	}
	return msg
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	e.ensureCanvas()
	if e.canvas != nil {
		// version first: a change landing in between only causes one more redraw
		v := e.sess.Version()
		if e.gate.Due(v) {
			if f, ok := render.FrameOf(e.sess.State()); ok {
				e.renderer.Render(e.surface, f)
			} else {
				e.surface.Clear()
			}
			e.gate.Mark(v)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, toolbarHeight)
		screen.DrawImage(e.canvas, op)
	}
	e.ui.Draw(screen)
}

func (e *Editor) ensureCanvas() {
	w, h := e.width, e.height-toolbarHeight
	if w <= 0 || h <= 0 {
		return
	}
	if e.canvas != nil {
		b := e.canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		e.canvas.Deallocate()
	}
	e.canvas = ebiten.NewImage(w, h)
	e.surface = newImageSurface(e.canvas)
	e.gate.Invalidate()
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
