package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/scenestudio/state"
)

const toolbarHeight = 48

// ToolBar holds the widgets of the top bar that reflect editor state.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	active  int

	grid, colliders, play *widget.Button
	status                *widget.Text
}

type toolbarHandlers struct {
	onTool            func(state.Tool)
	onToggleGrid      func()
	onToggleColliders func()
	onTogglePlay      func()
	onSave            func()
	onFocus           func()
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, h toolbarHandlers, initialTool state.Tool) (*widget.Container, *ToolBar) {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
	)
	tb := &ToolBar{active: -1}

	for _, t := range state.Tools() {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.String(), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
		)
		tb.buttons = append(tb.buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}
	tools := state.Tools()
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if h.onTool == nil {
				return
			}
			for idx, b := range tb.buttons {
				if args.Active == b {
					tb.active = idx
					h.onTool(tools[idx])
					return
				}
			}
		}),
	)
	tb.SetTool(initialTool)

	action := func(label string, fn func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(96, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		)
		toolbar.AddChild(btn)
		return btn
	}
	tb.grid = action("Grid: On", h.onToggleGrid)
	tb.colliders = action("Colliders: Off", h.onToggleColliders)
	tb.play = action("Play", h.onTogglePlay)
	action("Focus", h.onFocus)
	action("Save", h.onSave)

	tb.status = widget.NewText(
		widget.TextOpts.Text("", fontFace, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	toolbar.AddChild(tb.status)

	return toolbar, tb
}

func (tb *ToolBar) SetTool(t state.Tool) {
	idx := int(t)
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	if tb.active == idx {
		return
	}
	tb.active = idx
	tb.group.SetActive(tb.buttons[idx])
}

// Sync updates button labels to match v.
func (tb *ToolBar) Sync(v state.View) {
	if tb == nil {
		return
	}
	tb.SetTool(v.Tool)
	setLabel(tb.grid, onOff("Grid", v.ShowGrid))
	setLabel(tb.colliders, onOff("Colliders", v.ShowColliders))
	if v.Playing {
		setLabel(tb.play, "Stop")
	} else {
		setLabel(tb.play, "Play")
	}
}

// SetStatus shows msg in the status area.
func (tb *ToolBar) SetStatus(msg string) {
	if tb == nil || tb.status == nil || tb.status.Label == msg {
		return
	}
	tb.status.Label = msg
}

func setLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if t := b.Text(); t != nil && t.Label != label {
		t.Label = label
	}
}

func onOff(name string, on bool) string {
	if on {
		return name + ": On"
	}
	return name + ": Off"
}
