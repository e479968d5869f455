package main

import (
	"encoding/json"
	"errors"

	"golang.design/x/clipboard"

	"github.com/milk9111/scenestudio/scene"
)

// objectClipboard copies objects to the system clipboard as JSON.
type objectClipboard struct {
	ok bool
}

func newObjectClipboard() (*objectClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return &objectClipboard{}, err
	}
	return &objectClipboard{ok: true}, nil
}

var errNoClipboard = errors.New("clipboard unavailable")

func (c *objectClipboard) Copy(o scene.GameObject) error {
	if !c.ok {
		return errNoClipboard
	}
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

// Paste returns the object on the clipboard, if the clipboard holds one.
func (c *objectClipboard) Paste() (scene.GameObject, error) {
	if !c.ok {
		return scene.GameObject{}, errNoClipboard
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return scene.GameObject{}, errors.New("clipboard is empty")
	}
	var o scene.GameObject
	if err := json.Unmarshal(data, &o); err != nil {
		return scene.GameObject{}, err
	}
	if err := o.Validate(); err != nil {
		return scene.GameObject{}, err
	}
	return o, nil
}
