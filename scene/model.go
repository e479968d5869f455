package scene

import (
	"time"

	"github.com/milk9111/scenestudio/geom"
)

type ObjectType string

const (
	Player      ObjectType = "player"
	Enemy       ObjectType = "enemy"
	Platform    ObjectType = "platform"
	Collectible ObjectType = "collectible"
	Background  ObjectType = "background"
)

var objectTypes = []ObjectType{Player, Enemy, Platform, Collectible, Background}

func ObjectTypes() []ObjectType { return append([]ObjectType(nil), objectTypes...) }

func ValidObjectType(t ObjectType) bool {
	for _, v := range objectTypes {
		if v == t {
			return true
		}
	}
	return false
}

type ProjectType string

const (
	Platformer ProjectType = "platformer"
	RPG        ProjectType = "rpg"
	Puzzle     ProjectType = "puzzle"
	Shooter    ProjectType = "shooter"
)

func ValidProjectType(t ProjectType) bool {
	switch t {
	case Platformer, RPG, Puzzle, Shooter:
		return true
	}
	return false
}

type AssetType string

const (
	SpriteAsset     AssetType = "sprite"
	SoundAsset      AssetType = "sound"
	BackgroundAsset AssetType = "background"
	TilesetAsset    AssetType = "tileset"
)

func ValidAssetType(t AssetType) bool {
	switch t {
	case SpriteAsset, SoundAsset, BackgroundAsset, TilesetAsset:
		return true
	}
	return false
}

// GameObject is a rectangular entity placed in a scene. Locked objects are
// drawn but never picked or dragged.
type GameObject struct {
	ID         string     `json:"id" yaml:"id"`
	Type       ObjectType `json:"type" yaml:"type"`
	Name       string     `json:"name" yaml:"name"`
	X          float64    `json:"x" yaml:"x"`
	Y          float64    `json:"y" yaml:"y"`
	Width      float64    `json:"width" yaml:"width"`
	Height     float64    `json:"height" yaml:"height"`
	Properties Properties `json:"properties" yaml:"properties"`
	Sprite     string     `json:"sprite,omitempty" yaml:"sprite,omitempty"`
	Color      string     `json:"color,omitempty" yaml:"color,omitempty"`
	Visible    bool       `json:"visible" yaml:"visible"`
	Locked     bool       `json:"locked" yaml:"locked"`
}

// Bounds returns the object's world-space rectangle.
func (o GameObject) Bounds() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Pickable reports whether the object takes part in hit-testing.
func (o GameObject) Pickable() bool { return o.Visible && !o.Locked }

func (o GameObject) Clone() GameObject {
	o.Properties = o.Properties.Clone()
	return o
}

// Scene holds objects in paint order: later entries are drawn on top and are
// picked first.
type Scene struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Width           float64      `json:"width" yaml:"width"`
	Height          float64      `json:"height" yaml:"height"`
	BackgroundColor string       `json:"backgroundColor" yaml:"backgroundColor"`
	Objects         []GameObject `json:"objects" yaml:"objects"`
	Layers          []string     `json:"layers" yaml:"layers"`
}

func (s Scene) IndexOf(id string) int {
	for i := range s.Objects {
		if s.Objects[i].ID == id {
			return i
		}
	}
	return -1
}

func (s Scene) Object(id string) (GameObject, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.Objects[i], true
	}
	return GameObject{}, false
}

func (s Scene) Clone() Scene {
	if s.Objects != nil {
		objs := make([]GameObject, len(s.Objects))
		for i, o := range s.Objects {
			objs[i] = o.Clone()
		}
		s.Objects = objs
	}
	if s.Layers != nil {
		s.Layers = append([]string{}, s.Layers...)
	}
	return s
}

type Asset struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Type       AssetType  `json:"type" yaml:"type"`
	URL        string     `json:"url" yaml:"url"`
	Width      float64    `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float64    `json:"height,omitempty" yaml:"height,omitempty"`
	Properties Properties `json:"properties" yaml:"properties,omitempty"`
}

func (a Asset) Clone() Asset {
	a.Properties = a.Properties.Clone()
	return a
}

type Settings struct {
	CanvasWidth     float64 `json:"canvasWidth" yaml:"canvasWidth"`
	CanvasHeight    float64 `json:"canvasHeight" yaml:"canvasHeight"`
	Gravity         float64 `json:"gravity" yaml:"gravity"`
	GridSize        float64 `json:"gridSize" yaml:"gridSize"`
	ShowGrid        bool    `json:"showGrid" yaml:"showGrid"`
	SnapToGrid      bool    `json:"snapToGrid" yaml:"snapToGrid"`
	BackgroundColor string  `json:"backgroundColor" yaml:"backgroundColor"`
}

// DefaultSettings are the settings every new project starts with.
func DefaultSettings() Settings {
	return Settings{
		CanvasWidth:     1024,
		CanvasHeight:    576,
		Gravity:         800,
		GridSize:        32,
		ShowGrid:        true,
		SnapToGrid:      true,
		BackgroundColor: "#1e293b",
	}
}

type Project struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Type          ProjectType `json:"type"`
	CreatedAt     time.Time   `json:"createdAt"`
	LastModified  time.Time   `json:"lastModified"`
	Scenes        []Scene     `json:"scenes"`
	ActiveSceneID string      `json:"activeSceneId"`
	Assets        []Asset     `json:"assets"`
	Settings      Settings    `json:"settings"`
}

func (p Project) SceneIndex(id string) int {
	for i := range p.Scenes {
		if p.Scenes[i].ID == id {
			return i
		}
	}
	return -1
}

func (p Project) Scene(id string) (Scene, bool) {
	if i := p.SceneIndex(id); i >= 0 {
		return p.Scenes[i], true
	}
	return Scene{}, false
}

// ActiveScene returns the scene named by ActiveSceneID.
func (p Project) ActiveScene() (Scene, bool) {
	return p.Scene(p.ActiveSceneID)
}

// Clone returns a deep copy sharing no slices or maps with p.
func (p Project) Clone() Project {
	if p.Scenes != nil {
		scenes := make([]Scene, len(p.Scenes))
		for i, s := range p.Scenes {
			scenes[i] = s.Clone()
		}
		p.Scenes = scenes
	}
	if p.Assets != nil {
		assets := make([]Asset, len(p.Assets))
		for i, a := range p.Assets {
			assets[i] = a.Clone()
		}
		p.Assets = assets
	}
	return p
}
