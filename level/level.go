// Package level describes a playable map (assets and entities) and spawns it into a registry.
// Levels are written as YAML files or as Lua scripts that assign a global Level table.
package level

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/TheBitDrifter/papercraft/components"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultLevel []byte

type Description struct {
	Map      Map      `yaml:"map"`
	Assets   []Asset  `yaml:"assets"`
	Entities []Entity `yaml:"entities"`
}

type Map struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Asset types.
const (
	AssetTexture = "texture"
	AssetFont    = "font"
)

// Asset is a texture or font. Textures use Glyph for a single frame or Frames for a
// rows-by-frames grid.
type Asset struct {
	Type       string     `yaml:"type"`
	ID         string     `yaml:"id"`
	Glyph      string     `yaml:"glyph"`
	Frames     [][]string `yaml:"frames"`
	Color      string     `yaml:"color"`
	Background string     `yaml:"background"`
	Bold       bool       `yaml:"bold"`
}

type Entity struct {
	Tag        string     `yaml:"tag"`
	Group      string     `yaml:"group"`
	Components Components `yaml:"components"`
}

// Components lists the optional components of an entity. Absent entries are not added.
type Components struct {
	Transform          *Transform          `yaml:"transform"`
	RigidBody          *RigidBody          `yaml:"rigidbody"`
	Sprite             *Sprite             `yaml:"sprite"`
	Animation          *Animation          `yaml:"animation"`
	BoxCollider        *BoxCollider        `yaml:"boxcollider"`
	Health             *Health             `yaml:"health"`
	ProjectileEmitter  *ProjectileEmitter  `yaml:"projectile_emitter"`
	KeyboardControlled *KeyboardControlled `yaml:"keyboard_controlled"`
	CameraFollow       bool                `yaml:"camera_follow"`
	TextLabel          *TextLabel          `yaml:"text_label"`
}

type Transform struct {
	Position components.Vec2  `yaml:"position"`
	Scale    *components.Vec2 `yaml:"scale"` // defaults to 1,1
	Rotation float64          `yaml:"rotation"`
}

type RigidBody struct {
	Velocity components.Vec2 `yaml:"velocity"`
}

type Sprite struct {
	AssetID string `yaml:"asset_id"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Layer   int    `yaml:"layer"`
	SrcX    int    `yaml:"src_x"`
	SrcY    int    `yaml:"src_y"`
}

type Animation struct {
	NumFrames int   `yaml:"num_frames"`
	Speed     int   `yaml:"speed"` // frames per second
	Loop      *bool `yaml:"loop"`  // defaults to true
}

type BoxCollider struct {
	Width  int             `yaml:"width"`
	Height int             `yaml:"height"`
	Offset components.Vec2 `yaml:"offset"`
}

type Health struct {
	Percentage int `yaml:"percentage"`
}

type ProjectileEmitter struct {
	Velocity   components.Vec2 `yaml:"velocity"`
	RepeatMS   int             `yaml:"repeat_ms"`
	DurationMS *int            `yaml:"duration_ms"` // defaults to 10000
	Damage     *int            `yaml:"damage"`      // defaults to 10
	Friendly   bool            `yaml:"friendly"`
}

type KeyboardControlled struct {
	Up    components.Vec2 `yaml:"up"`
	Right components.Vec2 `yaml:"right"`
	Down  components.Vec2 `yaml:"down"`
	Left  components.Vec2 `yaml:"left"`
}

type TextLabel struct {
	Position components.Vec2 `yaml:"position"`
	Text     string          `yaml:"text"`
	Font     string          `yaml:"font"`
	Color    string          `yaml:"color"`
	Fixed    *bool           `yaml:"fixed"` // defaults to true
}

// Default returns the built-in level.
func Default() (*Description, error) {
	return ParseYAML(defaultLevel)
}

// LoadYAML reads a level description from a YAML file.
func LoadYAML(path string) (*Description, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	d, err := ParseYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return d, nil
}

func ParseYAML(raw []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Description) validate() error {
	if d.Map.Width < 0 || d.Map.Height < 0 {
		return fmt.Errorf("map size %dx%d is negative", d.Map.Width, d.Map.Height)
	}
	for i, a := range d.Assets {
		if a.ID == "" {
			return fmt.Errorf("asset %d has no id", i)
		}
		if a.Type != AssetTexture && a.Type != AssetFont {
			return fmt.Errorf("asset %q: unknown type %q", a.ID, a.Type)
		}
	}
	return nil
}
