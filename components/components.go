// Package components holds the component types used by the PaperCraft gameplay systems.
// Components are plain data; constructors fill in the same defaults the level format uses.
package components

import "time"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Rect is an integer rectangle in texture or screen cells.
type Rect struct {
	X, Y, W, H int
}

type Transform struct {
	Position Vec2
	Scale    Vec2
	Rotation float64
}

func NewTransform(position Vec2) Transform {
	return Transform{Position: position, Scale: Vec2{X: 1, Y: 1}}
}

type RigidBody struct {
	Velocity Vec2
}

// Sprite references a texture in the asset store. SrcRect selects a frame of the texture.
type Sprite struct {
	AssetID    string
	Width      int
	Height     int
	LayerIndex int
	SrcRect    Rect
}

func NewSprite(assetID string, width, height, layerIndex int) Sprite {
	return Sprite{
		AssetID:    assetID,
		Width:      width,
		Height:     height,
		LayerIndex: layerIndex,
		SrcRect:    Rect{W: width, H: height},
	}
}

type BoxCollider struct {
	Width  int
	Height int
	Offset Vec2
}

// Animation cycles a sprite through NumFrames frames laid out horizontally.
type Animation struct {
	NumFrames      int
	CurrentFrame   int
	FrameSpeedRate int // frames per second
	IsLoop         bool
	StartTime      time.Duration
}

func NewAnimation(numFrames, frameSpeedRate int, isLoop bool, now time.Duration) Animation {
	return Animation{
		NumFrames:      max(numFrames, 1),
		CurrentFrame:   1,
		FrameSpeedRate: frameSpeedRate,
		IsLoop:         isLoop,
		StartTime:      now,
	}
}

type Health struct {
	HealthPercentage int
}

type Projectile struct {
	IsFriendly       bool
	HitPercentDamage int
	Duration         time.Duration
	StartTime        time.Duration
}

type ProjectileEmitter struct {
	ProjectileVelocity Vec2
	RepeatFrequency    time.Duration // zero disables automatic emission
	ProjectileDuration time.Duration
	HitPercentDamage   int
	IsFriendly         bool
	LastEmissionTime   time.Duration
}

func NewProjectileEmitter(velocity Vec2, repeat, duration time.Duration, damage int, friendly bool, now time.Duration) ProjectileEmitter {
	return ProjectileEmitter{
		ProjectileVelocity: velocity,
		RepeatFrequency:    repeat,
		ProjectileDuration: duration,
		HitPercentDamage:   damage,
		IsFriendly:         friendly,
		LastEmissionTime:   now,
	}
}

// KeyboardControlled maps the four arrow keys to velocities.
type KeyboardControlled struct {
	UpVelocity    Vec2
	RightVelocity Vec2
	DownVelocity  Vec2
	LeftVelocity  Vec2
}

// CameraFollow marks the entity the camera tracks.
type CameraFollow struct{}

type TextLabel struct {
	Position Vec2
	Text     string
	AssetID  string
	Color    string // tcell color name; empty uses the font style
	IsFixed  bool   // fixed labels ignore the camera
}

func NewTextLabel(position Vec2, text, assetID, color string) TextLabel {
	return TextLabel{Position: position, Text: text, AssetID: assetID, Color: color, IsFixed: true}
}
