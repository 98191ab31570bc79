// Package systems contains the gameplay systems that run on a papercraft registry each frame.
//
// Every system embeds papercraft.BaseSystem, declares its required components in its
// constructor and implements Updater so a Runner can drive it in phase order.
package systems

import (
	"time"

	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/assets"
	"github.com/TheBitDrifter/papercraft/components"
	"github.com/TheBitDrifter/papercraft/events"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Frame carries the per-frame inputs shared by all systems.
type Frame struct {
	Delta    float64       // seconds since the previous frame
	Now      time.Duration // time since the game started
	Registry papercraft.Registry
	Bus      *events.Bus
	Assets   *assets.Store
	Camera   *Camera
	Screen   tcell.Screen // nil when running headless
	Logger   *zap.Logger
}

func (f *Frame) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

// Camera is the visible window onto the map, in cells.
type Camera struct {
	X, Y          int
	Width, Height int
	MapWidth      int
	MapHeight     int
}

func NewCamera(width, height, mapWidth, mapHeight int) *Camera {
	return &Camera{Width: width, Height: height, MapWidth: mapWidth, MapHeight: mapHeight}
}

// Center moves the camera so pos is in the middle of the view, clamped to the map.
func (c *Camera) Center(pos components.Vec2) {
	c.X = int(pos.X) - c.Width/2
	c.Y = int(pos.Y) - c.Height/2
	c.X = clamp(c.X, 0, max(c.MapWidth-c.Width, 0))
	c.Y = clamp(c.Y, 0, max(c.MapHeight-c.Height, 0))
}

// WorldToScreen converts a world position to screen cells.
// visible is false when the result falls outside the view.
func (c *Camera) WorldToScreen(pos components.Vec2) (sx, sy int, visible bool) {
	sx = int(pos.X) - c.X
	sy = int(pos.Y) - c.Y
	visible = sx >= 0 && sx < c.Width && sy >= 0 && sy < c.Height
	return
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
