package events

import (
	"time"

	"github.com/TheBitDrifter/papercraft"
)

// CollisionEvent reports that the boxes of A and B overlap this frame.
type CollisionEvent struct {
	A, B papercraft.Entity
}

// Key is a terminal-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyRight
	KeyDown
	KeyLeft
	KeySpace
	KeyEscape
	KeyDebug // toggles collider outlines
)

var keyNames = [...]string{"unknown", "up", "right", "down", "left", "space", "escape", "debug"}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

type KeyPressedEvent struct {
	Key Key
	At  time.Duration // game time of the key press
}
