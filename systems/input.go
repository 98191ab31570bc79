package systems

import (
	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/components"
	"github.com/TheBitDrifter/papercraft/events"
)

// Sprite rows for each facing.
const (
	rowUp = iota
	rowRight
	rowDown
	rowLeft
)

// KeyboardControlSystem steers keyboard-controlled entities with the arrow keys.
type KeyboardControlSystem struct {
	papercraft.BaseSystem
	control   papercraft.AccessibleComponent[components.KeyboardControlled]
	sprite    papercraft.AccessibleComponent[components.Sprite]
	rigidBody papercraft.AccessibleComponent[components.RigidBody]
}

func NewKeyboardControlSystem() *KeyboardControlSystem {
	s := &KeyboardControlSystem{
		control:   papercraft.FactoryNewComponent[components.KeyboardControlled](),
		sprite:    papercraft.FactoryNewComponent[components.Sprite](),
		rigidBody: papercraft.FactoryNewComponent[components.RigidBody](),
	}
	s.Require(s.control, s.sprite, s.rigidBody)
	return s
}

func (s *KeyboardControlSystem) Phase() Phase { return PhaseInput }

func (s *KeyboardControlSystem) Update(*Frame) {}

func (s *KeyboardControlSystem) SubscribeToEvents(bus *events.Bus) {
	events.Subscribe(bus, s.OnKeyPressed)
}

func (s *KeyboardControlSystem) OnKeyPressed(event *events.KeyPressedEvent) {
	for _, entity := range s.SystemEntities() {
		control := s.control.GetFromEntity(entity)
		sprite := s.sprite.GetFromEntity(entity)
		rigidBody := s.rigidBody.GetFromEntity(entity)

		switch event.Key {
		case events.KeyUp:
			rigidBody.Velocity = control.UpVelocity
			sprite.SrcRect.Y = sprite.Height * rowUp
		case events.KeyRight:
			rigidBody.Velocity = control.RightVelocity
			sprite.SrcRect.Y = sprite.Height * rowRight
		case events.KeyDown:
			rigidBody.Velocity = control.DownVelocity
			sprite.SrcRect.Y = sprite.Height * rowDown
		case events.KeyLeft:
			rigidBody.Velocity = control.LeftVelocity
			sprite.SrcRect.Y = sprite.Height * rowLeft
		}
	}
}

// CameraMovementSystem keeps the camera centred on camera-followed entities.
type CameraMovementSystem struct {
	papercraft.BaseSystem
	transform papercraft.AccessibleComponent[components.Transform]
}

func NewCameraMovementSystem() *CameraMovementSystem {
	s := &CameraMovementSystem{
		transform: papercraft.FactoryNewComponent[components.Transform](),
	}
	papercraft.RequireComponent[components.CameraFollow](&s.BaseSystem)
	s.Require(s.transform)
	return s
}

func (s *CameraMovementSystem) Phase() Phase { return PhasePostUpdate }

func (s *CameraMovementSystem) Update(f *Frame) {
	if f.Camera == nil {
		return
	}
	for _, entity := range s.SystemEntities() {
		f.Camera.Center(s.transform.GetFromEntity(entity).Position)
	}
}
