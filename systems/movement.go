package systems

import (
	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/components"
)

// MovementSystem integrates velocity into position.
type MovementSystem struct {
	papercraft.BaseSystem
	transform papercraft.AccessibleComponent[components.Transform]
	rigidBody papercraft.AccessibleComponent[components.RigidBody]
}

func NewMovementSystem() *MovementSystem {
	s := &MovementSystem{
		transform: papercraft.FactoryNewComponent[components.Transform](),
		rigidBody: papercraft.FactoryNewComponent[components.RigidBody](),
	}
	s.Require(s.transform, s.rigidBody)
	return s
}

func (s *MovementSystem) Phase() Phase { return PhaseUpdate }

func (s *MovementSystem) Update(f *Frame) {
	for _, entity := range s.SystemEntities() {
		transform := s.transform.GetFromEntity(entity)
		rigidBody := s.rigidBody.GetFromEntity(entity)
		transform.Position = transform.Position.Add(rigidBody.Velocity.Scale(f.Delta))
	}
}

// AnimationSystem advances sprite frames from elapsed time.
type AnimationSystem struct {
	papercraft.BaseSystem
	animation papercraft.AccessibleComponent[components.Animation]
	sprite    papercraft.AccessibleComponent[components.Sprite]
}

func NewAnimationSystem() *AnimationSystem {
	s := &AnimationSystem{
		animation: papercraft.FactoryNewComponent[components.Animation](),
		sprite:    papercraft.FactoryNewComponent[components.Sprite](),
	}
	s.Require(s.animation, s.sprite)
	return s
}

func (s *AnimationSystem) Phase() Phase { return PhaseUpdate }

func (s *AnimationSystem) Update(f *Frame) {
	for _, entity := range s.SystemEntities() {
		animation := s.animation.GetFromEntity(entity)
		sprite := s.sprite.GetFromEntity(entity)

		elapsed := (f.Now - animation.StartTime).Milliseconds()
		frame := int(elapsed * int64(animation.FrameSpeedRate) / 1000)
		if !animation.IsLoop && frame >= animation.NumFrames {
			frame = animation.NumFrames - 1
		}
		animation.CurrentFrame = frame % max(animation.NumFrames, 1)
		sprite.SrcRect.X = animation.CurrentFrame * sprite.Width
	}
}
