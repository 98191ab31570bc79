package systems

import (
	"time"

	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/components"
	"github.com/TheBitDrifter/papercraft/events"
	"go.uber.org/zap"
)

const (
	BulletAssetID = "bullet-image"
	bulletSize    = 1
	bulletLayer   = 4
)

// ProjectileEmitSystem spawns projectiles from emitters, on a timer or when the player
// presses space.
type ProjectileEmitSystem struct {
	papercraft.BaseSystem
	emitter   papercraft.AccessibleComponent[components.ProjectileEmitter]
	transform papercraft.AccessibleComponent[components.Transform]
	sprite    papercraft.AccessibleComponent[components.Sprite]
	rigidBody papercraft.AccessibleComponent[components.RigidBody]
	follow    papercraft.AccessibleComponent[components.CameraFollow]
}

func NewProjectileEmitSystem() *ProjectileEmitSystem {
	s := &ProjectileEmitSystem{
		emitter:   papercraft.FactoryNewComponent[components.ProjectileEmitter](),
		transform: papercraft.FactoryNewComponent[components.Transform](),
		sprite:    papercraft.FactoryNewComponent[components.Sprite](),
		rigidBody: papercraft.FactoryNewComponent[components.RigidBody](),
		follow:    papercraft.FactoryNewComponent[components.CameraFollow](),
	}
	s.Require(s.emitter, s.transform)
	return s
}

func (s *ProjectileEmitSystem) Phase() Phase { return PhaseUpdate }

func (s *ProjectileEmitSystem) SubscribeToEvents(bus *events.Bus) {
	events.Subscribe(bus, s.OnKeyPressed)
}

// OnKeyPressed fires one projectile from every camera-followed emitter in the direction
// the entity is moving.
func (s *ProjectileEmitSystem) OnKeyPressed(event *events.KeyPressedEvent) {
	if event.Key != events.KeySpace {
		return
	}
	for _, entity := range s.SystemEntities() {
		if !s.follow.Check(entity) {
			continue
		}
		emitter := s.emitter.GetFromEntity(entity)
		var velocity components.Vec2
		if rb, ok := s.rigidBody.GetFromEntitySafe(entity); ok {
			velocity = components.Vec2{
				X: emitter.ProjectileVelocity.X * sign(rb.Velocity.X),
				Y: emitter.ProjectileVelocity.Y * sign(rb.Velocity.Y),
			}
		}
		s.spawn(entity, velocity, emitter, event.At)
	}
}

func (s *ProjectileEmitSystem) Update(f *Frame) {
	for _, entity := range s.SystemEntities() {
		emitter := s.emitter.GetFromEntity(entity)
		if emitter.RepeatFrequency == 0 {
			continue
		}
		if f.Now-emitter.LastEmissionTime > emitter.RepeatFrequency {
			projectile := s.spawn(entity, emitter.ProjectileVelocity, emitter, f.Now)
			emitter.LastEmissionTime = f.Now
			f.logger().Debug("projectile emitted", zap.Int("emitter", entity.ID()), zap.Int("projectile", projectile.ID()))
		}
	}
}

// spawn creates a projectile centred on the emitting entity's sprite.
func (s *ProjectileEmitSystem) spawn(entity papercraft.Entity, velocity components.Vec2, emitter *components.ProjectileEmitter, now time.Duration) papercraft.Entity {
	transform := s.transform.GetFromEntity(entity)
	position := transform.Position
	if sprite, ok := s.sprite.GetFromEntitySafe(entity); ok {
		position.X += transform.Scale.X * float64(sprite.Width) / 2
		position.Y += transform.Scale.Y * float64(sprite.Height) / 2
	}

	projectile := entity.Registry().CreateEntity()
	projectile.Group(GroupProjectiles)
	papercraft.AddComponent(projectile, components.NewTransform(position))
	papercraft.AddComponent(projectile, components.RigidBody{Velocity: velocity})
	papercraft.AddComponent(projectile, components.NewSprite(BulletAssetID, bulletSize, bulletSize, bulletLayer))
	papercraft.AddComponent(projectile, components.BoxCollider{Width: bulletSize, Height: bulletSize})
	papercraft.AddComponent(projectile, components.Projectile{
		IsFriendly:       emitter.IsFriendly,
		HitPercentDamage: emitter.HitPercentDamage,
		Duration:         emitter.ProjectileDuration,
		StartTime:        now,
	})
	return projectile
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ProjectileLifeCycleSystem kills projectiles that outlived their duration.
type ProjectileLifeCycleSystem struct {
	papercraft.BaseSystem
	projectile papercraft.AccessibleComponent[components.Projectile]
}

func NewProjectileLifeCycleSystem() *ProjectileLifeCycleSystem {
	s := &ProjectileLifeCycleSystem{
		projectile: papercraft.FactoryNewComponent[components.Projectile](),
	}
	s.Require(s.projectile)
	return s
}

func (s *ProjectileLifeCycleSystem) Phase() Phase { return PhaseUpdate }

func (s *ProjectileLifeCycleSystem) Update(f *Frame) {
	for _, entity := range s.SystemEntities() {
		projectile := s.projectile.GetFromEntity(entity)
		if f.Now-projectile.StartTime > projectile.Duration {
			entity.Kill()
		}
	}
}
