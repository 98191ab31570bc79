package systems

import (
	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/components"
	"github.com/TheBitDrifter/papercraft/events"
	"go.uber.org/zap"
)

// Group and tag names the damage rules are keyed on.
const (
	GroupProjectiles = "projectiles"
	GroupEnemies     = "enemies"
	TagPlayer        = "player"
)

// CollisionSystem emits a CollisionEvent for every overlapping pair of boxes.
type CollisionSystem struct {
	papercraft.BaseSystem
	transform papercraft.AccessibleComponent[components.Transform]
	collider  papercraft.AccessibleComponent[components.BoxCollider]
}

func NewCollisionSystem() *CollisionSystem {
	s := &CollisionSystem{
		transform: papercraft.FactoryNewComponent[components.Transform](),
		collider:  papercraft.FactoryNewComponent[components.BoxCollider](),
	}
	s.Require(s.transform, s.collider)
	return s
}

func (s *CollisionSystem) Phase() Phase { return PhaseUpdate }

func (s *CollisionSystem) Update(f *Frame) {
	entities := s.SystemEntities()
	for i, a := range entities {
		boxA := s.box(a)
		for _, b := range entities[i+1:] {
			if !boxA.overlaps(s.box(b)) {
				continue
			}
			f.logger().Debug("collision", zap.Int("a", a.ID()), zap.Int("b", b.ID()))
			if f.Bus != nil {
				events.Emit(f.Bus, events.CollisionEvent{A: a, B: b})
			}
		}
	}
}

type aabb struct {
	x, y, w, h float64
}

func (s *CollisionSystem) box(e papercraft.Entity) aabb {
	transform := s.transform.GetFromEntity(e)
	collider := s.collider.GetFromEntity(e)
	return aabb{
		x: transform.Position.X + collider.Offset.X,
		y: transform.Position.Y + collider.Offset.Y,
		w: float64(collider.Width),
		h: float64(collider.Height),
	}
}

func (a aabb) overlaps(b aabb) bool {
	return a.x < b.x+b.w &&
		a.x+a.w > b.x &&
		a.y < b.y+b.h &&
		a.y+a.h > b.y
}

// DamageSystem applies projectile damage when a projectile collides with the player or an
// enemy. Friendly projectiles only hurt enemies, hostile ones only the player.
type DamageSystem struct {
	papercraft.BaseSystem
	projectile papercraft.AccessibleComponent[components.Projectile]
	health     papercraft.AccessibleComponent[components.Health]
}

func NewDamageSystem() *DamageSystem {
	s := &DamageSystem{
		projectile: papercraft.FactoryNewComponent[components.Projectile](),
		health:     papercraft.FactoryNewComponent[components.Health](),
	}
	papercraft.RequireComponent[components.BoxCollider](&s.BaseSystem)
	return s
}

func (s *DamageSystem) Phase() Phase { return PhaseUpdate }

// Update does nothing; damage is driven by collision events.
func (s *DamageSystem) Update(*Frame) {}

func (s *DamageSystem) SubscribeToEvents(bus *events.Bus) {
	events.Subscribe(bus, s.OnCollision)
}

func (s *DamageSystem) OnCollision(event *events.CollisionEvent) {
	a, b := event.A, event.B
	switch {
	case a.BelongsToGroup(GroupProjectiles) && b.HasTag(TagPlayer):
		s.hit(a, b, false)
	case b.BelongsToGroup(GroupProjectiles) && a.HasTag(TagPlayer):
		s.hit(b, a, false)
	case a.BelongsToGroup(GroupProjectiles) && b.BelongsToGroup(GroupEnemies):
		s.hit(a, b, true)
	case b.BelongsToGroup(GroupProjectiles) && a.BelongsToGroup(GroupEnemies):
		s.hit(b, a, true)
	}
}

// hit damages target when the projectile's friendliness matches friendly.
func (s *DamageSystem) hit(projectile, target papercraft.Entity, friendly bool) {
	p, ok := s.projectile.GetFromEntitySafe(projectile)
	if !ok || p.IsFriendly != friendly {
		return
	}
	if health, ok := s.health.GetFromEntitySafe(target); ok {
		health.HealthPercentage -= p.HitPercentDamage
		if health.HealthPercentage <= 0 {
			target.Kill()
		}
	}
	projectile.Kill()
}
