package papercraft

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

// Registry is the aggregate root of the ECS. It creates and kills entities, owns the
// component pools and signatures, and keeps system interest lists up to date.
type Registry interface {
	CreateEntity() Entity
	KillEntity(Entity)
	Update()

	AddEntityToSystems(Entity)
	RemoveEntityFromSystems(Entity)

	AddSystem(System) error
	SystemOf(reflect.Type) (System, bool)
	RemoveSystemOf(reflect.Type) bool
	Systems() []System

	Signature(Entity) Signature
	Alive(Entity) bool
	NumEntities() int
	LiveEntities() int
	Entities() []Entity
	Pending() (toAdd, toKill int)

	TagEntity(Entity, string)
	EntityHasTag(Entity, string) bool
	EntityByTag(string) (Entity, bool)
	RemoveEntityTag(Entity)

	GroupEntity(Entity, string)
	EntityBelongsToGroup(Entity, string) bool
	EntitiesByGroup(string) []Entity
	RemoveEntityGroup(Entity)
}

// System is implemented by anything that wants the Registry to maintain a list of the
// entities matching a required Signature. Embed BaseSystem to get an implementation.
type System interface {
	Signature() Signature
	AddEntityToSystem(Entity)
	RemoveEntityFromSystem(Entity)
	SystemEntities() []Entity
}

// EntityAddedHook is an optional System extension called after an entity joins the system.
type EntityAddedHook interface {
	OnEntityAdded(Entity)
}

// EntityRemovedHook is an optional System extension called after an entity leaves the system.
type EntityRemovedHook interface {
	OnEntityRemoved(Entity)
}

// Component identifies a component type. Tokens are created once per Go type and can be
// compared with ==.
type Component interface {
	table.ElementType
}

// componentPool is the type-erased view of a Pool used by the Registry for bulk removal.
type componentPool interface {
	RemoveEntityFromPool(entityID int)
	Len() int
}
