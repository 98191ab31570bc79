package papercraft

import (
	"reflect"

	"go.uber.org/zap"
)

var _ Registry = &registry{}

type registry struct {
	numEntities int
	freeIDs     []int
	alive       []bool

	componentPools            []componentPool
	entityComponentSignatures []Signature

	systems     []System
	systemIndex map[reflect.Type]int

	opQueue opQueue
	labels  labels
}

func newRegistry() *registry {
	return &registry{
		systemIndex: make(map[reflect.Type]int),
		opQueue:     newOpQueue(),
		labels:      newLabels(),
	}
}

// CreateEntity returns a new entity immediately. Systems see it after the next Update.
func (r *registry) CreateEntity() Entity {
	var entityID int
	if len(r.freeIDs) > 0 {
		entityID = r.freeIDs[0]
		r.freeIDs = r.freeIDs[1:]
	} else {
		entityID = r.numEntities
		r.numEntities++
		if entityID >= len(r.entityComponentSignatures) {
			grow := entityID + 1 - len(r.entityComponentSignatures)
			r.entityComponentSignatures = append(r.entityComponentSignatures, make([]Signature, grow)...)
			r.alive = append(r.alive, make([]bool, grow)...)
		}
	}
	r.alive[entityID] = true
	r.entityComponentSignatures[entityID].Reset()

	entity := Entity{id: entityID, registry: r}
	r.opQueue.EnqueueAdd(entity)
	Config.logger.Debug("entity created", zap.Int("id", entityID))
	return entity
}

// KillEntity stages entity for removal at the next Update. Dead entities are ignored.
// Handles carry no generation: once the id has been reused, killing a stale handle kills
// the entity that now owns the id.
func (r *registry) KillEntity(entity Entity) {
	if !r.Alive(entity) {
		return
	}
	r.opQueue.EnqueueKill(entity)
	Config.logger.Debug("entity staged for kill", zap.Int("id", entity.id))
}

// Update applies staged operations: additions first, then membership refreshes, then kills.
func (r *registry) Update() {
	adds, refreshes, kills := r.opQueue.drain()

	for _, entity := range adds {
		r.AddEntityToSystems(entity)
	}
	for _, entity := range refreshes {
		r.refreshEntityInSystems(entity)
	}
	for _, entity := range kills {
		r.destroy(entity)
	}

	if len(adds)+len(refreshes)+len(kills) > 0 {
		Config.logger.Debug("registry flushed",
			zap.Int("added", len(adds)),
			zap.Int("refreshed", len(refreshes)),
			zap.Int("killed", len(kills)),
		)
	}
}

func (r *registry) destroy(entity Entity) {
	r.RemoveEntityFromSystems(entity)
	r.entityComponentSignatures[entity.id].Reset()
	for _, pool := range r.componentPools {
		if pool != nil {
			pool.RemoveEntityFromPool(entity.id)
		}
	}
	r.RemoveEntityTag(entity)
	r.RemoveEntityGroup(entity)
	r.alive[entity.id] = false
	r.freeIDs = append(r.freeIDs, entity.id)
	Config.logger.Debug("entity killed", zap.Int("id", entity.id))
}

// AddEntityToSystems enrols entity in every system whose Signature it satisfies.
func (r *registry) AddEntityToSystems(entity Entity) {
	entitySignature := r.Signature(entity)
	for _, system := range r.systems {
		if entitySignature.Matches(system.Signature()) {
			r.enrol(system, entity)
		}
	}
}

// RemoveEntityFromSystems drops entity from every interest list it is part of.
func (r *registry) RemoveEntityFromSystems(entity Entity) {
	for _, system := range r.systems {
		r.dismiss(system, entity)
	}
}

func (r *registry) refreshEntityInSystems(entity Entity) {
	if !r.Alive(entity) {
		return
	}
	entitySignature := r.Signature(entity)
	for _, system := range r.systems {
		if entitySignature.Matches(system.Signature()) {
			r.enrol(system, entity)
		} else {
			r.dismiss(system, entity)
		}
	}
}

func (r *registry) enrol(system System, entity Entity) {
	if m, ok := system.(interface{ HasEntity(Entity) bool }); ok && m.HasEntity(entity) {
		return
	}
	system.AddEntityToSystem(entity)
	if hook, ok := system.(EntityAddedHook); ok {
		hook.OnEntityAdded(entity)
	}
}

func (r *registry) dismiss(system System, entity Entity) {
	if m, ok := system.(interface{ HasEntity(Entity) bool }); ok && !m.HasEntity(entity) {
		return
	}
	system.RemoveEntityFromSystem(entity)
	if hook, ok := system.(EntityRemovedHook); ok {
		hook.OnEntityRemoved(entity)
	}
}

// Signature returns the component signature of entity. It panics with EntityRangeError for
// ids this registry never issued.
func (r *registry) Signature(entity Entity) Signature {
	return *r.signatureRef(entity)
}

func (r *registry) signatureRef(entity Entity) *Signature {
	if entity.id < 0 || entity.id >= len(r.entityComponentSignatures) {
		panic(EntityRangeError{EntityID: entity.id, NumEntities: r.numEntities})
	}
	return &r.entityComponentSignatures[entity.id]
}

// liveSignatureRef is signatureRef for mutations. It panics with DeadEntityError once the
// entity has been destroyed, so a stale handle cannot write into a recycled id.
func (r *registry) liveSignatureRef(entity Entity) *Signature {
	signature := r.signatureRef(entity)
	if !r.alive[entity.id] {
		panic(DeadEntityError{EntityID: entity.id})
	}
	return signature
}

// Alive reports whether entity has been created and not yet destroyed by a flush.
func (r *registry) Alive(entity Entity) bool {
	return entity.id >= 0 && entity.id < len(r.alive) && r.alive[entity.id]
}

// NumEntities is the number of distinct ids issued so far.
func (r *registry) NumEntities() int {
	return r.numEntities
}

// LiveEntities is the number of entities created and not yet destroyed.
func (r *registry) LiveEntities() int {
	return r.numEntities - len(r.freeIDs)
}

// Entities returns the live entities in id order, including those created since the last
// Update.
func (r *registry) Entities() []Entity {
	entities := make([]Entity, 0, r.LiveEntities())
	for id, alive := range r.alive {
		if alive {
			entities = append(entities, Entity{id: id, registry: r})
		}
	}
	return entities
}

// Pending reports how many creations and kills wait for the next Update.
func (r *registry) Pending() (toAdd, toKill int) {
	return r.opQueue.Len()
}

// componentsChanged is called after an entity's signature changed.
func (r *registry) componentsChanged(entity Entity) {
	r.opQueue.EnqueueRefresh(entity)
}
