package papercraft

import (
	"maps"
	"slices"

	iter_util "github.com/TheBitDrifter/util/iter"
	"go.uber.org/zap"
)

// labels indexes tags (one entity per tag, one tag per entity) and groups (many entities
// per group, one group per entity).
type labels struct {
	entityPerTag     map[string]Entity
	tagPerEntity     map[int]string
	entitiesPerGroup map[string]map[int]Entity
	groupPerEntity   map[int]string
}

func newLabels() labels {
	return labels{
		entityPerTag:     make(map[string]Entity),
		tagPerEntity:     make(map[int]string),
		entitiesPerGroup: make(map[string]map[int]Entity),
		groupPerEntity:   make(map[int]string),
	}
}

// TagEntity binds tag to entity. A previous owner of the tag loses it, and a previous tag
// of the entity is released.
func (r *registry) TagEntity(entity Entity, tag string) {
	r.liveSignatureRef(entity)
	if owner, ok := r.labels.entityPerTag[tag]; ok && owner.id != entity.id {
		delete(r.labels.tagPerEntity, owner.id)
		Config.logger.Debug("tag moved", zap.String("tag", tag), zap.Int("from", owner.id), zap.Int("to", entity.id))
	}
	if previous, ok := r.labels.tagPerEntity[entity.id]; ok && previous != tag {
		delete(r.labels.entityPerTag, previous)
	}
	r.labels.entityPerTag[tag] = entity
	r.labels.tagPerEntity[entity.id] = tag
}

func (r *registry) EntityHasTag(entity Entity, tag string) bool {
	owner, ok := r.labels.entityPerTag[tag]
	return ok && owner.id == entity.id && r.labels.tagPerEntity[entity.id] == tag
}

func (r *registry) EntityByTag(tag string) (Entity, bool) {
	entity, ok := r.labels.entityPerTag[tag]
	return entity, ok
}

func (r *registry) RemoveEntityTag(entity Entity) {
	tag, ok := r.labels.tagPerEntity[entity.id]
	if !ok {
		return
	}
	delete(r.labels.tagPerEntity, entity.id)
	if owner, ok := r.labels.entityPerTag[tag]; ok && owner.id == entity.id {
		delete(r.labels.entityPerTag, tag)
	}
}

// GroupEntity places entity in group. An entity already in another group is moved, since
// an entity belongs to a single group.
func (r *registry) GroupEntity(entity Entity, group string) {
	r.liveSignatureRef(entity)
	if current, ok := r.labels.groupPerEntity[entity.id]; ok {
		if current == group {
			return
		}
		Config.logger.Warn("entity moved to another group",
			zap.Int("id", entity.id),
			zap.String("from", current),
			zap.String("to", group),
		)
		r.RemoveEntityGroup(entity)
	}
	members, ok := r.labels.entitiesPerGroup[group]
	if !ok {
		members = make(map[int]Entity)
		r.labels.entitiesPerGroup[group] = members
	}
	members[entity.id] = entity
	r.labels.groupPerEntity[entity.id] = group
}

func (r *registry) EntityBelongsToGroup(entity Entity, group string) bool {
	members, ok := r.labels.entitiesPerGroup[group]
	if !ok {
		return false
	}
	_, ok = members[entity.id]
	return ok
}

// EntitiesByGroup returns the members of group ordered by id.
func (r *registry) EntitiesByGroup(group string) []Entity {
	members, ok := r.labels.entitiesPerGroup[group]
	if !ok {
		return nil
	}
	entities := iter_util.Collect(maps.Values(members))
	slices.SortFunc(entities, Entity.Compare)
	return entities
}

func (r *registry) RemoveEntityGroup(entity Entity) {
	group, ok := r.labels.groupPerEntity[entity.id]
	if !ok {
		return
	}
	delete(r.labels.groupPerEntity, entity.id)
	if members, ok := r.labels.entitiesPerGroup[group]; ok {
		delete(members, entity.id)
		if len(members) == 0 {
			delete(r.labels.entitiesPerGroup, group)
		}
	}
}
