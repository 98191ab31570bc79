package papercraft

import "slices"

var _ System = &BaseSystem{}

// BaseSystem implements System. Concrete systems embed it, declare their requirements with
// RequireComponent in their constructor and iterate SystemEntities in their update.
type BaseSystem struct {
	signature Signature
	entities  []Entity
	members   map[int]struct{}
}

// RequireComponent adds component type T to the system's required Signature. It resolves T
// by reflection, so call it while building the system, not per frame.
func RequireComponent[T any](s *BaseSystem) {
	s.signature.Set(ComponentID[T]())
}

// Require adds the given components to the system's required Signature.
func (s *BaseSystem) Require(components ...Component) {
	for _, c := range components {
		s.signature.Set(ComponentIDOf(c))
	}
}

func (s *BaseSystem) Signature() Signature {
	return s.signature
}

// AddEntityToSystem appends entity to the interest list unless it is already there.
func (s *BaseSystem) AddEntityToSystem(entity Entity) {
	if s.members == nil {
		s.members = make(map[int]struct{})
	}
	if _, ok := s.members[entity.id]; ok {
		return
	}
	s.members[entity.id] = struct{}{}
	s.entities = append(s.entities, entity)
}

func (s *BaseSystem) RemoveEntityFromSystem(entity Entity) {
	if _, ok := s.members[entity.id]; !ok {
		return
	}
	delete(s.members, entity.id)
	s.entities = slices.DeleteFunc(s.entities, entity.Equals)
}

// SystemEntities returns a copy of the interest list in the order entities joined.
func (s *BaseSystem) SystemEntities() []Entity {
	return slices.Clone(s.entities)
}

func (s *BaseSystem) HasEntity(entity Entity) bool {
	_, ok := s.members[entity.id]
	return ok
}

func (s *BaseSystem) NumEntities() int {
	return len(s.entities)
}
