package papercraft

import (
	"cmp"
	"strconv"
)

// Entity is a lightweight handle: an id plus the registry that issued it. Two handles are
// equal when their ids are equal. The zero Entity is not bound to any registry.
type Entity struct {
	id       int
	registry *registry
}

func (e Entity) ID() int {
	return e.id
}

// Registry returns the registry that created e, or nil for the zero Entity.
func (e Entity) Registry() Registry {
	if e.registry == nil {
		return nil
	}
	return e.registry
}

// Valid reports whether e was issued by a registry.
func (e Entity) Valid() bool {
	return e.registry != nil
}

func (e Entity) Equals(other Entity) bool {
	return e.id == other.id
}

// Compare orders entities by id.
func (e Entity) Compare(other Entity) int {
	return cmp.Compare(e.id, other.id)
}

func (e Entity) String() string {
	return "entity(" + strconv.Itoa(e.id) + ")"
}

// Kill stages e for destruction at the next Registry.Update.
func (e Entity) Kill() {
	e.mustRegistry().KillEntity(e)
}

// Tag binds the unique label tag to e, taking it away from any other entity.
func (e Entity) Tag(tag string) {
	e.mustRegistry().TagEntity(e, tag)
}

func (e Entity) HasTag(tag string) bool {
	return e.mustRegistry().EntityHasTag(e, tag)
}

// Group places e in the named group. An entity belongs to at most one group.
func (e Entity) Group(group string) {
	e.mustRegistry().GroupEntity(e, group)
}

func (e Entity) BelongsToGroup(group string) bool {
	return e.mustRegistry().EntityBelongsToGroup(e, group)
}

// Signature returns the set of component ids e currently carries.
func (e Entity) Signature() Signature {
	return e.mustRegistry().Signature(e)
}

// HasComponent reports whether e carries the component identified by c.
func (e Entity) HasComponent(c Component) bool {
	return e.Signature().Test(ComponentIDOf(c))
}

// RemoveComponent detaches the component identified by c.
func (e Entity) RemoveComponent(c Component) {
	removeComponent(e, ComponentIDOf(c))
}

func (e Entity) mustRegistry() *registry {
	if e.registry == nil {
		panic(InvalidEntityError{EntityID: e.id})
	}
	return e.registry
}
