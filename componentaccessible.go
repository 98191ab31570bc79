package papercraft

// AccessibleComponent pairs a component token with its resolved id so typed access does
// not repeat the type lookup on every call.
type AccessibleComponent[T any] struct {
	Component
	id uint32
}

// TypeID returns the component type id.
func (c AccessibleComponent[T]) TypeID() uint32 {
	return c.id
}

func (c AccessibleComponent[T]) componentID() uint32 {
	return c.id
}

// Add attaches value to entity, overwriting any existing value of this type.
func (c AccessibleComponent[T]) Add(entity Entity, value T) {
	addComponent(entity, c.id, value)
}

func (c AccessibleComponent[T]) Remove(entity Entity) {
	removeComponent(entity, c.id)
}

// Check reports whether entity carries this component.
func (c AccessibleComponent[T]) Check(entity Entity) bool {
	return hasComponent(entity, c.id)
}

// GetFromEntity returns the entity's component value
func (c AccessibleComponent[T]) GetFromEntity(entity Entity) *T {
	return getComponent[T](entity, c.id)
}

// GetFromEntitySafe returns the component and true, or nil and false when absent
func (c AccessibleComponent[T]) GetFromEntitySafe(entity Entity) (*T, bool) {
	if !hasComponent(entity, c.id) {
		return nil, false
	}
	return getComponent[T](entity, c.id), true
}

// Pool returns the pool holding this component in r, or nil if none was created yet.
func (c AccessibleComponent[T]) Pool(r Registry) *Pool[T] {
	reg, ok := r.(*registry)
	if !ok {
		return nil
	}
	return poolOf[T](reg, c.id, false)
}

// AddComponent attaches value to entity.
//
// The free functions resolve T's id through reflection and a locked map on every call.
// Per-frame code should hold an AccessibleComponent from FactoryNewComponent instead.
func AddComponent[T any](entity Entity, value T) {
	addComponent(entity, ComponentID[T](), value)
}

// RemoveComponent detaches the T component from entity. See AddComponent for the hot-path form.
func RemoveComponent[T any](entity Entity) {
	removeComponent(entity, ComponentID[T]())
}

// HasComponent reports whether entity carries a T. See AddComponent for the hot-path form.
func HasComponent[T any](entity Entity) bool {
	return hasComponent(entity, ComponentID[T]())
}

// GetComponent returns entity's T component. It panics if the entity does not carry one.
// Use AccessibleComponent.GetFromEntity in per-frame loops.
func GetComponent[T any](entity Entity) *T {
	return getComponent[T](entity, ComponentID[T]())
}
