package papercraft

import (
	"iter"
	"reflect"
)

var _ componentPool = &Pool[struct{}]{}

// Pool stores the components of a single type in a packed slice. Element i of the slice
// belongs to the entity recorded in indexToEntity[i]; there are never gaps below Len.
type Pool[T any] struct {
	data          []T
	size          int
	entityToIndex map[int]int
	indexToEntity map[int]int
}

func newPool[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool[T]{
		data:          make([]T, capacity),
		entityToIndex: make(map[int]int, capacity),
		indexToEntity: make(map[int]int, capacity),
	}
}

func (p *Pool[T]) IsEmpty() bool {
	return p.size == 0
}

// Len is the number of live elements.
func (p *Pool[T]) Len() int {
	return p.size
}

// Cap is the number of elements the pool can hold before growing.
func (p *Pool[T]) Cap() int {
	return len(p.data)
}

// Set stores value for entityID, overwriting in place when the entity already has a slot.
func (p *Pool[T]) Set(entityID int, value T) {
	if index, ok := p.entityToIndex[entityID]; ok {
		p.data[index] = value
		return
	}
	index := p.size
	if index >= len(p.data) {
		grown := make([]T, max(2*len(p.data), 1))
		copy(grown, p.data[:p.size])
		p.data = grown
	}
	p.entityToIndex[entityID] = index
	p.indexToEntity[index] = entityID
	p.data[index] = value
	p.size++
}

// Remove moves the last element into the removed slot to keep the slice packed.
// Removing an entity that is not stored is a no-op.
func (p *Pool[T]) Remove(entityID int) {
	indexOfRemoved, ok := p.entityToIndex[entityID]
	if !ok {
		return
	}
	indexOfLast := p.size - 1
	entityOfLast := p.indexToEntity[indexOfLast]

	p.data[indexOfRemoved] = p.data[indexOfLast]
	var zero T
	p.data[indexOfLast] = zero

	p.entityToIndex[entityOfLast] = indexOfRemoved
	p.indexToEntity[indexOfRemoved] = entityOfLast
	delete(p.entityToIndex, entityID)
	delete(p.indexToEntity, indexOfLast)
	p.size--
}

func (p *Pool[T]) RemoveEntityFromPool(entityID int) {
	p.Remove(entityID)
}

func (p *Pool[T]) Has(entityID int) bool {
	_, ok := p.entityToIndex[entityID]
	return ok
}

// Get returns a pointer into the packed slice. The pointer is only valid until the next Set
// or Remove. Get panics with ComponentNotFoundError if the entity has no element here.
func (p *Pool[T]) Get(entityID int) *T {
	index, ok := p.entityToIndex[entityID]
	if !ok {
		panic(ComponentNotFoundError{Type: reflect.TypeFor[T](), EntityID: entityID})
	}
	return &p.data[index]
}

// Data returns the live elements. The slice aliases pool storage.
func (p *Pool[T]) Data() []T {
	return p.data[:p.size]
}

// EntityAt returns the entity owning slot index.
func (p *Pool[T]) EntityAt(index int) int {
	return p.indexToEntity[index]
}

// All yields every live element with its owning entity id, in slot order.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < p.size; i++ {
			if !yield(p.indexToEntity[i], &p.data[i]) {
				return
			}
		}
	}
}

func (p *Pool[T]) Clear() {
	clear(p.data)
	clear(p.entityToIndex)
	clear(p.indexToEntity)
	p.size = 0
}
