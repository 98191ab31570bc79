// Package assets holds textures and fonts by string id for the render systems.
package assets

import "fmt"

// Cache is a capacity-bounded, string-keyed store with stable indices.
type Cache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}

// CapacityError is returned when a cache is full.
type CapacityError struct {
	Key      string
	Capacity int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d), cannot register %q", e.Capacity, e.Key)
}

func NewCache[T any](capacity int) *Cache[T] {
	return &Cache[T]{
		items:       make([]T, 0, capacity),
		itemIndices: make(map[string]int),
		maxCapacity: capacity,
	}
}

func (c *Cache[T]) GetIndex(key string) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *Cache[T]) GetItem(index int) *T {
	return &c.items[index]
}

// Get returns the item registered under key.
func (c *Cache[T]) Get(key string) (*T, bool) {
	index, ok := c.itemIndices[key]
	if !ok {
		return nil, false
	}
	return &c.items[index], true
}

// Register stores item under key and returns its index. Registering an existing key
// replaces the item in place and keeps its index.
func (c *Cache[T]) Register(key string, item T) (int, error) {
	if idx, ok := c.itemIndices[key]; ok {
		c.items[idx] = item
		return idx, nil
	}
	if len(c.itemIndices) >= c.maxCapacity {
		return -1, CapacityError{Key: key, Capacity: c.maxCapacity}
	}

	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

func (c *Cache[T]) Len() int {
	return len(c.items)
}

func (c *Cache[T]) Clear() {
	c.items = make([]T, 0, c.maxCapacity)
	c.itemIndices = make(map[string]int)
}
