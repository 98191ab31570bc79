package papercraft

type factory struct{}

var Factory factory

func (f factory) NewRegistry() Registry {
	return newRegistry()
}

// FactoryNewComponent resolves the id of T once and returns a handle for typed access.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	ct := componentTypeFor[T]()
	return AccessibleComponent[T]{
		Component: ct.token,
		id:        ct.id,
	}
}

// FactoryNewPool returns an empty pool with room for capacity elements.
func FactoryNewPool[T any](capacity int) *Pool[T] {
	return newPool[T](capacity)
}
