package papercraft

import "go.uber.org/zap"

// poolOf returns the pool for component id, creating it when create is set. It panics with
// PoolNotFoundError when the pool is missing and create is not set.
func poolOf[T any](r *registry, id uint32, create bool) *Pool[T] {
	if int(id) >= len(r.componentPools) {
		if !create {
			return nil
		}
		grow := int(id) + 1 - len(r.componentPools)
		r.componentPools = append(r.componentPools, make([]componentPool, grow)...)
	}
	if r.componentPools[id] == nil {
		if !create {
			return nil
		}
		r.componentPools[id] = newPool[T](Config.poolCapacity)
	}
	return r.componentPools[id].(*Pool[T])
}

func addComponent[T any](entity Entity, id uint32, value T) {
	r := entity.mustRegistry()
	signature := r.liveSignatureRef(entity)

	poolOf[T](r, id, true).Set(entity.id, value)
	signature.Set(id)
	r.componentsChanged(entity)

	if ce := Config.logger.Check(zap.DebugLevel, "component added"); ce != nil {
		typ, _ := ComponentTypeOf(id)
		ce.Write(zap.Int("entity", entity.id), zap.Stringer("component", typ))
	}
}

// removeComponent clears the signature bit and drops the pool entry, if any.
func removeComponent(entity Entity, id uint32) {
	r := entity.mustRegistry()
	signature := r.liveSignatureRef(entity)
	if int(id) < len(r.componentPools) && r.componentPools[id] != nil {
		r.componentPools[id].RemoveEntityFromPool(entity.id)
	}
	if !signature.Test(id) {
		return
	}
	signature.Clear(id)
	r.componentsChanged(entity)
}

func hasComponent(entity Entity, id uint32) bool {
	return entity.mustRegistry().signatureRef(entity).Test(id)
}

func getComponent[T any](entity Entity, id uint32) *T {
	r := entity.mustRegistry()
	r.signatureRef(entity)
	pool := poolOf[T](r, id, false)
	if pool == nil {
		typ, _ := ComponentTypeOf(id)
		panic(PoolNotFoundError{Type: typ})
	}
	return pool.Get(entity.id)
}
