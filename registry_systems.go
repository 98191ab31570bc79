package papercraft

import (
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// AddSystem registers system under its dynamic type. Entities already flushed into the
// registry are not back-filled; systems are expected to be added before entities.
func (r *registry) AddSystem(system System) error {
	typ := reflect.TypeOf(system)
	if _, exists := r.systemIndex[typ]; exists {
		return SystemExistsError{Type: typ}
	}
	r.systemIndex[typ] = len(r.systems)
	r.systems = append(r.systems, system)
	Config.logger.Debug("system added", zap.Stringer("type", typ), zap.Stringer("signature", system.Signature()))
	return nil
}

func (r *registry) SystemOf(typ reflect.Type) (System, bool) {
	index, ok := r.systemIndex[typ]
	if !ok {
		return nil, false
	}
	return r.systems[index], true
}

// RemoveSystemOf unregisters the system of the given type. Reports whether one was found.
func (r *registry) RemoveSystemOf(typ reflect.Type) bool {
	index, ok := r.systemIndex[typ]
	if !ok {
		return false
	}
	r.systems = slices.Delete(r.systems, index, index+1)
	delete(r.systemIndex, typ)
	for i := index; i < len(r.systems); i++ {
		r.systemIndex[reflect.TypeOf(r.systems[i])] = i
	}
	return true
}

// Systems returns the registered systems in registration order.
func (r *registry) Systems() []System {
	return slices.Clone(r.systems)
}

// GetSystem returns the registered system of type S. It panics with SystemNotFoundError
// when none is registered.
func GetSystem[S System](r Registry) S {
	typ := reflect.TypeFor[S]()
	system, ok := r.SystemOf(typ)
	if !ok {
		panic(SystemNotFoundError{Type: typ})
	}
	return system.(S)
}

func HasSystem[S System](r Registry) bool {
	_, ok := r.SystemOf(reflect.TypeFor[S]())
	return ok
}

func RemoveSystem[S System](r Registry) bool {
	return r.RemoveSystemOf(reflect.TypeFor[S]())
}
