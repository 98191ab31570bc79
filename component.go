package papercraft

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
)

// MaxComponents is the number of distinct component types a process can use.
const MaxComponents = 32

type componentType struct {
	id    uint32
	token Component
	typ   reflect.Type
}

// componentTypes assigns ids process-wide, in the order types are first requested.
var componentTypes = struct {
	sync.RWMutex
	byType  map[reflect.Type]componentType
	byToken map[Component]componentType
	ordered []componentType
}{
	byType:  make(map[reflect.Type]componentType),
	byToken: make(map[Component]componentType),
}

// ComponentID returns the id of component type T, assigning the next free id on first use.
// The id is stable for the life of the process.
func ComponentID[T any]() uint32 {
	return componentTypeFor[T]().id
}

// ComponentOf returns the token identifying component type T.
func ComponentOf[T any]() Component {
	return componentTypeFor[T]().token
}

// ComponentIDOf returns the id of a token obtained from ComponentOf or FactoryNewComponent.
// It panics with ComponentTokenError for tokens that were not issued by this package.
func ComponentIDOf(c Component) uint32 {
	if resolved, ok := c.(interface{ componentID() uint32 }); ok {
		return resolved.componentID()
	}
	componentTypes.RLock()
	ct, ok := componentTypes.byToken[c]
	componentTypes.RUnlock()
	if !ok {
		panic(ComponentTokenError{Component: c})
	}
	return ct.id
}

// ComponentTypeOf returns the Go type registered under id.
func ComponentTypeOf(id uint32) (reflect.Type, bool) {
	componentTypes.RLock()
	defer componentTypes.RUnlock()
	if int(id) >= len(componentTypes.ordered) {
		return nil, false
	}
	return componentTypes.ordered[id].typ, true
}

// RegisteredComponents reports how many component types have been assigned an id.
func RegisteredComponents() int {
	componentTypes.RLock()
	defer componentTypes.RUnlock()
	return len(componentTypes.ordered)
}

func componentTypeFor[T any]() componentType {
	typ := reflect.TypeFor[T]()

	componentTypes.RLock()
	ct, ok := componentTypes.byType[typ]
	componentTypes.RUnlock()
	if ok {
		return ct
	}

	componentTypes.Lock()
	defer componentTypes.Unlock()
	// Another caller may have won the race between the two locks.
	if ct, ok := componentTypes.byType[typ]; ok {
		return ct
	}
	next := len(componentTypes.ordered)
	if next >= MaxComponents {
		panic(MaxComponentsError{Type: typ, Max: MaxComponents})
	}
	ct = componentType{
		id:    uint32(next),
		token: table.FactoryNewElementType[T](),
		typ:   typ,
	}
	componentTypes.ordered = append(componentTypes.ordered, ct)
	componentTypes.byType[typ] = ct
	componentTypes.byToken[ct.token] = ct
	return ct
}
