package papercraft

import (
	"fmt"
	"reflect"
)

type ComponentNotFoundError struct {
	Type     reflect.Type
	EntityID int
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %d: %v", e.EntityID, e.Type)
}

type PoolNotFoundError struct {
	Type reflect.Type
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("no pool has been created for component: %v", e.Type)
}

type EntityRangeError struct {
	EntityID    int
	NumEntities int
}

func (e EntityRangeError) Error() string {
	return fmt.Sprintf("entity id %d out of range (%d entities created)", e.EntityID, e.NumEntities)
}

type InvalidEntityError struct {
	EntityID int
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %d is not bound to a registry", e.EntityID)
}

type DeadEntityError struct {
	EntityID int
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity %d has been destroyed", e.EntityID)
}

type SystemNotFoundError struct {
	Type reflect.Type
}

func (e SystemNotFoundError) Error() string {
	return fmt.Sprintf("system is not registered: %v", e.Type)
}

type SystemExistsError struct {
	Type reflect.Type
}

func (e SystemExistsError) Error() string {
	return fmt.Sprintf("system already registered: %v", e.Type)
}

type MaxComponentsError struct {
	Type reflect.Type
	Max  int
}

func (e MaxComponentsError) Error() string {
	return fmt.Sprintf("cannot register component %v: limit of %d component types reached", e.Type, e.Max)
}

type ComponentTokenError struct {
	Component Component
}

func (e ComponentTokenError) Error() string {
	return fmt.Sprintf("unknown component token: %T", e.Component)
}
