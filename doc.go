/*
Package papercraft provides the Entity-Component-System (ECS) runtime of the PaperCraft engine.

Component data lives in per-type pools that use the sparse-set pattern: a densely packed slice
of values plus entity-to-slot and slot-to-entity maps, so iteration is a gap-free scan and
removal is a constant-time swap with the last element. Every entity carries a Signature, a
bitset of the component types it holds, and every system declares the Signature it requires.
The Registry routes an entity to a system when the entity's Signature is a superset of the
system's.

Core Concepts:

  - Entity: An integer handle bound to the Registry that created it. It owns no data.
  - Component: A plain Go type. Each distinct type is given a small integer id on first use.
  - Pool: Packed storage for one component type.
  - System: Holds a required Signature and the list of entities that currently match it.
  - Registry: Owns pools, signatures, systems, tags and groups.

Mutations that affect which entities a system sees are deferred. CreateEntity returns a usable
entity immediately, but systems only see it after the next call to Registry.Update. Kill works
the same way, so a system may kill entities while another system is iterating.

Basic Usage:

	registry := papercraft.Factory.NewRegistry()

	movement := NewMovementSystem() // embeds papercraft.BaseSystem
	registry.AddSystem(movement)

	tank := registry.CreateEntity()
	papercraft.AddComponent(tank, Transform{})
	papercraft.AddComponent(tank, RigidBody{Velocity: Vec2{X: 10}})

	for running {
		registry.Update()
		movement.Update(dt)
	}

Hot paths should resolve component ids once with FactoryNewComponent and use the returned
AccessibleComponent instead of the generic helper functions.
*/
package papercraft
