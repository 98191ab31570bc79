package papercraft

import (
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type movementSystem struct {
	BaseSystem
	added, removed []int
}

func newMovementSystem() *movementSystem {
	s := &movementSystem{}
	RequireComponent[Transform](&s.BaseSystem)
	RequireComponent[RigidBody](&s.BaseSystem)
	return s
}

func (s *movementSystem) OnEntityAdded(e Entity)   { s.added = append(s.added, e.ID()) }
func (s *movementSystem) OnEntityRemoved(e Entity) { s.removed = append(s.removed, e.ID()) }

func (s *movementSystem) Update(deltaTime float64) {
	for _, entity := range s.SystemEntities() {
		transform := GetComponent[Transform](entity)
		rigidBody := GetComponent[RigidBody](entity)
		transform.X += rigidBody.VX * deltaTime
		transform.Y += rigidBody.VY * deltaTime
	}
}

type renderSystem struct {
	BaseSystem
}

func newRenderSystem() *renderSystem {
	s := &renderSystem{}
	s.Require(ComponentOf[Transform](), ComponentOf[Sprite]())
	return s
}

func ids(entities []Entity) []int {
	out := make([]int, len(entities))
	for i, e := range entities {
		out[i] = e.ID()
	}
	return out
}

// TestSystemMembership tests signature superset matching at flush time
func TestSystemMembership(t *testing.T) {
	tests := []struct {
		name       string
		components func(Entity)
		want       bool
	}{
		{
			name: "Exact match",
			components: func(e Entity) {
				AddComponent(e, Transform{})
				AddComponent(e, RigidBody{})
			},
			want: true,
		},
		{
			name: "Superset",
			components: func(e Entity) {
				AddComponent(e, Transform{})
				AddComponent(e, RigidBody{})
				AddComponent(e, Sprite{})
			},
			want: true,
		},
		{
			name: "Subset",
			components: func(e Entity) {
				AddComponent(e, Transform{})
			},
			want: false,
		},
		{
			name:       "Empty",
			components: func(e Entity) {},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := Factory.NewRegistry()
			movement := newMovementSystem()
			if err := registry.AddSystem(movement); err != nil {
				t.Fatalf("AddSystem: %v", err)
			}
			entity := registry.CreateEntity()
			tt.components(entity)
			registry.Update()

			if got := movement.HasEntity(entity); got != tt.want {
				t.Errorf("system has entity = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDeferredVisibility tests that creations and kills only reach systems at Update
func TestDeferredVisibility(t *testing.T) {
	registry := Factory.NewRegistry()
	movement := newMovementSystem()
	registry.AddSystem(movement)

	entity := registry.CreateEntity()
	AddComponent(entity, Transform{})
	AddComponent(entity, RigidBody{})

	if movement.NumEntities() != 0 {
		t.Fatalf("entity visible before Update")
	}
	if toAdd, _ := registry.Pending(); toAdd != 1 {
		t.Errorf("Pending adds = %d, want 1", toAdd)
	}

	registry.Update()
	if !movement.HasEntity(entity) {
		t.Fatalf("entity not visible after Update")
	}

	entity.Kill()
	if !movement.HasEntity(entity) {
		t.Errorf("killed entity left the system before Update")
	}
	if !HasComponent[Transform](entity) {
		t.Errorf("killed entity lost components before Update")
	}

	registry.Update()
	if movement.HasEntity(entity) {
		t.Errorf("killed entity still in system after Update")
	}
	if !slices.Equal(movement.added, []int{entity.ID()}) || !slices.Equal(movement.removed, []int{entity.ID()}) {
		t.Errorf("hooks: added %v removed %v", movement.added, movement.removed)
	}
}

// TestKillDuringIteration tests that a system may kill entities it is iterating
func TestKillDuringIteration(t *testing.T) {
	registry := Factory.NewRegistry()
	movement := newMovementSystem()
	registry.AddSystem(movement)
	for i := 0; i < 5; i++ {
		e := registry.CreateEntity()
		AddComponent(e, Transform{})
		AddComponent(e, RigidBody{VX: 1})
	}
	registry.Update()

	visited := 0
	for _, e := range movement.SystemEntities() {
		visited++
		e.Kill()
		spawned := registry.CreateEntity()
		AddComponent(spawned, Transform{})
		AddComponent(spawned, RigidBody{})
	}
	if visited != 5 || movement.NumEntities() != 5 {
		t.Fatalf("visited %d, interest list %d during frame, want 5 and 5", visited, movement.NumEntities())
	}

	registry.Update()
	if movement.NumEntities() != 5 {
		t.Errorf("interest list = %d after flush, want 5 spawned entities", movement.NumEntities())
	}
}

// TestEntityIDRecycling tests id reuse after kill and flush
func TestEntityIDRecycling(t *testing.T) {
	registry := Factory.NewRegistry()
	first := registry.CreateEntity()
	AddComponent(first, Position{X: 1})
	AddComponent(first, Health{Current: 10})
	first.Tag("player")
	first.Group("heroes")
	registry.Update()

	first.Kill()
	registry.Update()

	second := registry.CreateEntity()
	if second.ID() != first.ID() {
		t.Fatalf("second id = %d, want recycled %d", second.ID(), first.ID())
	}
	if !second.Signature().IsEmpty() {
		t.Errorf("recycled entity has signature %v, want empty", second.Signature())
	}
	if HasComponent[Position](second) || HasComponent[Health](second) {
		t.Errorf("recycled entity inherited components")
	}
	if FactoryNewComponent[Position]().Pool(registry).Has(second.ID()) {
		t.Errorf("pool still holds data for the recycled id")
	}
	if second.HasTag("player") || second.BelongsToGroup("heroes") {
		t.Errorf("recycled entity inherited labels")
	}
	if _, ok := registry.EntityByTag("player"); ok {
		t.Errorf("tag survived kill")
	}

	third := registry.CreateEntity()
	if third.ID() == second.ID() {
		t.Errorf("live id handed out twice")
	}
	if registry.NumEntities() != 2 || registry.LiveEntities() != 2 {
		t.Errorf("NumEntities = %d, LiveEntities = %d, want 2 and 2", registry.NumEntities(), registry.LiveEntities())
	}

	third.Kill()
	if got := registry.Entities(); len(got) != 2 {
		t.Errorf("Entities before flush = %v, want both", got)
	}
	registry.Update()
	if got := registry.Entities(); len(got) != 1 || !got[0].Equals(second) {
		t.Errorf("Entities after flush = %v, want [%v]", got, second)
	}
}

// TestKilledHandleWrites tests that a stale handle cannot leave data behind for the next
// owner of its id
func TestKilledHandleWrites(t *testing.T) {
	registry := Factory.NewRegistry()
	first := registry.CreateEntity()
	registry.Update()
	first.Kill()
	registry.Update()

	writes := map[string]func(){
		"AddComponent": func() { AddComponent(first, Position{X: 7}) },
		"Tag":          func() { first.Tag("ghost") },
		"Group":        func() { first.Group("ghosts") },
	}
	for name, write := range writes {
		func() {
			defer func() {
				if _, ok := recover().(DeadEntityError); !ok {
					t.Errorf("%s on a killed handle did not panic with DeadEntityError", name)
				}
			}()
			write()
		}()
	}

	second := registry.CreateEntity()
	if second.ID() != first.ID() {
		t.Fatalf("second id = %d, want recycled %d", second.ID(), first.ID())
	}
	if !second.Signature().IsEmpty() || HasComponent[Position](second) {
		t.Errorf("recycled entity has signature %v, want empty", second.Signature())
	}
	if second.HasTag("ghost") || second.BelongsToGroup("ghosts") {
		t.Errorf("recycled entity inherited labels from the killed handle")
	}
	if toAdd, _ := registry.Pending(); toAdd != 1 {
		t.Errorf("pending adds = %d, want 1", toAdd)
	}
}

func TestFlushLogsRefreshOnly(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Config.SetLogger(zap.New(core))
	defer Config.SetLogger(nil)

	registry := Factory.NewRegistry()
	e := registry.CreateEntity()
	registry.Update()
	AddComponent(e, Health{Current: 3})
	registry.Update()

	flushes := logs.FilterMessage("registry flushed").All()
	if len(flushes) != 2 {
		t.Fatalf("flush entries = %d, want 2", len(flushes))
	}
	fields := flushes[1].ContextMap()
	if fields["added"] != int64(0) || fields["refreshed"] != int64(1) || fields["killed"] != int64(0) {
		t.Errorf("refresh-only flush logged %v", fields)
	}
}

// TestComponentChangeRefresh tests membership changes of an already flushed entity
func TestComponentChangeRefresh(t *testing.T) {
	registry := Factory.NewRegistry()
	movement := newMovementSystem()
	render := newRenderSystem()
	registry.AddSystem(movement)
	registry.AddSystem(render)

	entity := registry.CreateEntity()
	AddComponent(entity, Transform{})
	registry.Update()

	if movement.HasEntity(entity) || render.HasEntity(entity) {
		t.Fatalf("entity joined systems it does not match")
	}

	AddComponent(entity, RigidBody{})
	AddComponent(entity, Sprite{})
	if movement.HasEntity(entity) {
		t.Errorf("membership changed before Update")
	}
	registry.Update()
	if !movement.HasEntity(entity) || !render.HasEntity(entity) {
		t.Fatalf("entity missing from matching systems after Update")
	}

	RemoveComponent[RigidBody](entity)
	registry.Update()
	if movement.HasEntity(entity) {
		t.Errorf("entity still in movement after losing RigidBody")
	}
	if !render.HasEntity(entity) {
		t.Errorf("entity dropped from render")
	}
	if len(movement.added) != 1 || len(movement.removed) != 1 {
		t.Errorf("hooks: added %v removed %v, want one each", movement.added, movement.removed)
	}
}

// TestCreateAndKillSameFrame tests that add processing precedes kill processing
func TestCreateAndKillSameFrame(t *testing.T) {
	registry := Factory.NewRegistry()
	movement := newMovementSystem()
	registry.AddSystem(movement)

	entity := registry.CreateEntity()
	AddComponent(entity, Transform{})
	AddComponent(entity, RigidBody{})
	entity.Kill()
	entity.Kill()

	if _, toKill := registry.Pending(); toKill != 1 {
		t.Errorf("Pending kills = %d, want 1", toKill)
	}
	registry.Update()

	if movement.HasEntity(entity) {
		t.Errorf("entity survived")
	}
	if !slices.Equal(movement.added, []int{entity.ID()}) || !slices.Equal(movement.removed, []int{entity.ID()}) {
		t.Errorf("hooks: added %v removed %v", movement.added, movement.removed)
	}
	if registry.Alive(entity) {
		t.Errorf("Alive() = true after kill flush")
	}

	// Killing a dead handle is ignored.
	entity.Kill()
	if _, toKill := registry.Pending(); toKill != 0 {
		t.Errorf("dead entity staged for kill")
	}
}

func TestSystemRegistration(t *testing.T) {
	registry := Factory.NewRegistry()
	movement := newMovementSystem()

	if HasSystem[*movementSystem](registry) {
		t.Fatalf("HasSystem before AddSystem")
	}
	if err := registry.AddSystem(movement); err != nil {
		t.Fatalf("AddSystem: %v", err)
	}
	if err := registry.AddSystem(newMovementSystem()); err == nil {
		t.Errorf("second AddSystem of the same type succeeded")
	}
	registry.AddSystem(newRenderSystem())

	if GetSystem[*movementSystem](registry) != movement {
		t.Errorf("GetSystem returned a different instance")
	}
	if got := len(registry.Systems()); got != 2 {
		t.Errorf("Systems() = %d, want 2", got)
	}

	if !RemoveSystem[*movementSystem](registry) {
		t.Fatalf("RemoveSystem reported missing system")
	}
	if HasSystem[*movementSystem](registry) {
		t.Errorf("HasSystem after RemoveSystem")
	}
	if !HasSystem[*renderSystem](registry) {
		t.Errorf("removing one system dropped another")
	}
	if RemoveSystem[*movementSystem](registry) {
		t.Errorf("RemoveSystem of a missing system reported success")
	}
}

// TestTagUniqueness tests that a tag has a single owner
func TestTagUniqueness(t *testing.T) {
	registry := Factory.NewRegistry()
	a := registry.CreateEntity()
	b := registry.CreateEntity()

	a.Tag("player")
	b.Tag("player")

	if a.HasTag("player") {
		t.Errorf("A kept tag after B took it")
	}
	if !b.HasTag("player") {
		t.Errorf("B does not hold the tag")
	}
	if owner, _ := registry.EntityByTag("player"); owner.ID() != b.ID() {
		t.Errorf("EntityByTag = %v, want %v", owner, b)
	}

	b.Tag("boss")
	if b.HasTag("player") {
		t.Errorf("retagging kept the old tag")
	}
	if _, ok := registry.EntityByTag("player"); ok {
		t.Errorf("old tag still bound after retagging")
	}

	registry.RemoveEntityTag(b)
	if b.HasTag("boss") {
		t.Errorf("tag kept after RemoveEntityTag")
	}
}

// TestGroups tests group membership with one group per entity
func TestGroups(t *testing.T) {
	registry := Factory.NewRegistry()
	var enemies []Entity
	for i := 0; i < 3; i++ {
		e := registry.CreateEntity()
		e.Group("enemies")
		enemies = append(enemies, e)
	}
	projectile := registry.CreateEntity()
	projectile.Group("projectiles")

	if got := ids(registry.EntitiesByGroup("enemies")); !slices.Equal(got, ids(enemies)) {
		t.Errorf("EntitiesByGroup(enemies) = %v, want %v", got, ids(enemies))
	}
	if !projectile.BelongsToGroup("projectiles") || projectile.BelongsToGroup("enemies") {
		t.Errorf("projectile group membership wrong")
	}

	enemies[1].Group("projectiles")
	if enemies[1].BelongsToGroup("enemies") {
		t.Errorf("entity belongs to two groups")
	}
	if !enemies[1].BelongsToGroup("projectiles") {
		t.Errorf("entity not moved into new group")
	}
	if got := len(registry.EntitiesByGroup("enemies")); got != 2 {
		t.Errorf("enemies = %d, want 2", got)
	}

	registry.RemoveEntityGroup(projectile)
	registry.RemoveEntityGroup(enemies[1])
	if registry.EntitiesByGroup("projectiles") != nil {
		t.Errorf("empty group still listed")
	}
}

// TestMovementEndToEnd tests one frame of a movement system
func TestMovementEndToEnd(t *testing.T) {
	registry := Factory.NewRegistry()
	registry.AddSystem(newMovementSystem())

	tank := registry.CreateEntity()
	AddComponent(tank, Transform{X: 0, Y: 0})
	AddComponent(tank, RigidBody{VX: 10, VY: 0})

	registry.Update()
	GetSystem[*movementSystem](registry).Update(1.0)

	if got := *GetComponent[Transform](tank); got != (Transform{X: 10, Y: 0}) {
		t.Errorf("Transform = %v, want {10 0}", got)
	}
}
