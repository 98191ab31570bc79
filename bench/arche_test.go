package bench

import (
	"testing"

	"github.com/mlange-42/arche/ecs"
)

func BenchmarkIterArche(b *testing.B) {
	b.StopTimer()
	world := ecs.NewWorld(ecs.NewConfig().WithCapacityIncrement(1024))

	posID := ecs.ComponentID[Position](&world)
	velID := ecs.ComponentID[Velocity](&world)

	ecs.NewBuilder(&world, posID).NewBatch(nPos)
	ecs.NewBuilder(&world, posID, velID).NewBatch(nPosVel)

	var filter ecs.Filter = ecs.All(posID, velID)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		query := world.Query(filter)
		for query.Next() {
			pos := (*Position)(query.Get(posID))
			vel := (*Velocity)(query.Get(velID))
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkCreateKillArche(b *testing.B) {
	b.StopTimer()
	world := ecs.NewWorld(ecs.NewConfig().WithCapacityIncrement(1024))
	posID := ecs.ComponentID[Position](&world)
	velID := ecs.ComponentID[Velocity](&world)
	builder := ecs.NewBuilder(&world, posID, velID)
	entities := make([]ecs.Entity, 0, nPosVel)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < nPosVel; j++ {
			entities = append(entities, builder.New())
		}
		for _, e := range entities {
			world.RemoveEntity(e)
		}
		entities = entities[:0]
	}
}
