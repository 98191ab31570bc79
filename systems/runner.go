package systems

import (
	"sort"

	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/events"
)

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput      Phase = iota // react to input state
	PhaseUpdate                  // game logic
	PhasePostUpdate              // camera follows the result of the update
	PhaseRender                  // draw
)

// Updater is a registry system the Runner can drive.
type Updater interface {
	papercraft.System
	Phase() Phase
	Update(f *Frame)
}

// Subscriber is implemented by systems that react to bus events.
type Subscriber interface {
	SubscribeToEvents(bus *events.Bus)
}

// Runner executes systems in phase order each frame. Systems of the same phase run in
// registration order.
type Runner struct {
	systems []Updater
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]Updater, 0, 16),
	}
}

// Register adds s to reg and to the runner.
func (r *Runner) Register(reg papercraft.Registry, s Updater) error {
	if err := reg.AddSystem(s); err != nil {
		return err
	}
	r.systems = append(r.systems, s)
	r.sorted = false
	return nil
}

// Subscribe wires every Subscriber system to bus.
func (r *Runner) Subscribe(bus *events.Bus) {
	for _, s := range r.systems {
		if sub, ok := s.(Subscriber); ok {
			sub.SubscribeToEvents(bus)
		}
	}
}

func (r *Runner) Tick(f *Frame) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(f)
	}
}

// TickPhase runs only the systems of the given phase.
func (r *Runner) TickPhase(phase Phase, f *Frame) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(f)
		}
	}
}

func (r *Runner) Systems() []Updater {
	r.ensureSorted()
	return append([]Updater(nil), r.systems...)
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}

// RegisterDefaults registers every gameplay system on reg and r.
func RegisterDefaults(reg papercraft.Registry, r *Runner) error {
	for _, s := range []Updater{
		NewMovementSystem(),
		NewAnimationSystem(),
		NewCollisionSystem(),
		NewDamageSystem(),
		NewKeyboardControlSystem(),
		NewProjectileEmitSystem(),
		NewProjectileLifeCycleSystem(),
		NewCameraMovementSystem(),
		NewRenderSystem(),
		NewRenderColliderSystem(),
		NewRenderTextSystem(),
	} {
		if err := r.Register(reg, s); err != nil {
			return err
		}
	}
	return nil
}
