// Package game drives a papercraft registry on a terminal: it reads input, steps the
// registry and the gameplay systems at a fixed rate and draws with tcell.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/assets"
	"github.com/TheBitDrifter/papercraft/events"
	"github.com/TheBitDrifter/papercraft/level"
	"github.com/TheBitDrifter/papercraft/systems"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

type Options struct {
	Screen         tcell.Screen // nil opens the terminal
	Level          *level.Description
	FrameDuration  time.Duration
	MapWidth       int // used when the level has no map size
	MapHeight      int
	DebugColliders bool
	AssetCapacity  int
	Logger         *zap.Logger
}

type Game struct {
	screen   tcell.Screen
	registry papercraft.Registry
	runner   *systems.Runner
	bus      *events.Bus
	store    *assets.Store
	camera   *systems.Camera
	logger   *zap.Logger

	level     *level.Description
	fallback  level.Map // map size for levels that do not set one
	frameStep time.Duration
	now       time.Duration
	running   bool
	debug     bool
}

// New creates a game and loads opts.Level, or the built-in level when it is nil.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	lvl := opts.Level
	if lvl == nil {
		d, err := level.Default()
		if err != nil {
			screen.Fini()
			return nil, err
		}
		lvl = d
	}
	step := opts.FrameDuration
	if step <= 0 {
		step = time.Second / 60
	}

	w, h := screen.Size()
	g := &Game{
		screen:    screen,
		registry:  papercraft.Factory.NewRegistry(),
		runner:    systems.NewRunner(),
		bus:       events.NewBus(),
		store:     assets.NewStore(opts.AssetCapacity, logger.Named("assets")),
		camera:    systems.NewCamera(w, h, opts.MapWidth, opts.MapHeight),
		fallback:  level.Map{Width: opts.MapWidth, Height: opts.MapHeight},
		logger:    logger,
		level:     lvl,
		frameStep: step,
		debug:     opts.DebugColliders,
	}
	if err := systems.RegisterDefaults(g.registry, g.runner); err != nil {
		screen.Fini()
		return nil, err
	}
	if g.debug {
		papercraft.GetSystem[*systems.RenderColliderSystem](g.registry).Enabled = true
	}
	if err := g.Load(lvl); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// Load replaces the current level. Existing entities are killed, assets and event
// subscriptions are reset.
func (g *Game) Load(lvl *level.Description) error {
	for _, e := range g.registry.Entities() {
		e.Kill()
	}
	g.registry.Update()

	g.store.Clear()
	g.bus.Reset()
	g.runner.Subscribe(g.bus)
	events.Subscribe(g.bus, g.onKeyPressed)

	spawned, err := lvl.Spawn(g.registry, g.store, g.now)
	if err != nil {
		return fmt.Errorf("spawn level: %w", err)
	}
	if _, ok := g.store.Texture(systems.BulletAssetID); !ok {
		if err := g.store.AddTexture(systems.BulletAssetID, assets.NewTexture(".", tcell.StyleDefault)); err != nil {
			return err
		}
	}
	size := lvl.Map
	if size.Width == 0 || size.Height == 0 {
		size = g.fallback
	}
	g.level = lvl
	g.camera.MapWidth, g.camera.MapHeight = size.Width, size.Height
	g.registry.Update()

	g.logger.Info("level loaded",
		zap.Int("entities", len(spawned)),
		zap.Int("width", size.Width),
		zap.Int("height", size.Height),
	)
	return nil
}

func (g *Game) onKeyPressed(e *events.KeyPressedEvent) {
	if e.Key == events.KeyEscape {
		g.running = false
	}
}

// Run steps the game every frame until ctx is done or the player quits.
// The screen is finalized on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	input := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case input <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.frameStep)
	defer ticker.Stop()

	g.running = true
	last := time.Now()
	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
		drain:
			for {
				select {
				case ev := <-input:
					g.HandleEvent(ev)
				default:
					break drain
				}
			}
			g.Step(dt)
		}
	}
	g.logger.Info("game stopped", zap.Duration("played", g.now))
	return nil
}

// HandleEvent applies one terminal event.
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.camera.Width, g.camera.Height = g.screen.Size()
	case *tcell.EventKey:
		key := keyToEvent(ev)
		if key == events.KeyUnknown {
			return
		}
		events.Emit(g.bus, events.KeyPressedEvent{Key: key, At: g.now})
	}
}

// Step advances the game by dt: pending entity changes are flushed, then every system
// runs and the frame is shown.
func (g *Game) Step(dt time.Duration) {
	g.now += dt
	g.registry.Update()

	g.screen.Clear()
	g.runner.Tick(&systems.Frame{
		Delta:    dt.Seconds(),
		Now:      g.now,
		Registry: g.registry,
		Bus:      g.bus,
		Assets:   g.store,
		Camera:   g.camera,
		Screen:   g.screen,
		Logger:   g.logger,
	})
	g.screen.Show()
}

func (g *Game) Registry() papercraft.Registry { return g.registry }

func (g *Game) Camera() *systems.Camera { return g.camera }

// Running reports whether Run is still stepping frames.
func (g *Game) Running() bool { return g.running }

// Now is the game time advanced by Step.
func (g *Game) Now() time.Duration { return g.now }

// Level is the currently loaded level.
func (g *Game) Level() *level.Description { return g.level }
