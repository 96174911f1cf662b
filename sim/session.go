package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
	"github.com/milk9111/koopa/ecs/entity"
	"github.com/milk9111/koopa/ecs/system"
	"github.com/milk9111/koopa/levels"
	"github.com/milk9111/koopa/prefabs"
)

// Options configures a session. Level is required; WorldFile defaults to
// world.yaml and Variant to the world's own variant.
type Options struct {
	WorldFile string
	Variant   string
	Logger    *log.Logger
	Level     *levels.Level
	// Carry seeds score, coins and lives from a previous session.
	Carry *component.HUD
	// Input, when set, runs first every frame and feeds the player from the
	// host's devices. Without it the player is driven through SetInput.
	Input *system.InputSystem
}

// Session owns one loaded level: the world, the shared simulation context
// and the fixed system order.
type Session struct {
	opts      Options
	spec      prefabs.WorldSpec
	world     *ecs.World
	ctx       *system.Context
	scheduler *ecs.Scheduler
	hud       ecs.Entity
	player    ecs.Entity
	variant   string
	frame     int
}

func NewSession(opts Options) (*Session, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("session: no level")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	spec, err := prefabs.LoadWorldSpec(opts.WorldFile)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	variant := spec.Variant
	if opts.Variant != "" {
		variant = opts.Variant
	}
	if opts.Level.World != "" {
		spec.HUD.World = opts.Level.World
	}

	w := ecs.NewWorld()
	hud, err := entity.NewHUD(w, spec.HUD, opts.Carry)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if _, err := entity.NewCamera(w, spec); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	ctx := system.NewContext(w, system.NewHUDSink(w), logger)
	ctx.Gravity = spec.Gravity
	ctx.Width = spec.Width
	ctx.Height = spec.Height

	s := &Session{
		opts:    opts,
		spec:    spec,
		world:   w,
		ctx:     ctx,
		hud:     hud,
		variant: variant,
	}
	ctx.Spawn = s.build

	if err := s.load(opts.Level); err != nil {
		ctx.Close()
		return nil, err
	}

	s.scheduler = ecs.NewScheduler()
	if opts.Input != nil {
		s.scheduler.Add(opts.Input)
	}
	for _, sys := range []ecs.System{
		system.NewCameraSystem(ctx),
		system.NewActorSystem(ctx),
		system.NewInvulnerabilitySystem(),
		system.NewScoreSystem(ctx),
		system.NewPopupSystem(),
		system.NewTTLSystem(ctx),
		system.NewHUDSystem(),
		system.NewRespawnSystem(),
	} {
		s.scheduler.Add(sys)
	}

	logger.Info("level loaded", "world", spec.HUD.World, "entities", len(ecs.Entities(w)), "variant", variant)
	return s, nil
}

func (s *Session) load(lvl *levels.Level) error {
	tile := lvl.TileSize
	if tile <= 0 {
		tile = 48
	}
	placements, width, height, err := entity.ParseLayout(lvl.Rows, tile)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	for _, p := range placements {
		e, err := s.place(p)
		if err != nil {
			return fmt.Errorf("session: place %s at %v,%v: %w", p.Prefab, p.X, p.Y, err)
		}
		// Grid cells stand actors on the cell floor.
		if body, ok := ecs.Get(s.world, e, component.BodyComponent.Kind()); ok && body.Rect.Height != tile {
			s.reindex(e, func() { body.Rect.SetBottom(p.Y + tile) })
		}
		system.OnSpawn(s.ctx, e)
	}
	for _, ent := range lvl.Entities {
		p := entity.Placement{
			Prefab:    ent.Type,
			X:         ent.X,
			Y:         ent.Y,
			Contents:  ent.Contents(),
			Remaining: ent.Remaining(),
		}
		e, err := s.place(p)
		if err != nil {
			return fmt.Errorf("session: place %s at %v,%v: %w", p.Prefab, p.X, p.Y, err)
		}
		system.OnSpawn(s.ctx, e)
	}

	if _, err := entity.NewLevelBounds(s.world, width, height); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

func (s *Session) place(p entity.Placement) (ecs.Entity, error) {
	e, err := s.build(p.Prefab, p.X, p.Y)
	if err != nil {
		return 0, err
	}
	if block, ok := ecs.Get(s.world, e, component.BlockComponent.Kind()); ok {
		if p.Contents != "" {
			block.Contents = p.Contents
		}
		if p.Remaining > 0 {
			block.Remaining = p.Remaining
		}
	}
	if ecs.Has(s.world, e, component.PlayerTagComponent.Kind()) {
		s.player = e
	}
	return e, nil
}

// build is the context's spawn function: it builds and places the prefab,
// applies the session's sprite variant and indexes the entity into the
// groups its prefab names.
func (s *Session) build(name string, x, y float64) (ecs.Entity, error) {
	e, err := entity.BuildAt(s.world, name, x, y)
	if err != nil {
		return 0, err
	}
	if sprite, ok := ecs.Get(s.world, e, component.SpriteComponent.Kind()); ok {
		sprite.Variant = s.variant
	}
	s.ctx.Index(e)
	return e, nil
}

// reindex applies move to e and refreshes its tile index entry.
func (s *Session) reindex(e ecs.Entity, move func()) {
	move()
	if s.ctx.Tiles.Contains(e) {
		s.ctx.Tiles.Add(e)
	}
}

// Update advances the simulation by one frame.
func (s *Session) Update() {
	s.frame++
	s.scheduler.Update(s.world)
}

// SetInput feeds the player's controls for the next frame.
func (s *Session) SetInput(moveX float64, jump bool) {
	if in, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		in.MoveX = moveX
		in.Jump = jump
	}
}

// Spawn builds a prefab at (x, y) and runs its spawn behaviour.
func (s *Session) Spawn(name string, x, y float64) (ecs.Entity, error) {
	return system.Spawn(s.ctx, name, x, y)
}

func (s *Session) Kill(e ecs.Entity) {
	s.ctx.Kill(e)
}

// TakeReload reports and clears a pending level reload request.
func (s *Session) TakeReload() bool {
	e, ok := ecs.First(s.world, component.ReloadRequestComponent.Kind())
	if !ok {
		return false
	}
	ecs.DestroyEntity(s.world, e)
	return true
}

// Reload builds a fresh session for the same level. Score, coins and lives
// carry over; a reload at the end of a game over starts them from scratch.
func (s *Session) Reload() (*Session, error) {
	opts := s.opts
	if h := s.HUD(); h != nil {
		carry := *h
		if carry.LoadLevel {
			system.ResetHUD(&carry, true)
		}
		opts.Carry = &carry
	}
	next, err := NewSession(opts)
	if err != nil {
		return nil, err
	}
	s.Close()
	return next, nil
}

func (s *Session) HUD() *component.HUD {
	h, _ := ecs.Get(s.world, s.hud, component.HUDComponent.Kind())
	return h
}

func (s *Session) Player() ecs.Entity       { return s.player }
func (s *Session) World() *ecs.World        { return s.world }
func (s *Session) Context() *system.Context { return s.ctx }
func (s *Session) Spec() prefabs.WorldSpec  { return s.spec }
func (s *Session) Frame() int               { return s.frame }
func (s *Session) Options() Options         { return s.opts }
func (s *Session) Systems() []ecs.System    { return s.scheduler.Systems() }

// Close releases the session's collision index.
func (s *Session) Close() {
	s.ctx.Close()
}
