// Package river implements River Rush: an otter rides a three-lane river,
// dodging obstacles and collecting coins, gems and power-ups while the
// current speeds up with distance.
package river

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/river-rush/internal/config"
	"github.com/vovakirdan/river-rush/internal/core"
	"github.com/vovakirdan/river-rush/internal/registry"
	"github.com/vovakirdan/river-rush/internal/sim"
)

// Game ids, one per mode.
const (
	IDClassic   = "river"
	IDZen       = "river_zen"
	IDTimeTrial = "river_time_trial"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	tutorial         bool
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// loaded config.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetTutorial enables the extended no-damage window at the start of runs.
func SetTutorial(on bool) {
	tutorial = on
}

// SetLogger sets the logger used by new runs. nil silences logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game coordinates one River Rush run: it owns the world and the
// systems, runs them in tick order and folds their events into the
// GameState.
type Game struct {
	id    string
	title string
	mode  sim.Mode

	override *config.RiverConfig
	cfg      config.RiverConfig
	runtime  core.RuntimeConfig
	log      *log.Logger

	difficulty *config.DifficultyManager
	world      *sim.World
	factory    *sim.Factory
	spawner    *sim.Spawner
	collision  *sim.CollisionSystem
	animator   sim.Animator
	powerUps   *sim.PowerUpState
	state      *GameState

	now        int64 // ms since run start
	lane       int   // desired lane
	worldScale float64
	events     []sim.Event // applied during the last tick
}

// New creates a game in the given mode.
func New(mode sim.Mode) *Game {
	g := &Game{mode: mode}
	switch mode {
	case sim.ModeZen:
		g.id, g.title = IDZen, "River Rush: Zen"
	case sim.ModeTimeTrial:
		g.id, g.title = IDTimeTrial, "River Rush: Time Trial"
	default:
		g.mode = sim.ModeClassic
		g.id, g.title = IDClassic, "River Rush"
	}
	return g
}

// UseConfig pins the gameplay config used by every Reset instead of
// loading it from disk. Presets still apply on top.
func (g *Game) UseConfig(cfg config.RiverConfig) {
	g.override = &cfg
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Mode returns the game mode.
func (g *Game) Mode() sim.Mode {
	return g.mode
}

func (g *Game) loadConfig() config.RiverConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		g.log.Warn("falling back to default config", "err", err)
		return config.DefaultRiverConfig()
	}
	return cfg
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.id)

	g.cfg = g.loadConfig()
	config.ApplyPreset(&g.cfg, difficultyPreset)
	if !tutorial {
		g.cfg.Player.TutorialMs = 0
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.world == nil {
		g.world = sim.NewWorld()
	} else {
		g.world.Reset()
	}

	seed := runtime.Seed
	g.factory = sim.NewFactory(&g.cfg, seed^0x5eed)
	g.spawner = sim.NewSpawner(&g.cfg, g.difficulty, g.factory, seed)
	g.spawner.Reset(seed, 0)
	g.collision = sim.NewCollisionSystem(&g.cfg, g.factory)
	g.animator = sim.NewAnimator(g.cfg.Animation)
	g.powerUps = sim.NewPowerUpState(g.cfg.PowerUps)
	g.state = NewGameState(g.mode, g.cfg.Player.Lives, g.cfg.Scoring, g.cfg.Modes.TimeTrialMs)

	g.now = 0
	g.lane = 0
	g.worldScale = 1
	g.events = g.events[:0]
	g.factory.Player(g.world, 0)

	g.log.Debug("run started", "mode", g.mode, "seed", seed, "lives", g.cfg.Player.Lives)
}

// Step advances the run by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.state.Over() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.state.TogglePause()
	}
	if !g.state.Playing() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLaneLeft) {
		g.lane = max(g.lane-1, -1)
	}
	if in.Has(core.ActionLaneRight) {
		g.lane = min(g.lane+1, 1)
	}

	tickMs := g.runtime.TickMs()
	dt := float64(tickMs) / 1000
	g.now += tickMs
	now := g.now

	g.spawner.Update(g.world, now, true, g.mode, g.state.Distance)

	g.worldScale = g.difficulty.SpeedMultiplier(g.state.Distance) * g.powerUps.WorldScale(now)
	sim.Steer(g.world, g.cfg.Player, g.cfg.World, sim.Intent{Lane: g.lane, Jump: in.Has(core.ActionJump)}, now, dt)
	sim.IntegrateScaled(g.world, dt, g.worldScale)

	ctx := &sim.TickContext{
		Now:      now,
		Damage:   g.mode.DamageEnabled(),
		Grace:    g.inGrace(now),
		PowerUps: g.powerUps,
	}
	events := g.collision.Update(g.world, ctx)

	g.animator.Update(g.world, now, true)
	sim.Cleanup(g.world, g.cfg.World.DespawnY, now)

	events = append(events, g.state.Tick(now, g.cfg.World.ScrollSpeed*g.worldScale*dt)...)
	for _, ev := range events {
		g.apply(ev)
	}
	return core.StepResult{State: g.State(), Events: len(g.events)}
}

func (g *Game) inGrace(now int64) bool {
	return now < g.cfg.Player.SpawnGraceMs || now < g.cfg.Player.TutorialMs
}

func (g *Game) apply(ev sim.Event) {
	wasOver := g.state.Over()
	g.state.Apply(ev)
	g.events = append(g.events, ev)

	switch ev.Kind {
	case sim.EventPowerUpActivated, sim.EventPowerUpExpired:
		g.log.Debug(ev.Kind.String(), "kind", ev.PowerUp, "at", g.now)
	case sim.EventHealthLost:
		g.log.Debug("hit", "lives", g.state.Lives, "at", g.now)
	case sim.EventGameOver:
		if !wasOver {
			g.log.Info("game over",
				"score", g.state.Score,
				"distance", int(g.state.Distance),
				"coins", g.state.Coins,
				"gems", g.state.Gems,
				"elapsed_ms", g.now)
		}
	}
}

// State returns the platform-facing summary of the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Distance: g.state.Distance,
		Lives:    g.state.Lives,
		GameOver: g.state.Over(),
		Paused:   g.state.Status == StatusPaused,
	}
}

// Stats returns a copy of the full run state.
func (g *Game) Stats() GameState {
	return *g.state
}

// Summary reports the run for persistence.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		GameID:     g.id,
		Seed:       g.runtime.Seed,
		Score:      g.state.Score,
		Distance:   g.state.Distance,
		Coins:      g.state.Coins,
		Gems:       g.state.Gems,
		NearMisses: g.state.NearMisses,
		MaxCombo:   g.state.MaxCombo,
		DurationMs: g.now,
	}
}

// Events returns the events applied during the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Now returns the run clock in milliseconds.
func (g *Game) Now() int64 {
	return g.now
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Digest fingerprints the world for determinism checks.
func (g *Game) Digest() uint64 {
	return sim.Digest(g.world)
}

// World exposes the simulation world.
func (g *Game) World() *sim.World {
	return g.world
}

func init() {
	for _, mode := range []sim.Mode{sim.ModeClassic, sim.ModeZen, sim.ModeTimeTrial} {
		registry.Register(New(mode).ID(), func() registry.Game {
			return New(mode)
		})
	}
}
