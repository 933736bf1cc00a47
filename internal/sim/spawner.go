package sim

import (
	"math/rand"

	"github.com/vovakirdan/river-rush/internal/config"
)

// CollectibleChoice is the outcome of a collectible roll.
type CollectibleChoice uint8

const (
	ChoiceCoin CollectibleChoice = iota
	ChoiceGem
	ChoicePowerUp
)

func (c CollectibleChoice) String() string {
	switch c {
	case ChoicePowerUp:
		return "powerUp"
	case ChoiceGem:
		return "gem"
	default:
		return "coin"
	}
}

// ChooseCollectible maps a uniform roll in [0,1) onto the bands.
// [0, PowerUp) is a power-up, [PowerUp, PowerUp+Gem) a gem, the rest coins.
func ChooseCollectible(roll float64, bands config.SpawnBands) CollectibleChoice {
	switch {
	case roll < bands.PowerUp:
		return ChoicePowerUp
	case roll < bands.PowerUp+bands.Gem:
		return ChoiceGem
	default:
		return ChoiceCoin
	}
}

// Spawned reports the entities created by one Spawner.Update call.
// Fields are ecs.NoEntity when nothing of that category spawned.
type Spawned struct {
	Obstacle    Entity
	Collectible Entity
	Decoration  Entity
}

// Spawner creates obstacles, collectibles and decorations on a
// distance-scaled cadence.
type Spawner struct {
	cfg        *config.RiverConfig
	difficulty *config.DifficultyManager
	factory    *Factory
	rng        *rand.Rand

	lastObstacle    int64
	lastCollectible int64
	lastDecoration  int64
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(cfg *config.RiverConfig, dm *config.DifficultyManager, f *Factory, seed int64) *Spawner {
	return &Spawner{
		cfg:        cfg,
		difficulty: dm,
		factory:    f,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the spawner and restarts every interval at now.
func (s *Spawner) Reset(seed, now int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastObstacle = now
	s.lastCollectible = now
	s.lastDecoration = now
}

// Last returns the last spawn timestamps for obstacles, collectibles
// and decorations.
func (s *Spawner) Last() (obstacle, collectible, decoration int64) {
	return s.lastObstacle, s.lastCollectible, s.lastDecoration
}

// Update spawns at most one entity per category. A category fires when
// its interval has elapsed since its last spawn; missed intervals are
// not caught up. now doubles as the run's elapsed time.
func (s *Spawner) Update(w *World, now int64, isPlaying bool, mode Mode, distance float64) Spawned {
	var out Spawned
	if !isPlaying {
		return out
	}

	biome := s.cfg.BiomeAt(distance)

	if mode.SpawnsObstacles() {
		interval := s.difficulty.IntervalMs(s.cfg.Spawn.Obstacle, distance, now)
		if now-s.lastObstacle >= interval {
			lane := s.randomLane()
			out.Obstacle = s.factory.Obstacle(w, lane, pick(s.rng, biome.Obstacles))
			s.lastObstacle = now
		}
	}

	interval := s.difficulty.IntervalMs(s.cfg.Spawn.Collectible, distance, now)
	if now-s.lastCollectible >= interval {
		out.Collectible = s.spawnCollectible(w)
		s.lastCollectible = now
	}

	decoInterval := int64(s.cfg.Spawn.DecorationInterval * 1000)
	if now-s.lastDecoration >= decoInterval {
		spread := s.cfg.World.DecorationSpread
		x := -spread + s.rng.Float64()*2*spread
		out.Decoration = s.factory.Decoration(w, x, pick(s.rng, biome.Decorations))
		s.lastDecoration = now
	}

	return out
}

func (s *Spawner) spawnCollectible(w *World) Entity {
	lane := s.randomLane()
	switch ChooseCollectible(s.rng.Float64(), s.cfg.Spawn.Bands) {
	case ChoicePowerUp:
		kind := AllPowerUps[s.rng.Intn(len(AllPowerUps))]
		return s.factory.PowerUpPickup(w, lane, kind)
	case ChoiceGem:
		return s.factory.Gem(w, lane, pick(s.rng, s.cfg.Collectibles.GemVariants))
	default:
		return s.factory.Coin(w, lane, pick(s.rng, s.cfg.Collectibles.CoinVariants))
	}
}

func (s *Spawner) randomLane() int {
	return s.rng.Intn(3) - 1
}

func pick(rng *rand.Rand, variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[rng.Intn(len(variants))]
}
