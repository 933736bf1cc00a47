package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/river-rush/internal/config"
)

// Factory builds entities from configuration.
type Factory struct {
	cfg *config.RiverConfig
	rng *rand.Rand // particle scatter only, kept apart from spawn randomness
}

// NewFactory creates a factory. seed drives particle scatter.
func NewFactory(cfg *config.RiverConfig, seed int64) *Factory {
	return &Factory{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Reseed resets the particle RNG.
func (f *Factory) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

func collider(s config.Size) *Collider {
	return &Collider{Width: s.Width, Height: s.Height, Depth: s.Depth}
}

func (f *Factory) scrollVelocity() *Velocity {
	return &Velocity{Y: -f.cfg.World.ScrollSpeed}
}

// DurationFor returns the configured duration of kind in milliseconds.
func DurationFor(d config.PowerUpDurations, kind PowerUpKind) int64 {
	switch kind {
	case PowerUpShield:
		return d.Shield
	case PowerUpMagnet:
		return d.Magnet
	case PowerUpGhost:
		return d.Ghost
	case PowerUpMultiplier:
		return d.Multiplier
	case PowerUpSlowMotion:
		return d.SlowMotion
	default:
		return 0
	}
}

// Player creates the player in the center lane.
func (f *Factory) Player(w *World, now int64) Entity {
	lives := f.cfg.Player.Lives
	return w.Add(Components{
		Position:  &Position{X: f.cfg.World.LaneX(0), Y: f.cfg.World.PlayerY},
		Velocity:  &Velocity{},
		Collider:  collider(f.cfg.Colliders.Player),
		Lane:      &Lane{},
		Health:    &Health{Current: lives, Max: lives},
		Animation: &Animation{Current: AnimSwim, StartedAt: now},
		Jump:      &Jump{LastJumpAt: now - f.cfg.Player.JumpCooldownMs},
		Tags:      TagPlayer,
	})
}

// Obstacle creates an obstacle at the top of the river in lane.
func (f *Factory) Obstacle(w *World, lane int, variant string) Entity {
	return w.Add(Components{
		Position: &Position{X: f.cfg.World.LaneX(lane), Y: f.cfg.World.SpawnY},
		Velocity: f.scrollVelocity(),
		Collider: collider(f.cfg.Colliders.Obstacle),
		Lane:     &Lane{Index: lane, Previous: lane},
		Tags:     TagObstacle,
		Variant:  variant,
	})
}

// Coin creates a coin pickup in lane.
func (f *Factory) Coin(w *World, lane int, variant string) Entity {
	return w.Add(Components{
		Position:    &Position{X: f.cfg.World.LaneX(lane), Y: f.cfg.World.SpawnY},
		Velocity:    f.scrollVelocity(),
		Collider:    collider(f.cfg.Colliders.Coin),
		Lane:        &Lane{Index: lane, Previous: lane},
		Collectible: &Collectible{Kind: CollectibleCoin, Value: f.cfg.Collectibles.CoinValue},
		Tags:        TagCollectible,
		Variant:     variant,
	})
}

// Gem creates a gem pickup in lane.
func (f *Factory) Gem(w *World, lane int, variant string) Entity {
	return w.Add(Components{
		Position:    &Position{X: f.cfg.World.LaneX(lane), Y: f.cfg.World.SpawnY},
		Velocity:    f.scrollVelocity(),
		Collider:    collider(f.cfg.Colliders.Gem),
		Lane:        &Lane{Index: lane, Previous: lane},
		Collectible: &Collectible{Kind: CollectibleGem, Value: f.cfg.Collectibles.GemValue},
		Tags:        TagCollectible,
		Variant:     variant,
	})
}

// PowerUpPickup creates a collectible that grants kind.
func (f *Factory) PowerUpPickup(w *World, lane int, kind PowerUpKind) Entity {
	return w.Add(Components{
		Position:    &Position{X: f.cfg.World.LaneX(lane), Y: f.cfg.World.SpawnY},
		Velocity:    f.scrollVelocity(),
		Collider:    collider(f.cfg.Colliders.PowerUp),
		Lane:        &Lane{Index: lane, Previous: lane},
		Collectible: &Collectible{Kind: CollectibleSpecial},
		PowerUp:     &PowerUp{Kind: kind, DurationMs: DurationFor(f.cfg.PowerUps.Durations, kind)},
		Tags:        TagCollectible,
		Variant:     kind.String(),
	})
}

// Decoration creates a bank decoration at x.
func (f *Factory) Decoration(w *World, x float64, variant string) Entity {
	return w.Add(Components{
		Position: &Position{X: x, Y: f.cfg.World.SpawnY},
		Velocity: f.scrollVelocity(),
		Collider: collider(f.cfg.Colliders.Decoration),
		Tags:     TagDecoration,
		Variant:  variant,
	})
}

// Burst scatters count particles of kind around (x, y).
func (f *Factory) Burst(w *World, x, y float64, kind ParticleKind, count int, now int64) {
	pc := f.cfg.Particles
	for i := 0; i < count; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := pc.Speed * (0.5 + f.rng.Float64()*0.5)
		w.Add(Components{
			Position: &Position{X: x, Y: y},
			Velocity: &Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Particle: &Particle{Kind: kind, ExpiresAt: now + pc.LifetimeMs},
			Tags:     TagParticle,
		})
	}
}
