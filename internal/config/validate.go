package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the config once at load time. All problems are
// reported together.
func (c RiverConfig) Validate() error {
	var errs []error

	errs = append(errs, validateCurve("spawn.obstacle", c.Spawn.Obstacle)...)
	errs = append(errs, validateCurve("spawn.collectible", c.Spawn.Collectible)...)
	if c.Spawn.DecorationInterval <= 0 {
		errs = append(errs, invalid("spawn.decoration_interval must be positive, got %v", c.Spawn.DecorationInterval))
	}

	b := c.Spawn.Bands
	if b.PowerUp < 0 || b.Gem < 0 {
		errs = append(errs, invalid("spawn.bands must be non-negative, got power_up=%v gem=%v", b.PowerUp, b.Gem))
	}
	if b.PowerUp+b.Gem > 1 {
		errs = append(errs, invalid("spawn.bands power_up+gem must not exceed 1, got %v", b.PowerUp+b.Gem))
	}

	if len(c.World.Lanes) != 3 {
		errs = append(errs, invalid("world.lanes must list 3 lanes, got %d", len(c.World.Lanes)))
	}
	if c.World.DespawnY >= c.World.SpawnY {
		errs = append(errs, invalid("world.despawn_y (%v) must be below spawn_y (%v)", c.World.DespawnY, c.World.SpawnY))
	}
	if c.World.ScrollSpeed <= 0 {
		errs = append(errs, invalid("world.scroll_speed must be positive, got %v", c.World.ScrollSpeed))
	}

	if c.Player.Lives <= 0 {
		errs = append(errs, invalid("player.lives must be positive, got %d", c.Player.Lives))
	}

	colliders := []struct {
		name string
		size Size
	}{
		{"player", c.Colliders.Player},
		{"obstacle", c.Colliders.Obstacle},
		{"coin", c.Colliders.Coin},
		{"gem", c.Colliders.Gem},
		{"power_up", c.Colliders.PowerUp},
		{"decoration", c.Colliders.Decoration},
	}
	for _, col := range colliders {
		if col.size.Width <= 0 || col.size.Height <= 0 || col.size.Depth <= 0 {
			errs = append(errs, invalid("colliders.%s must have positive extents", col.name))
		}
	}

	d := c.PowerUps.Durations
	if d.Shield < 0 || d.Magnet <= 0 || d.Ghost <= 0 || d.Multiplier <= 0 || d.SlowMotion <= 0 {
		errs = append(errs, invalid("power_ups.durations must be positive (shield may be 0)"))
	}
	if c.PowerUps.MultiplierValue < 1 {
		errs = append(errs, invalid("power_ups.multiplier_value must be at least 1"))
	}
	if c.PowerUps.SlowMotionFactor <= 0 || c.PowerUps.SlowMotionFactor > 1 {
		errs = append(errs, invalid("power_ups.slow_motion_factor must be in (0,1], got %v", c.PowerUps.SlowMotionFactor))
	}
	if c.PowerUps.MagnetRadius <= 0 {
		errs = append(errs, invalid("power_ups.magnet_radius must be positive"))
	}

	if c.Collision.NearMissZone <= 0 {
		errs = append(errs, invalid("collision.near_miss_zone must be positive"))
	}
	if c.Scoring.ComboStep <= 0 {
		errs = append(errs, invalid("scoring.combo_step must be positive"))
	}

	if len(c.Biomes) == 0 {
		errs = append(errs, invalid("at least one biome is required"))
	}
	for i, bm := range c.Biomes {
		if len(bm.Obstacles) == 0 || len(bm.Decorations) == 0 {
			errs = append(errs, invalid("biomes[%d] (%s) needs obstacle and decoration variants", i, bm.Name))
		}
		if i > 0 && bm.FromDistance < c.Biomes[i-1].FromDistance {
			errs = append(errs, invalid("biomes must be sorted by from_distance"))
		}
	}

	switch c.Difficulty.Progression.Type {
	case ProgressionDistance, ProgressionTime, ProgressionNone:
	default:
		errs = append(errs, invalid("difficulty.progression.type %q is not distance, time or none", c.Difficulty.Progression.Type))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, invalid("difficulty.initial_level must be in [0,1]"))
	}
	if c.Difficulty.Speed.Max < 1 {
		errs = append(errs, invalid("difficulty.speed.max must be at least 1"))
	}

	return errors.Join(errs...)
}

func validateCurve(name string, c SpawnCurve) []error {
	var errs []error
	if c.Base <= 0 || c.Floor <= 0 {
		errs = append(errs, invalid("%s intervals must be positive, got base=%v floor=%v", name, c.Base, c.Floor))
	}
	if c.Floor > c.Base {
		errs = append(errs, invalid("%s floor (%v) is greater than base (%v)", name, c.Floor, c.Base))
	}
	if c.MaxDistance <= 0 {
		errs = append(errs, invalid("%s max_distance must be positive, got %v", name, c.MaxDistance))
	}
	return errs
}
