package config

import (
	_ "embed"
)

//go:embed defaults/river.yaml
var defaultRiverYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultRiverYAML))
	copy(out, defaultRiverYAML)
	return out
}

// DefaultRiverConfig returns the built-in configuration. It mirrors
// defaults/river.yaml and is used when the embedded document fails to parse.
func DefaultRiverConfig() RiverConfig {
	return RiverConfig{
		World: WorldConfig{
			Lanes:            []float64{-2, 0, 2},
			PlayerY:          -3,
			SpawnY:           8,
			DespawnY:         -10,
			ScrollSpeed:      5,
			DecorationSpread: 3,
		},
		Player: PlayerConfig{
			Lives:             3,
			SteerSpeed:        10,
			JumpVelocity:      8,
			Gravity:           20,
			JumpCooldownMs:    500,
			InvulnerabilityMs: 1000,
			SpawnGraceMs:      500,
			TutorialMs:        30000,
		},
		Spawn: SpawnConfig{
			Obstacle:           SpawnCurve{Base: 2.0, Floor: 1.0, MaxDistance: 3000},
			Collectible:        SpawnCurve{Base: 3.0, Floor: 1.5, MaxDistance: 3000},
			DecorationInterval: 1.5,
			Bands:              SpawnBands{PowerUp: 0.05, Gem: 0.25},
		},
		Colliders: ColliderConfig{
			Player:     Size{Width: 0.8, Height: 1.2, Depth: 0.8},
			Obstacle:   Size{Width: 1.2, Height: 1.2, Depth: 1.2},
			Coin:       Size{Width: 0.6, Height: 0.6, Depth: 0.6},
			Gem:        Size{Width: 0.8, Height: 0.8, Depth: 0.8},
			PowerUp:    Size{Width: 0.8, Height: 0.8, Depth: 0.8},
			Decoration: Size{Width: 1, Height: 1, Depth: 1},
		},
		Collectibles: CollectibleConfig{
			CoinValue:    1,
			GemValue:     1,
			CoinVariants: []string{"gold", "silver", "bronze"},
			GemVariants:  []string{"ruby", "emerald", "sapphire"},
		},
		PowerUps: PowerUpConfig{
			Durations: PowerUpDurations{
				Shield:     0,
				Magnet:     8000,
				Ghost:      5000,
				Multiplier: 10000,
				SlowMotion: 5000,
			},
			MultiplierValue:  2,
			SlowMotionFactor: 0.5,
			MagnetRadius:     3,
			MagnetSpeed:      0.15,
		},
		Collision: CollisionConfig{
			NearMissZone:  0.3,
			NearMissBonus: 50,
		},
		Scoring: ScoringConfig{
			CoinWeight:     10,
			GemWeight:      50,
			ComboStep:      10,
			ComboTimeoutMs: 2000,
			PointsPerMeter: 1,
		},
		Animation: AnimationConfig{
			HitMs:     500,
			CollectMs: 300,
			DodgeMs:   200,
		},
		Particles: ParticleConfig{
			LifetimeMs:    1000,
			Speed:         2,
			HitCount:      6,
			CollectCount:  4,
			NearMissCount: 3,
		},
		Modes: ModesConfig{
			TimeTrialMs: 60000,
		},
		Biomes: []BiomeConfig{
			{Name: "forest", FromDistance: 0, Obstacles: []string{"rock", "log", "stump"}, Decorations: []string{"pine", "fern", "bush"}},
			{Name: "canyon", FromDistance: 1000, Obstacles: []string{"boulder", "rock", "cactus"}, Decorations: []string{"mesa", "cactus", "dune"}},
			{Name: "arctic", FromDistance: 2000, Obstacles: []string{"iceberg", "floe", "rock"}, Decorations: []string{"snowdrift", "spruce", "igloo"}},
			{Name: "volcanic", FromDistance: 3000, Obstacles: []string{"basalt", "lava_rock", "vent"}, Decorations: []string{"ash", "crag", "ember"}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionDistance,
				MaxAt: 3000,
			},
			Speed: SpeedConfig{
				StepDistance: 500,
				StepIncrease: 0.1,
				Max:          2.0,
			},
		},
	}
}
