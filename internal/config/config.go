// Package config provides YAML/TOML gameplay configuration loading,
// validation and difficulty management for River Rush.
package config

// RiverConfig contains all tunable gameplay parameters.
type RiverConfig struct {
	World        WorldConfig       `yaml:"world" toml:"world"`
	Player       PlayerConfig      `yaml:"player" toml:"player"`
	Spawn        SpawnConfig       `yaml:"spawn" toml:"spawn"`
	Colliders    ColliderConfig    `yaml:"colliders" toml:"colliders"`
	Collectibles CollectibleConfig `yaml:"collectibles" toml:"collectibles"`
	PowerUps     PowerUpConfig     `yaml:"power_ups" toml:"power_ups"`
	Collision    CollisionConfig   `yaml:"collision" toml:"collision"`
	Scoring      ScoringConfig     `yaml:"scoring" toml:"scoring"`
	Animation    AnimationConfig   `yaml:"animation" toml:"animation"`
	Particles    ParticleConfig    `yaml:"particles" toml:"particles"`
	Modes        ModesConfig       `yaml:"modes" toml:"modes"`
	Biomes       []BiomeConfig     `yaml:"biomes" toml:"biomes"`
	Difficulty   DifficultyConfig  `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the play field geometry.
type WorldConfig struct {
	Lanes            []float64 `yaml:"lanes" toml:"lanes"` // x of lanes -1, 0, 1
	PlayerY          float64   `yaml:"player_y" toml:"player_y"`
	SpawnY           float64   `yaml:"spawn_y" toml:"spawn_y"`
	DespawnY         float64   `yaml:"despawn_y" toml:"despawn_y"`
	ScrollSpeed      float64   `yaml:"scroll_speed" toml:"scroll_speed"` // units per second
	DecorationSpread float64   `yaml:"decoration_spread" toml:"decoration_spread"`
}

// PlayerConfig defines player movement and survivability.
type PlayerConfig struct {
	Lives             int     `yaml:"lives" toml:"lives"`
	SteerSpeed        float64 `yaml:"steer_speed" toml:"steer_speed"`
	JumpVelocity      float64 `yaml:"jump_velocity" toml:"jump_velocity"`
	Gravity           float64 `yaml:"gravity" toml:"gravity"`
	JumpCooldownMs    int64   `yaml:"jump_cooldown_ms" toml:"jump_cooldown_ms"`
	InvulnerabilityMs int64   `yaml:"invulnerability_ms" toml:"invulnerability_ms"`
	SpawnGraceMs      int64   `yaml:"spawn_grace_ms" toml:"spawn_grace_ms"`
	TutorialMs        int64   `yaml:"tutorial_ms" toml:"tutorial_ms"`
}

// SpawnCurve is a linear interval curve: Base seconds at distance 0,
// shrinking to Floor seconds at MaxDistance and holding there.
type SpawnCurve struct {
	Base        float64 `yaml:"base" toml:"base"`
	Floor       float64 `yaml:"floor" toml:"floor"`
	MaxDistance float64 `yaml:"max_distance" toml:"max_distance"`
}

// SpawnBands partitions a uniform roll in [0,1) into collectible outcomes.
// Rolls below PowerUp yield a power-up, below PowerUp+Gem a gem,
// everything else a coin.
type SpawnBands struct {
	PowerUp float64 `yaml:"power_up" toml:"power_up"`
	Gem     float64 `yaml:"gem" toml:"gem"`
}

// SpawnConfig defines spawn cadence.
type SpawnConfig struct {
	Obstacle           SpawnCurve `yaml:"obstacle" toml:"obstacle"`
	Collectible        SpawnCurve `yaml:"collectible" toml:"collectible"`
	DecorationInterval float64    `yaml:"decoration_interval" toml:"decoration_interval"`
	Bands              SpawnBands `yaml:"bands" toml:"bands"`
}

// Size is the full extent of a collider on each axis.
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Depth  float64 `yaml:"depth" toml:"depth"`
}

// ColliderConfig defines collider dimensions per entity kind.
type ColliderConfig struct {
	Player     Size `yaml:"player" toml:"player"`
	Obstacle   Size `yaml:"obstacle" toml:"obstacle"`
	Coin       Size `yaml:"coin" toml:"coin"`
	Gem        Size `yaml:"gem" toml:"gem"`
	PowerUp    Size `yaml:"power_up" toml:"power_up"`
	Decoration Size `yaml:"decoration" toml:"decoration"`
}

// CollectibleConfig defines pickup values and visual variants.
type CollectibleConfig struct {
	CoinValue    int      `yaml:"coin_value" toml:"coin_value"`
	GemValue     int      `yaml:"gem_value" toml:"gem_value"`
	CoinVariants []string `yaml:"coin_variants" toml:"coin_variants"`
	GemVariants  []string `yaml:"gem_variants" toml:"gem_variants"`
}

// PowerUpDurations holds activation lengths in milliseconds.
// A zero shield duration means the shield lasts until consumed.
type PowerUpDurations struct {
	Shield     int64 `yaml:"shield" toml:"shield"`
	Magnet     int64 `yaml:"magnet" toml:"magnet"`
	Ghost      int64 `yaml:"ghost" toml:"ghost"`
	Multiplier int64 `yaml:"multiplier" toml:"multiplier"`
	SlowMotion int64 `yaml:"slow_motion" toml:"slow_motion"`
}

// PowerUpConfig defines power-up behavior.
type PowerUpConfig struct {
	Durations        PowerUpDurations `yaml:"durations" toml:"durations"`
	MultiplierValue  int              `yaml:"multiplier_value" toml:"multiplier_value"`
	SlowMotionFactor float64          `yaml:"slow_motion_factor" toml:"slow_motion_factor"`
	MagnetRadius     float64          `yaml:"magnet_radius" toml:"magnet_radius"`
	MagnetSpeed      float64          `yaml:"magnet_speed" toml:"magnet_speed"`
}

// CollisionConfig defines near-miss detection.
type CollisionConfig struct {
	NearMissZone  float64 `yaml:"near_miss_zone" toml:"near_miss_zone"`
	NearMissBonus int     `yaml:"near_miss_bonus" toml:"near_miss_bonus"`
}

// ScoringConfig defines score weights and combo rules.
type ScoringConfig struct {
	CoinWeight     int   `yaml:"coin_weight" toml:"coin_weight"`
	GemWeight      int   `yaml:"gem_weight" toml:"gem_weight"`
	ComboStep      int   `yaml:"combo_step" toml:"combo_step"`
	ComboTimeoutMs int64 `yaml:"combo_timeout_ms" toml:"combo_timeout_ms"`
	PointsPerMeter int   `yaml:"points_per_meter" toml:"points_per_meter"`
}

// AnimationConfig defines one-shot animation lengths in milliseconds.
type AnimationConfig struct {
	HitMs     int64 `yaml:"hit_ms" toml:"hit_ms"`
	CollectMs int64 `yaml:"collect_ms" toml:"collect_ms"`
	DodgeMs   int64 `yaml:"dodge_ms" toml:"dodge_ms"`
}

// ParticleConfig defines feedback particle bursts.
type ParticleConfig struct {
	LifetimeMs    int64   `yaml:"lifetime_ms" toml:"lifetime_ms"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	HitCount      int     `yaml:"hit_count" toml:"hit_count"`
	CollectCount  int     `yaml:"collect_count" toml:"collect_count"`
	NearMissCount int     `yaml:"near_miss_count" toml:"near_miss_count"`
}

// ModesConfig defines mode-specific parameters.
type ModesConfig struct {
	TimeTrialMs int64 `yaml:"time_trial_ms" toml:"time_trial_ms"`
}

// BiomeConfig defines the visual variants available from a distance on.
type BiomeConfig struct {
	Name         string   `yaml:"name" toml:"name"`
	FromDistance float64  `yaml:"from_distance" toml:"from_distance"`
	Obstacles    []string `yaml:"obstacles" toml:"obstacles"`
	Decorations  []string `yaml:"decorations" toml:"decorations"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Speed        SpeedConfig       `yaml:"speed" toml:"speed"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type" toml:"type"`     // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at" toml:"max_at"` // meters or milliseconds at max difficulty
}

// SpeedConfig defines the stepped scroll speed multiplier.
type SpeedConfig struct {
	StepDistance float64 `yaml:"step_distance" toml:"step_distance"`
	StepIncrease float64 `yaml:"step_increase" toml:"step_increase"`
	Max          float64 `yaml:"max" toml:"max"`
}

// Progression types.
const (
	ProgressionDistance = "distance"
	ProgressionTime     = "time"
	ProgressionNone     = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty or unknown
// strings yield "" which keeps the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RiverConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Spawn.Bands.PowerUp = 0.08
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.InvulnerabilityMs = 600
	}
}

// LaneX returns the world x of a lane index in {-1, 0, 1}.
// Out-of-range lanes clamp to the outermost lane.
func (w WorldConfig) LaneX(lane int) float64 {
	if len(w.Lanes) == 0 {
		return 0
	}
	i := lane + len(w.Lanes)/2
	if i < 0 {
		i = 0
	}
	if i >= len(w.Lanes) {
		i = len(w.Lanes) - 1
	}
	return w.Lanes[i]
}

// BiomeAt returns the biome active at distance. Biomes are assumed
// sorted by FromDistance.
func (c RiverConfig) BiomeAt(distance float64) BiomeConfig {
	var cur BiomeConfig
	for i, b := range c.Biomes {
		if i == 0 || distance >= b.FromDistance {
			cur = b
		}
	}
	return cur
}
