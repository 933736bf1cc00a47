package sim

import "fmt"

// CollectibleKind classifies pickups.
type CollectibleKind uint8

const (
	CollectibleCoin CollectibleKind = iota
	CollectibleGem
	CollectibleSpecial
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectibleGem:
		return "gem"
	case CollectibleSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// PowerUpKind enumerates the power-ups a player can hold.
type PowerUpKind uint8

const (
	PowerUpShield PowerUpKind = iota
	PowerUpMagnet
	PowerUpGhost
	PowerUpMultiplier
	PowerUpSlowMotion

	numPowerUps
)

// AllPowerUps lists every power-up kind in declaration order.
var AllPowerUps = []PowerUpKind{
	PowerUpShield,
	PowerUpMagnet,
	PowerUpGhost,
	PowerUpMultiplier,
	PowerUpSlowMotion,
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpMagnet:
		return "magnet"
	case PowerUpGhost:
		return "ghost"
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpSlowMotion:
		return "slowMotion"
	default:
		return "unknown"
	}
}

// ParsePowerUpKind converts a name produced by String back to a kind.
func ParsePowerUpKind(s string) (PowerUpKind, error) {
	for _, k := range AllPowerUps {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("sim: unknown power-up %q", s)
}

// AnimState is the animation id consumed by renderers.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimSwim
	AnimJump
	AnimHit
	AnimCollect
	AnimDodge
	AnimDeath
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimSwim:
		return "swim"
	case AnimJump:
		return "jump"
	case AnimHit:
		return "hit"
	case AnimCollect:
		return "collect"
	case AnimDodge:
		return "dodge"
	case AnimDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Tag is a bitmask of entity-class markers.
type Tag uint8

const (
	TagPlayer Tag = 1 << iota
	TagObstacle
	TagDecoration
	TagCollectible
	TagParticle
)

// Has reports whether every bit of t is set.
func (t Tag) Has(other Tag) bool {
	return t&other == other && other != 0
}

// ParticleKind selects the look of a feedback particle.
type ParticleKind uint8

const (
	ParticleSplash ParticleKind = iota
	ParticleSparkle
	ParticleWhoosh
)

// Mode is a game mode. Its rules reach the systems as per-tick gates.
type Mode string

const (
	ModeClassic   Mode = "classic"
	ModeZen       Mode = "zen"
	ModeTimeTrial Mode = "time_trial"
)

// SpawnsObstacles reports whether the spawner creates obstacles.
func (m Mode) SpawnsObstacles() bool {
	return m != ModeZen
}

// DamageEnabled reports whether obstacle collisions are checked.
func (m Mode) DamageEnabled() bool {
	return m == ModeClassic
}

// TimeLimited reports whether the run ends on a countdown.
func (m Mode) TimeLimited() bool {
	return m == ModeTimeTrial
}
