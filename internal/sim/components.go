package sim

// Position is a world-space location. Y runs down the river, Z is height.
type Position struct {
	X, Y, Z float64
}

// Velocity is applied to Position every tick, in units per second.
type Velocity struct {
	X, Y, Z float64
}

// Collider holds the full extents of an entity's bounding box.
type Collider struct {
	Width, Height, Depth float64
}

// Lane is a lane index in {-1, 0, 1}. Previous is the last index the
// animation step saw, so lane changes are detected without globals.
type Lane struct {
	Index    int
	Previous int
}

// Health tracks the player's remaining hits.
type Health struct {
	Current           int
	Max               int
	InvulnerableUntil int64
	Dead              bool
}

// Collectible is a pickup worth Value.
type Collectible struct {
	Kind  CollectibleKind
	Value int
}

// PowerUp marks a collectible that grants Kind for DurationMs.
type PowerUp struct {
	Kind       PowerUpKind
	DurationMs int64
}

// Animation is read by renderers. ExpiresAt is zero for looping states.
type Animation struct {
	Current   AnimState
	StartedAt int64
	ExpiresAt int64
}

// Flags are lifecycle markers consumed by Cleanup.
type Flags struct {
	Collected bool
	Destroyed bool
}

// NearMissed marks an obstacle that already granted its bonus.
type NearMissed struct{}

// Jump tracks vertical motion of the player.
type Jump struct {
	Airborne   bool
	VelocityZ  float64
	LastJumpAt int64
}

// Particle is a short-lived feedback sprite.
type Particle struct {
	Kind      ParticleKind
	ExpiresAt int64
}

// Variant names the visual model of an entity.
type Variant struct {
	Name string
}
