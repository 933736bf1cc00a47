// Package sim is the River Rush simulation core: the entity world,
// collision utilities and the per-tick systems. It performs no I/O and
// reads no clocks; every time value is passed in by the caller.
package sim

import (
	"github.com/vovakirdan/river-rush/internal/ecs"
)

// Entity is the handle type used throughout the simulation.
type Entity = ecs.Entity

// World owns every entity and its components.
type World struct {
	pool *ecs.Pool

	Positions    *ecs.Store[Position]
	Velocities   *ecs.Store[Velocity]
	Colliders    *ecs.Store[Collider]
	Lanes        *ecs.Store[Lane]
	Healths      *ecs.Store[Health]
	Collectibles *ecs.Store[Collectible]
	PowerUps     *ecs.Store[PowerUp]
	Animations   *ecs.Store[Animation]
	Tags         *ecs.Store[Tag]
	Flags        *ecs.Store[Flags]
	NearMisses   *ecs.Store[NearMissed]
	Jumps        *ecs.Store[Jump]
	Particles    *ecs.Store[Particle]
	Variants     *ecs.Store[Variant]

	stores []ecs.Storage
}

// Components is the optional component set passed to Add.
// Nil pointers and zero Tags are not attached.
type Components struct {
	Position    *Position
	Velocity    *Velocity
	Collider    *Collider
	Lane        *Lane
	Health      *Health
	Collectible *Collectible
	PowerUp     *PowerUp
	Animation   *Animation
	Tags        Tag
	Jump        *Jump
	Particle    *Particle
	Variant     string
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{
		pool:         ecs.NewPool(),
		Positions:    ecs.NewStore[Position](),
		Velocities:   ecs.NewStore[Velocity](),
		Colliders:    ecs.NewStore[Collider](),
		Lanes:        ecs.NewStore[Lane](),
		Healths:      ecs.NewStore[Health](),
		Collectibles: ecs.NewStore[Collectible](),
		PowerUps:     ecs.NewStore[PowerUp](),
		Animations:   ecs.NewStore[Animation](),
		Tags:         ecs.NewStore[Tag](),
		Flags:        ecs.NewStore[Flags](),
		NearMisses:   ecs.NewStore[NearMissed](),
		Jumps:        ecs.NewStore[Jump](),
		Particles:    ecs.NewStore[Particle](),
		Variants:     ecs.NewStore[Variant](),
	}
	w.stores = []ecs.Storage{
		w.Positions, w.Velocities, w.Colliders, w.Lanes, w.Healths,
		w.Collectibles, w.PowerUps, w.Animations, w.Tags, w.Flags,
		w.NearMisses, w.Jumps, w.Particles, w.Variants,
	}
	return w
}

// Add creates an entity with the given components.
func (w *World) Add(c Components) Entity {
	e := w.pool.Create()
	if c.Position != nil {
		w.Positions.Set(e, *c.Position)
	}
	if c.Velocity != nil {
		w.Velocities.Set(e, *c.Velocity)
	}
	if c.Collider != nil {
		w.Colliders.Set(e, *c.Collider)
	}
	if c.Lane != nil {
		w.Lanes.Set(e, *c.Lane)
	}
	if c.Health != nil {
		w.Healths.Set(e, *c.Health)
	}
	if c.Collectible != nil {
		w.Collectibles.Set(e, *c.Collectible)
	}
	if c.PowerUp != nil {
		w.PowerUps.Set(e, *c.PowerUp)
	}
	if c.Animation != nil {
		w.Animations.Set(e, *c.Animation)
	}
	if c.Tags != 0 {
		w.Tags.Set(e, c.Tags)
	}
	if c.Jump != nil {
		w.Jumps.Set(e, *c.Jump)
	}
	if c.Particle != nil {
		w.Particles.Set(e, *c.Particle)
	}
	if c.Variant != "" {
		w.Variants.Set(e, Variant{Name: c.Variant})
	}
	return e
}

// Remove deletes e and all of its components. Stale handles are ignored.
func (w *World) Remove(e Entity) bool {
	if !w.pool.Destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// Alive reports whether e is a live entity of this world.
func (w *World) Alive(e Entity) bool {
	return w.pool.Alive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.pool.Len()
}

// Reset removes every entity.
func (w *World) Reset() {
	w.pool.Reset()
	for _, s := range w.stores {
		s.Clear()
	}
}

// Query returns a live-checked query over the given stores.
func (w *World) Query(stores ...ecs.Storage) *ecs.Query {
	return ecs.NewQuery(w.pool.Alive, stores...)
}

// HasTag reports whether e carries tag t.
func (w *World) HasTag(e Entity, t Tag) bool {
	tags, ok := w.Tags.Get(e)
	return ok && tags.Has(t)
}

// Live reports whether e is alive and not flagged for removal.
func (w *World) Live(e Entity) bool {
	if !w.pool.Alive(e) {
		return false
	}
	f, ok := w.Flags.Get(e)
	return !ok || (!f.Collected && !f.Destroyed)
}

// MarkDestroyed flags e for removal by Cleanup.
func (w *World) MarkDestroyed(e Entity) {
	f, _ := w.Flags.Get(e)
	f.Destroyed = true
	w.Flags.Set(e, f)
}

// MarkCollected flags e as picked up.
func (w *World) MarkCollected(e Entity) {
	f, _ := w.Flags.Get(e)
	f.Collected = true
	w.Flags.Set(e, f)
}

// Destroyed reports whether e is flagged destroyed.
func (w *World) Destroyed(e Entity) bool {
	f, _ := w.Flags.Get(e)
	return f.Destroyed
}

// Collected reports whether e is flagged collected.
func (w *World) Collected(e Entity) bool {
	f, _ := w.Flags.Get(e)
	return f.Collected
}

func (w *World) tagged(t Tag) func(Entity) bool {
	return func(e Entity) bool { return w.HasTag(e, t) }
}

// Player returns the player entity.
func (w *World) Player() (Entity, bool) {
	return w.Query(w.Tags, w.Positions).Where(w.tagged(TagPlayer)).First()
}

// Obstacles matches live obstacles with a position and collider.
func (w *World) Obstacles() *ecs.Query {
	return w.Query(w.Tags, w.Positions, w.Colliders).
		Where(w.tagged(TagObstacle)).
		Where(w.Live)
}

// CollectibleQuery matches live pickups with a position and collider.
// The Collectible component itself is optional here so that callers
// can skip malformed entities explicitly.
func (w *World) CollectibleQuery() *ecs.Query {
	return w.Query(w.Tags, w.Positions, w.Colliders).
		Where(w.tagged(TagCollectible)).
		Where(w.Live)
}

// Decorations matches bank decorations.
func (w *World) Decorations() *ecs.Query {
	return w.Query(w.Tags, w.Positions).Where(w.tagged(TagDecoration))
}

// ParticleQuery matches feedback particles.
func (w *World) ParticleQuery() *ecs.Query {
	return w.Query(w.Particles, w.Positions)
}

// Moving matches every entity with a position and velocity.
func (w *World) Moving() *ecs.Query {
	return w.Query(w.Positions, w.Velocities)
}

// CountTagged returns the number of live entities carrying t.
func (w *World) CountTagged(t Tag) int {
	return w.Query(w.Tags).Where(w.tagged(t)).Where(w.Live).Count()
}
