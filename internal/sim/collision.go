package sim

import (
	"github.com/vovakirdan/river-rush/internal/config"
)

// TickContext carries the per-tick inputs of the collision system.
// Damage and Grace are pure gates evaluated by the caller every tick.
type TickContext struct {
	Now      int64
	Damage   bool // obstacle collisions are checked
	Grace    bool // start-of-run or tutorial protection
	PowerUps *PowerUpState
}

const magnetEpsilon = 1e-6

// CollisionSystem resolves player contact with obstacles and pickups,
// runs the magnet and expires timed power-ups.
type CollisionSystem struct {
	cfg      *config.RiverConfig
	factory  *Factory
	animator Animator
}

// NewCollisionSystem creates the collision and power-up system.
func NewCollisionSystem(cfg *config.RiverConfig, f *Factory) *CollisionSystem {
	return &CollisionSystem{cfg: cfg, factory: f, animator: NewAnimator(cfg.Animation)}
}

// Update runs one tick and returns the events for the Game State sink.
// Once the player is dead it emits nothing.
func (s *CollisionSystem) Update(w *World, ctx *TickContext) []Event {
	player, ok := w.Player()
	if !ok {
		return nil
	}
	health := w.Healths.Ptr(player)
	if health != nil && health.Dead {
		return nil
	}

	var events []Event
	for _, k := range ctx.PowerUps.Expire(ctx.Now) {
		events = append(events, Event{Kind: EventPowerUpExpired, PowerUp: k, Entity: player})
	}

	playerBox, ok := w.entityBox(player)
	if !ok {
		return events
	}

	if ctx.Damage {
		events = s.obstacles(w, ctx, player, playerBox, events)
	}
	if health != nil && health.Dead {
		return events
	}

	if ctx.PowerUps.Active(PowerUpMagnet, ctx.Now) {
		s.magnet(w, player)
		playerBox, _ = w.entityBox(player)
	}

	return s.collectibles(w, ctx, player, playerBox, events)
}

func (s *CollisionSystem) obstacles(w *World, ctx *TickContext, player Entity, pb Box, events []Event) []Event {
	zone := s.cfg.Collision.NearMissZone
	w.Obstacles().Each(func(o Entity) bool {
		ob, ok := w.entityBox(o)
		if !ok {
			return true
		}
		if Overlap(pb, ob) {
			var dead bool
			events, dead = s.hit(w, ctx, player, o, events)
			return !dead
		}
		if !w.NearMisses.Has(o) && NearMiss(pb, ob, zone) {
			w.NearMisses.Set(o, NearMissed{})
			events = append(events, Event{
				Kind:   EventNearMiss,
				Amount: s.cfg.Collision.NearMissBonus,
				Entity: o,
			})
			s.animator.Trigger(w, player, AnimDodge, ctx.Now)
			pos, _ := w.Positions.Get(o)
			s.factory.Burst(w, pos.X, pos.Y, ParticleWhoosh, s.cfg.Particles.NearMissCount, ctx.Now)
		}
		return true
	})
	return events
}

// hit resolves one overlap and reports whether the player died.
func (s *CollisionSystem) hit(w *World, ctx *TickContext, player, obstacle Entity, events []Event) ([]Event, bool) {
	now := ctx.Now
	if ctx.PowerUps.Active(PowerUpGhost, now) || ctx.Grace {
		return events, false
	}
	health := w.Healths.Ptr(player)
	if health == nil || now < health.InvulnerableUntil {
		return events, false
	}

	pos, _ := w.Positions.Get(obstacle)
	if ctx.PowerUps.ConsumeShield(now) {
		w.MarkDestroyed(obstacle)
		s.factory.Burst(w, pos.X, pos.Y, ParticleSparkle, s.cfg.Particles.HitCount, now)
		return append(events, Event{Kind: EventShieldConsumed, PowerUp: PowerUpShield, Entity: obstacle}), false
	}

	health.Current--
	health.InvulnerableUntil = now + s.cfg.Player.InvulnerabilityMs
	w.MarkDestroyed(obstacle)
	s.factory.Burst(w, pos.X, pos.Y, ParticleSplash, s.cfg.Particles.HitCount, now)
	events = append(events, Event{Kind: EventHealthLost, Amount: 1, Entity: player})

	if health.Current <= 0 {
		health.Dead = true
		s.animator.Trigger(w, player, AnimDeath, now)
		return append(events, Event{Kind: EventGameOver, Entity: player}), true
	}
	s.animator.Trigger(w, player, AnimHit, now)
	return events, false
}

// magnet pulls nearby pickups toward the player without overshooting.
func (s *CollisionSystem) magnet(w *World, player Entity) {
	pp, _ := w.Positions.Get(player)
	radius := s.cfg.PowerUps.MagnetRadius
	speed := s.cfg.PowerUps.MagnetSpeed

	w.CollectibleQuery().Each(func(c Entity) bool {
		cp := w.Positions.Ptr(c)
		if !WithinRadius(*cp, pp.X, pp.Y, radius) {
			return true
		}
		d := Distance2D(*cp, pp)
		if d < magnetEpsilon {
			return true
		}
		step := speed * (1 - d/radius)
		if step >= d {
			cp.X, cp.Y = pp.X, pp.Y
			return true
		}
		cp.X += (pp.X - cp.X) / d * step
		cp.Y += (pp.Y - cp.Y) / d * step
		return true
	})
}

func (s *CollisionSystem) collectibles(w *World, ctx *TickContext, player Entity, pb Box, events []Event) []Event {
	now := ctx.Now
	w.CollectibleQuery().Each(func(c Entity) bool {
		cb, ok := w.entityBox(c)
		if !ok || !Overlap(pb, cb) {
			return true
		}
		pos, _ := w.Positions.Get(c)

		if pu, ok := w.PowerUps.Get(c); ok {
			ctx.PowerUps.Activate(pu.Kind, now, pu.DurationMs)
			w.MarkCollected(c)
			events = append(events, Event{Kind: EventPowerUpActivated, PowerUp: pu.Kind, Entity: c})
			s.animator.Trigger(w, player, AnimCollect, now)
			s.factory.Burst(w, pos.X, pos.Y, ParticleSparkle, s.cfg.Particles.CollectCount, now)
			return true
		}

		item, ok := w.Collectibles.Get(c)
		if !ok {
			return true
		}
		mult := ctx.PowerUps.ScoreMultiplier(now)
		switch item.Kind {
		case CollectibleCoin:
			events = append(events, Event{
				Kind:   EventCoinCollected,
				Value:  item.Value,
				Amount: item.Value * s.cfg.Scoring.CoinWeight * mult,
				Entity: c,
			})
		case CollectibleGem:
			events = append(events, Event{
				Kind:   EventGemCollected,
				Value:  item.Value,
				Amount: item.Value * s.cfg.Scoring.GemWeight * mult,
				Entity: c,
			})
		default:
			events = append(events, Event{Kind: EventScoreDelta, Amount: item.Value * mult, Entity: c})
		}
		w.MarkCollected(c)
		s.animator.Trigger(w, player, AnimCollect, now)
		s.factory.Burst(w, pos.X, pos.Y, ParticleSparkle, s.cfg.Particles.CollectCount, now)
		return true
	})
	return events
}
