package sim

import "github.com/vovakirdan/river-rush/internal/config"

// Animator drives Animation components. One-shot states carry an
// expiry timestamp and revert to the base state once it passes.
type Animator struct {
	cfg config.AnimationConfig
}

// NewAnimator creates an animator with the given one-shot lengths.
func NewAnimator(cfg config.AnimationConfig) Animator {
	return Animator{cfg: cfg}
}

func (a Animator) duration(s AnimState) int64 {
	switch s {
	case AnimHit:
		return a.cfg.HitMs
	case AnimCollect:
		return a.cfg.CollectMs
	case AnimDodge:
		return a.cfg.DodgeMs
	default:
		return 0
	}
}

// Trigger starts state on e at now. Death is final and is never
// replaced.
func (a Animator) Trigger(w *World, e Entity, state AnimState, now int64) {
	anim := w.Animations.Ptr(e)
	if anim == nil || anim.Current == AnimDeath {
		return
	}
	anim.Current = state
	anim.StartedAt = now
	anim.ExpiresAt = 0
	if d := a.duration(state); d > 0 {
		anim.ExpiresAt = now + d
	}
}

// Update reverts expired one-shots, starts the dodge animation when a
// lane change is seen and keeps looping states in sync with the player.
func (a Animator) Update(w *World, now int64, playing bool) {
	w.Query(w.Animations).Each(func(e Entity) bool {
		anim := w.Animations.Ptr(e)
		if anim.Current == AnimDeath {
			return true
		}

		if lane := w.Lanes.Ptr(e); lane != nil && lane.Index != lane.Previous {
			lane.Previous = lane.Index
			a.Trigger(w, e, AnimDodge, now)
			return true
		}

		if anim.ExpiresAt != 0 && now < anim.ExpiresAt {
			return true
		}

		base := AnimIdle
		if playing {
			base = AnimSwim
		}
		if j, ok := w.Jumps.Get(e); ok && j.Airborne {
			base = AnimJump
		}
		if anim.Current != base || anim.ExpiresAt != 0 {
			anim.Current = base
			anim.StartedAt = now
			anim.ExpiresAt = 0
		}
		return true
	})
}
