package sim

import (
	"math"

	"github.com/vovakirdan/river-rush/internal/config"
)

// Intent is the per-tick input reaching the core: a desired lane in
// {-1, 0, 1} and a jump request.
type Intent struct {
	Lane int
	Jump bool
}

const laneSnap = 0.01

// Steer applies intent to the player: it updates the target lane,
// eases the player toward the lane center and integrates the jump.
// It reports whether the target lane changed.
func Steer(w *World, cfg config.PlayerConfig, world config.WorldConfig, in Intent, now int64, dt float64) bool {
	e, ok := w.Player()
	if !ok {
		return false
	}
	if h, ok := w.Healths.Get(e); ok && h.Dead {
		return false
	}

	changed := false
	target := clampLane(in.Lane)
	if lane := w.Lanes.Ptr(e); lane != nil && lane.Index != target {
		lane.Index = target
		changed = true
	}

	pos := w.Positions.Ptr(e)
	if lane, ok := w.Lanes.Get(e); ok {
		goal := world.LaneX(lane.Index)
		diff := goal - pos.X
		if math.Abs(diff) < laneSnap {
			pos.X = goal
		} else {
			step := diff * cfg.SteerSpeed * dt
			if math.Abs(step) >= math.Abs(diff) {
				pos.X = goal
			} else {
				pos.X += step
			}
		}
	}

	j := w.Jumps.Ptr(e)
	if j == nil {
		return changed
	}
	if in.Jump && !j.Airborne && now-j.LastJumpAt >= cfg.JumpCooldownMs {
		j.Airborne = true
		j.VelocityZ = cfg.JumpVelocity
		j.LastJumpAt = now
	}
	if j.Airborne {
		pos.Z += j.VelocityZ * dt
		j.VelocityZ -= cfg.Gravity * dt
		if pos.Z <= 0 {
			pos.Z = 0
			j.VelocityZ = 0
			j.Airborne = false
		}
	}
	return changed
}

func clampLane(l int) int {
	if l < -1 {
		return -1
	}
	if l > 1 {
		return 1
	}
	return l
}
