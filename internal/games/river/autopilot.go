package river

import (
	"math"

	"github.com/vovakirdan/river-rush/internal/core"
	"github.com/vovakirdan/river-rush/internal/sim"
)

// autopilotLookahead is how far ahead of the player, in world units,
// the autopilot reacts to obstacles.
const autopilotLookahead = 6.0

// Autopilot returns a headless input frame: it steers out of lanes with
// an obstacle ahead, preferring the center, and jumps when every lane
// is blocked. It uses only world state so runs stay deterministic.
func (g *Game) Autopilot() core.InputFrame {
	var in core.InputFrame
	if g.world == nil || !g.state.Playing() {
		return in
	}

	blocked := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	py := g.cfg.World.PlayerY
	for _, s := range g.world.Sprites() {
		if !s.Tags.Has(sim.TagObstacle) {
			continue
		}
		ahead := s.Position.Y - py
		if ahead < -s.Collider.Height || ahead > autopilotLookahead {
			continue
		}
		i := g.nearestLane(s.Position.X) + 1
		blocked[i] = math.Min(blocked[i], ahead)
	}

	cur := g.lane + 1
	if math.IsInf(blocked[cur], 1) {
		return in
	}

	best := cur
	for _, cand := range []int{1, 0, 2} {
		if math.IsInf(blocked[cand], 1) && abs(cand-cur) == 1 {
			best = cand
			break
		}
	}
	switch {
	case best < cur:
		in.Set(core.ActionLaneLeft)
	case best > cur:
		in.Set(core.ActionLaneRight)
	default:
		in.Set(core.ActionJump)
	}
	return in
}

func (g *Game) nearestLane(x float64) int {
	lane, dist := 0, math.Inf(1)
	for l := -1; l <= 1; l++ {
		if d := math.Abs(g.cfg.World.LaneX(l) - x); d < dist {
			lane, dist = l, d
		}
	}
	return lane
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
