package river

import (
	"testing"

	"github.com/vovakirdan/river-rush/internal/core"
	"github.com/vovakirdan/river-rush/internal/sim"
)

func placeObstacle(g *Game, lane int, ahead float64) {
	e := g.factory.Obstacle(g.world, lane, "rock")
	p := g.world.Positions.Ptr(e)
	p.Y = g.cfg.World.PlayerY + ahead
}

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(g *Game)
		expected []core.Action
	}{
		{
			name:     "clear river",
			setup:    func(*Game) {},
			expected: nil,
		},
		{
			name:     "obstacle far ahead",
			setup:    func(g *Game) { placeObstacle(g, 0, autopilotLookahead+1) },
			expected: nil,
		},
		{
			name:     "obstacle in own lane",
			setup:    func(g *Game) { placeObstacle(g, 0, 2) },
			expected: []core.Action{core.ActionLaneLeft},
		},
		{
			name: "left blocked",
			setup: func(g *Game) {
				placeObstacle(g, 0, 2)
				placeObstacle(g, -1, 3)
			},
			expected: []core.Action{core.ActionLaneRight},
		},
		{
			name: "all lanes blocked",
			setup: func(g *Game) {
				placeObstacle(g, -1, 2)
				placeObstacle(g, 0, 2)
				placeObstacle(g, 1, 2)
			},
			expected: []core.Action{core.ActionJump},
		},
		{
			name:     "other lane only",
			setup:    func(g *Game) { placeObstacle(g, 1, 2) },
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, sim.ModeZen, 1)
			tt.setup(g)

			got := g.Autopilot().Actions()
			if len(got) != len(tt.expected) {
				t.Fatalf("Autopilot() = %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Autopilot()[%d] = %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestAutopilotIdleWhenPaused(t *testing.T) {
	g := newTestGame(t, sim.ModeZen, 1)
	placeObstacle(g, 0, 2)
	g.Step(core.FrameOf(core.ActionPause))

	if in := g.Autopilot(); !in.Empty() {
		t.Errorf("Autopilot() while paused = %v, expected empty", in.Actions())
	}
}

func TestAutopilotDeterministic(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, sim.ModeClassic, 2024)
		for range 2000 {
			g.Step(g.Autopilot())
		}
		return g.Digest()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("Digest() = %x and %x, expected equal", a, b)
	}
}
