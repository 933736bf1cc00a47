package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/river-rush/internal/config"
)

type fixture struct {
	cfg       *config.RiverConfig
	world     *World
	factory   *Factory
	collision *CollisionSystem
	powerUps  *PowerUpState
	player    Entity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.DefaultRiverConfig()
	f := NewFactory(&cfg, 1)
	w := NewWorld()
	fx := &fixture{
		cfg:       &cfg,
		world:     w,
		factory:   f,
		collision: NewCollisionSystem(&cfg, f),
		powerUps:  NewPowerUpState(cfg.PowerUps),
	}
	fx.player = f.Player(w, 0)
	require.True(t, w.Alive(fx.player))
	return fx
}

func (fx *fixture) ctx(now int64) *TickContext {
	return &TickContext{Now: now, Damage: true, PowerUps: fx.powerUps}
}

func (fx *fixture) playerPos() Position {
	p, _ := fx.world.Positions.Get(fx.player)
	return p
}

func (fx *fixture) health() Health {
	h, _ := fx.world.Healths.Get(fx.player)
	return h
}

// obstacleAt places an obstacle centered at (x, y).
func (fx *fixture) obstacleAt(x, y float64) Entity {
	e := fx.factory.Obstacle(fx.world, 0, "rock")
	fx.world.Positions.Set(e, Position{X: x, Y: y})
	return e
}

func (fx *fixture) coinAt(x, y float64) Entity {
	e := fx.factory.Coin(fx.world, 0, "gold")
	fx.world.Positions.Set(e, Position{X: x, Y: y})
	return e
}
