package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObstacleHitCostsOneLife(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	obstacle := fx.obstacleAt(pp.X, pp.Y)

	events := fx.collision.Update(fx.world, fx.ctx(1000))

	assert.Equal(t, 2, fx.health().Current)
	assert.True(t, fx.world.Destroyed(obstacle))
	assert.Equal(t, 1, CountEvents(events, EventHealthLost))
	assert.Equal(t, 0, CountEvents(events, EventGameOver))

	anim, _ := fx.world.Animations.Get(fx.player)
	assert.Equal(t, AnimHit, anim.Current)
}

func TestGhostPassThroughUntilExpiry(t *testing.T) {
	fx := newFixture(t)
	fx.powerUps.Activate(PowerUpGhost, 0, 1000)
	pp := fx.playerPos()
	obstacle := fx.obstacleAt(pp.X, pp.Y)

	events := fx.collision.Update(fx.world, fx.ctx(500))
	assert.Equal(t, 3, fx.health().Current)
	assert.False(t, fx.world.Destroyed(obstacle), "ghost must pass through")
	assert.Empty(t, events)

	events = fx.collision.Update(fx.world, fx.ctx(1500))
	assert.Equal(t, 2, fx.health().Current)
	assert.True(t, fx.world.Destroyed(obstacle))
	assert.Equal(t, 1, CountEvents(events, EventPowerUpExpired))
	assert.Equal(t, 1, CountEvents(events, EventHealthLost))
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	fx := newFixture(t)
	fx.powerUps.Activate(PowerUpShield, 0, 0)
	fx.powerUps.Activate(PowerUpShield, 10, 0)
	pp := fx.playerPos()
	obstacle := fx.obstacleAt(pp.X, pp.Y)

	events := fx.collision.Update(fx.world, fx.ctx(100))

	assert.Equal(t, 3, fx.health().Current)
	assert.True(t, fx.world.Destroyed(obstacle))
	assert.False(t, fx.powerUps.Active(PowerUpShield, 100))
	assert.Equal(t, 1, CountEvents(events, EventShieldConsumed))
	assert.Equal(t, 0, CountEvents(events, EventHealthLost))

	// The next hit lands normally.
	fx.obstacleAt(pp.X, pp.Y)
	events = fx.collision.Update(fx.world, fx.ctx(200))
	assert.Equal(t, 2, fx.health().Current)
	assert.Equal(t, 1, CountEvents(events, EventHealthLost))
}

func TestGraceIgnoresCollision(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	obstacle := fx.obstacleAt(pp.X, pp.Y)

	ctx := fx.ctx(100)
	ctx.Grace = true
	events := fx.collision.Update(fx.world, ctx)

	assert.Empty(t, events)
	assert.Equal(t, 3, fx.health().Current)
	assert.False(t, fx.world.Destroyed(obstacle))
}

func TestDamageGateSkipsObstacles(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	fx.obstacleAt(pp.X, pp.Y)

	ctx := fx.ctx(100)
	ctx.Damage = false
	fx.collision.Update(fx.world, ctx)
	assert.Equal(t, 3, fx.health().Current)
}

func TestInvulnerabilityAfterHit(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	fx.obstacleAt(pp.X, pp.Y)
	second := fx.obstacleAt(pp.X, pp.Y+0.1)

	events := fx.collision.Update(fx.world, fx.ctx(1000))
	assert.Equal(t, 1, CountEvents(events, EventHealthLost))
	assert.False(t, fx.world.Destroyed(second), "second overlap falls in the invulnerability window")

	events = fx.collision.Update(fx.world, fx.ctx(1000+fx.cfg.Player.InvulnerabilityMs))
	assert.Equal(t, 1, CountEvents(events, EventHealthLost))
	assert.Equal(t, 1, fx.health().Current)
}

func TestGameOverFiresOnce(t *testing.T) {
	fx := newFixture(t)
	fx.world.Healths.Ptr(fx.player).Current = 1
	pp := fx.playerPos()
	fx.obstacleAt(pp.X, pp.Y)

	events := fx.collision.Update(fx.world, fx.ctx(1000))
	require.Equal(t, 1, CountEvents(events, EventGameOver))
	assert.True(t, fx.health().Dead)

	anim, _ := fx.world.Animations.Get(fx.player)
	assert.Equal(t, AnimDeath, anim.Current)

	fx.obstacleAt(pp.X, pp.Y)
	fx.coinAt(pp.X, pp.Y)
	for now := int64(5000); now < 10000; now += 1000 {
		events = fx.collision.Update(fx.world, fx.ctx(now))
		assert.Empty(t, events, "dead player must not produce events")
	}
}

func TestNearMissFiresOncePerObstacle(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	// Obstacle x in [0.5, 1.7], player x in [-0.4, 0.4]: gap 0.1 < zone 0.3.
	obstacle := fx.obstacleAt(pp.X+1.1, pp.Y+0.5)

	total := 0
	for tick := 0; tick < 3; tick++ {
		events := fx.collision.Update(fx.world, fx.ctx(int64(1000+tick*16)))
		total += CountEvents(events, EventNearMiss)
		assert.Zero(t, CountEvents(events, EventHealthLost))

		p := fx.world.Positions.Ptr(obstacle)
		p.Y -= 0.2
	}

	assert.Equal(t, 1, total)
	assert.True(t, fx.world.NearMisses.Has(obstacle))
	assert.Equal(t, 3, fx.health().Current)
}

func TestNearMissBonusAmount(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	fx.obstacleAt(pp.X-1.1, pp.Y)

	events := fx.collision.Update(fx.world, fx.ctx(1000))
	require.Len(t, events, 1)
	assert.Equal(t, EventNearMiss, events[0].Kind)
	assert.Equal(t, fx.cfg.Collision.NearMissBonus, events[0].Amount)
}

func TestCoinAndGemScores(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	coin := fx.coinAt(pp.X, pp.Y)
	gem := fx.factory.Gem(fx.world, 0, "ruby")
	fx.world.Positions.Set(gem, pp)

	events := fx.collision.Update(fx.world, fx.ctx(1000))

	require.Len(t, events, 2)
	assert.Equal(t, EventCoinCollected, events[0].Kind)
	assert.Equal(t, fx.cfg.Collectibles.CoinValue*fx.cfg.Scoring.CoinWeight, events[0].Amount)
	assert.Equal(t, EventGemCollected, events[1].Kind)
	assert.Equal(t, fx.cfg.Collectibles.GemValue*fx.cfg.Scoring.GemWeight, events[1].Amount)
	assert.True(t, fx.world.Collected(coin))
	assert.True(t, fx.world.Collected(gem))

	// Collected pickups are never counted twice.
	events = fx.collision.Update(fx.world, fx.ctx(1016))
	assert.Empty(t, events)
}

func TestMultiplierScalesPickups(t *testing.T) {
	fx := newFixture(t)
	fx.powerUps.Activate(PowerUpMultiplier, 0, 10000)
	pp := fx.playerPos()
	fx.coinAt(pp.X, pp.Y)

	events := fx.collision.Update(fx.world, fx.ctx(1000))
	require.Len(t, events, 1)
	assert.Equal(t, fx.cfg.Scoring.CoinWeight*fx.cfg.PowerUps.MultiplierValue, events[0].Amount)
}

func TestPowerUpPickupActivates(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	pickup := fx.factory.PowerUpPickup(fx.world, 0, PowerUpMagnet)
	fx.world.Positions.Set(pickup, pp)

	events := fx.collision.Update(fx.world, fx.ctx(1000))

	require.Len(t, events, 1)
	assert.Equal(t, EventPowerUpActivated, events[0].Kind)
	assert.Equal(t, PowerUpMagnet, events[0].PowerUp)
	assert.True(t, fx.powerUps.Active(PowerUpMagnet, 1000))
	assert.Equal(t, fx.cfg.PowerUps.Durations.Magnet, fx.powerUps.Remaining(PowerUpMagnet, 1000))
	assert.True(t, fx.world.Collected(pickup))
}

func TestMalformedCollectibleSkipped(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	broken := fx.coinAt(pp.X, pp.Y)
	fx.world.Collectibles.Remove(broken)

	var events []Event
	require.NotPanics(t, func() {
		events = fx.collision.Update(fx.world, fx.ctx(1000))
	})
	assert.Empty(t, events)
	assert.False(t, fx.world.Collected(broken))
}

func TestMagnetPullsWithoutOvershoot(t *testing.T) {
	fx := newFixture(t)
	fx.powerUps.Activate(PowerUpMagnet, 0, 8000)
	pp := fx.playerPos()

	far := fx.coinAt(pp.X+2, pp.Y)
	outside := fx.coinAt(pp.X+5, pp.Y)
	near := fx.coinAt(pp.X+0.05, pp.Y)

	fx.collision.Update(fx.world, fx.ctx(1000))

	farPos, _ := fx.world.Positions.Get(far)
	expectedStep := fx.cfg.PowerUps.MagnetSpeed * (1 - 2/fx.cfg.PowerUps.MagnetRadius)
	assert.InDelta(t, pp.X+2-expectedStep, farPos.X, 1e-9)
	assert.False(t, fx.world.Collected(far))

	outPos, _ := fx.world.Positions.Get(outside)
	assert.Equal(t, pp.X+5, outPos.X, "coins outside the radius stay put")

	nearPos, _ := fx.world.Positions.Get(near)
	assert.Equal(t, pp.X, nearPos.X, "a step longer than the gap snaps onto the player")
	assert.True(t, fx.world.Collected(near))
}

func TestMagnetInactiveDoesNotPull(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	coin := fx.coinAt(pp.X+2, pp.Y)

	fx.collision.Update(fx.world, fx.ctx(1000))

	p, _ := fx.world.Positions.Get(coin)
	assert.Equal(t, pp.X+2, p.X)
}

func TestDestroyedObstacleIsNotHitAgain(t *testing.T) {
	fx := newFixture(t)
	pp := fx.playerPos()
	obstacle := fx.obstacleAt(pp.X, pp.Y)
	fx.world.MarkDestroyed(obstacle)

	events := fx.collision.Update(fx.world, fx.ctx(1000))
	assert.Empty(t, events)
	assert.Equal(t, 3, fx.health().Current)
}
