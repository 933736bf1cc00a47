package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/river-rush/internal/config"
)

func TestShieldActivationIsIdempotent(t *testing.T) {
	ps := NewPowerUpState(config.DefaultRiverConfig().PowerUps)

	ps.Activate(PowerUpShield, 0, 0)
	ps.Activate(PowerUpShield, 100, 0)

	assert.Equal(t, []PowerUpKind{PowerUpShield}, ps.ActiveKinds(200))
	require.True(t, ps.ConsumeShield(200))
	assert.False(t, ps.Active(PowerUpShield, 200))
	assert.False(t, ps.ConsumeShield(200), "only one shield may be consumed")
}

func TestTimedShieldExpires(t *testing.T) {
	ps := NewPowerUpState(config.DefaultRiverConfig().PowerUps)
	ps.Activate(PowerUpShield, 0, 5000)

	assert.True(t, ps.Active(PowerUpShield, 4999))
	assert.Equal(t, []PowerUpKind{PowerUpShield}, ps.Expire(5000))
	assert.False(t, ps.Active(PowerUpShield, 5000))
}

func TestReactivationRefreshes(t *testing.T) {
	ps := NewPowerUpState(config.DefaultRiverConfig().PowerUps)

	ps.Activate(PowerUpMagnet, 0, 8000)
	ps.Activate(PowerUpMagnet, 6000, 8000)

	assert.Equal(t, int64(8000), ps.Remaining(PowerUpMagnet, 6000))
	assert.Empty(t, ps.Expire(9000), "refreshed magnet must outlive the first timer")
	assert.True(t, ps.Active(PowerUpMagnet, 9000))
	assert.Equal(t, []PowerUpKind{PowerUpMagnet}, ps.Expire(14000))
}

func TestExpireRevertsEffects(t *testing.T) {
	cfg := config.DefaultRiverConfig().PowerUps
	ps := NewPowerUpState(cfg)

	ps.Activate(PowerUpMultiplier, 0, 1000)
	ps.Activate(PowerUpSlowMotion, 0, 2000)
	ps.Activate(PowerUpGhost, 0, 3000)

	assert.Equal(t, cfg.MultiplierValue, ps.ScoreMultiplier(500))
	assert.Equal(t, cfg.SlowMotionFactor, ps.WorldScale(500))

	assert.Equal(t, []PowerUpKind{PowerUpMultiplier}, ps.Expire(1000))
	assert.Equal(t, 1, ps.ScoreMultiplier(1000))

	assert.Equal(t, []PowerUpKind{PowerUpGhost, PowerUpSlowMotion}, ps.Expire(3000))
	assert.Equal(t, 1.0, ps.WorldScale(3000))
	assert.False(t, ps.Active(PowerUpGhost, 3000))
	assert.Empty(t, ps.ActiveKinds(3000))
}

func TestUntimedShieldNeverExpires(t *testing.T) {
	ps := NewPowerUpState(config.DefaultRiverConfig().PowerUps)
	ps.Activate(PowerUpShield, 0, 0)
	assert.Empty(t, ps.Expire(1_000_000))
	assert.True(t, ps.Active(PowerUpShield, 1_000_000))
}

func TestParsePowerUpKind(t *testing.T) {
	for _, k := range AllPowerUps {
		got, err := ParsePowerUpKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParsePowerUpKind("laser")
	assert.Error(t, err)
}
