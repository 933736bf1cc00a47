package sim

import "github.com/vovakirdan/river-rush/internal/config"

// PowerUpState holds the power-ups active on the player.
//
// Timed kinds store an absolute expiry in until; zero means inactive.
// The shield is a boolean that a hit consumes. When its configured
// duration is positive it also expires on a timer.
type PowerUpState struct {
	shield     bool
	until      [numPowerUps]int64
	multiplier int
	slowFactor float64
}

// NewPowerUpState creates an empty state using cfg for effect strength.
func NewPowerUpState(cfg config.PowerUpConfig) *PowerUpState {
	p := &PowerUpState{
		multiplier: cfg.MultiplierValue,
		slowFactor: cfg.SlowMotionFactor,
	}
	if p.multiplier < 1 {
		p.multiplier = 1
	}
	if p.slowFactor <= 0 || p.slowFactor > 1 {
		p.slowFactor = 1
	}
	return p
}

// Reset clears every active power-up.
func (p *PowerUpState) Reset() {
	p.shield = false
	p.until = [numPowerUps]int64{}
}

// Activate turns kind on for durationMs starting at now. Reactivating
// an active kind refreshes its expiry instead of stacking.
func (p *PowerUpState) Activate(kind PowerUpKind, now, durationMs int64) {
	if kind >= numPowerUps {
		return
	}
	if kind == PowerUpShield {
		p.shield = true
		p.until[kind] = 0
		if durationMs > 0 {
			p.until[kind] = now + durationMs
		}
		return
	}
	if durationMs <= 0 {
		return
	}
	p.until[kind] = now + durationMs
}

// Deactivate turns kind off immediately.
func (p *PowerUpState) Deactivate(kind PowerUpKind) {
	if kind >= numPowerUps {
		return
	}
	if kind == PowerUpShield {
		p.shield = false
	}
	p.until[kind] = 0
}

// Active reports whether kind is in effect at now.
func (p *PowerUpState) Active(kind PowerUpKind, now int64) bool {
	if kind >= numPowerUps {
		return false
	}
	if kind == PowerUpShield {
		return p.shield && (p.until[kind] == 0 || now < p.until[kind])
	}
	return p.until[kind] > now
}

// Remaining returns the milliseconds left on kind, or 0 when inactive
// or untimed.
func (p *PowerUpState) Remaining(kind PowerUpKind, now int64) int64 {
	if !p.Active(kind, now) || p.until[kind] == 0 {
		return 0
	}
	return p.until[kind] - now
}

// ActiveKinds lists the kinds in effect at now.
func (p *PowerUpState) ActiveKinds(now int64) []PowerUpKind {
	var out []PowerUpKind
	for _, k := range AllPowerUps {
		if p.Active(k, now) {
			out = append(out, k)
		}
	}
	return out
}

// Expire deactivates every timed kind whose expiry has passed and
// returns them. It must be polled every tick.
func (p *PowerUpState) Expire(now int64) []PowerUpKind {
	var expired []PowerUpKind
	for _, k := range AllPowerUps {
		until := p.until[k]
		if until == 0 || now < until {
			continue
		}
		p.Deactivate(k)
		expired = append(expired, k)
	}
	return expired
}

// ConsumeShield uses up an active shield and reports whether one was there.
func (p *PowerUpState) ConsumeShield(now int64) bool {
	if !p.Active(PowerUpShield, now) {
		return false
	}
	p.Deactivate(PowerUpShield)
	return true
}

// ScoreMultiplier returns the pickup score multiplier at now.
func (p *PowerUpState) ScoreMultiplier(now int64) int {
	if p.Active(PowerUpMultiplier, now) {
		return p.multiplier
	}
	return 1
}

// WorldScale returns the slow-motion factor applied to the river at now.
func (p *PowerUpState) WorldScale(now int64) float64 {
	if p.Active(PowerUpSlowMotion, now) {
		return p.slowFactor
	}
	return 1
}
