package river

import (
	"github.com/vovakirdan/river-rush/internal/config"
	"github.com/vovakirdan/river-rush/internal/sim"
)

// Status is the lifecycle state of a run.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameOver"
	default:
		return "playing"
	}
}

// GameState is the score sink of a run. Systems report events and Apply
// is the only place score, pickups, lives and status change.
type GameState struct {
	Score      int
	Distance   float64
	Coins      int
	Gems       int
	Combo      int
	MaxCombo   int
	NearMisses int
	Lives      int
	Status     Status
	Mode       sim.Mode
	ElapsedMs  int64

	ShieldsUsed int
	PowerUps    int             // power-ups picked up
	LastPowerUp sim.PowerUpKind // most recent activation, for the HUD

	scoring      config.ScoringConfig
	timeLimitMs  int64
	lastPickupAt int64
	meters       int // whole meters already credited
}

// NewGameState creates the state of a fresh run.
func NewGameState(mode sim.Mode, lives int, scoring config.ScoringConfig, timeLimitMs int64) *GameState {
	s := &GameState{
		Lives:   lives,
		Mode:    mode,
		scoring: scoring,
	}
	if mode.TimeLimited() {
		s.timeLimitMs = timeLimitMs
	}
	return s
}

// Playing reports whether the run is neither paused nor over.
func (s *GameState) Playing() bool {
	return s.Status == StatusPlaying
}

// Over reports whether the run has ended.
func (s *GameState) Over() bool {
	return s.Status == StatusGameOver
}

// TogglePause flips between playing and paused. A finished run stays over.
func (s *GameState) TogglePause() {
	switch s.Status {
	case StatusPlaying:
		s.Status = StatusPaused
	case StatusPaused:
		s.Status = StatusPlaying
	}
}

// ComboMultiplier is the pickup multiplier for the current combo.
func (s *GameState) ComboMultiplier() int {
	if s.scoring.ComboStep <= 0 {
		return 1
	}
	return 1 + s.Combo/s.scoring.ComboStep
}

// TimeLeftMs returns the remaining time of a time-limited run, or -1.
func (s *GameState) TimeLeftMs() int64 {
	if s.timeLimitMs <= 0 {
		return -1
	}
	return max(s.timeLimitMs-s.ElapsedMs, 0)
}

// ComboLeftMs returns how long the current combo survives without a pickup.
func (s *GameState) ComboLeftMs() int64 {
	if s.Combo == 0 {
		return 0
	}
	return max(s.lastPickupAt+s.scoring.ComboTimeoutMs-s.ElapsedMs, 0)
}

// Tick advances the run clock to now and the distance by meters. It
// expires a stale combo and returns the distance score and, for timed
// modes, the final GameOver for the caller to Apply.
func (s *GameState) Tick(now int64, meters float64) []sim.Event {
	if s.Over() {
		return nil
	}
	s.ElapsedMs = now
	if s.Combo > 0 && now-s.lastPickupAt >= s.scoring.ComboTimeoutMs {
		s.Combo = 0
	}

	var events []sim.Event
	s.Distance += meters
	if whole := int(s.Distance); whole > s.meters {
		events = append(events, sim.Event{
			Kind:   sim.EventScoreDelta,
			Amount: (whole - s.meters) * s.scoring.PointsPerMeter,
		})
		s.meters = whole
	}
	if s.timeLimitMs > 0 && now >= s.timeLimitMs {
		events = append(events, sim.Event{Kind: sim.EventGameOver})
	}
	return events
}

// Apply folds one event into the state. Call Tick for the current time
// first. Events arriving after game over are ignored.
func (s *GameState) Apply(ev sim.Event) {
	if s.Over() {
		return
	}
	switch ev.Kind {
	case sim.EventScoreDelta:
		s.Score += ev.Amount
	case sim.EventCoinCollected:
		s.Coins += ev.Value
		s.pickup(ev.Amount)
	case sim.EventGemCollected:
		s.Gems += ev.Value
		s.pickup(ev.Amount)
	case sim.EventNearMiss:
		s.Score += ev.Amount
		s.NearMisses++
	case sim.EventHealthLost:
		s.Lives = max(s.Lives-1, 0)
		s.Combo = 0
	case sim.EventShieldConsumed:
		s.ShieldsUsed++
	case sim.EventPowerUpActivated:
		s.PowerUps++
		s.LastPowerUp = ev.PowerUp
	case sim.EventPowerUpExpired:
	case sim.EventGameOver:
		s.Status = StatusGameOver
	}
}

func (s *GameState) pickup(amount int) {
	s.Combo++
	s.MaxCombo = max(s.MaxCombo, s.Combo)
	s.lastPickupAt = s.ElapsedMs
	s.Score += amount * s.ComboMultiplier()
}
