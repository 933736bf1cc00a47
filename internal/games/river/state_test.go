package river

import (
	"testing"

	"github.com/vovakirdan/river-rush/internal/config"
	"github.com/vovakirdan/river-rush/internal/sim"
)

func newTestState(mode sim.Mode) *GameState {
	cfg := config.DefaultRiverConfig()
	return NewGameState(mode, 3, cfg.Scoring, cfg.Modes.TimeTrialMs)
}

func coin(amount int) sim.Event {
	return sim.Event{Kind: sim.EventCoinCollected, Value: 1, Amount: amount}
}

func TestComboMultiplier(t *testing.T) {
	s := newTestState(sim.ModeClassic)
	s.Tick(0, 0)

	for i := 0; i < 10; i++ {
		s.Apply(coin(10))
	}

	// Pickups 1..9 score x1, the tenth reaches combo 10 and scores x2.
	if s.Score != 110 {
		t.Errorf("Score = %d, expected 110", s.Score)
	}
	if s.Coins != 10 || s.Combo != 10 || s.MaxCombo != 10 {
		t.Errorf("Coins/Combo/MaxCombo = %d/%d/%d, expected 10/10/10", s.Coins, s.Combo, s.MaxCombo)
	}
	if s.ComboMultiplier() != 2 {
		t.Errorf("ComboMultiplier() = %d, expected 2", s.ComboMultiplier())
	}

	s.Apply(sim.Event{Kind: sim.EventGemCollected, Value: 2, Amount: 100})
	if s.Gems != 2 || s.Score != 310 {
		t.Errorf("after gem, Gems = %d Score = %d, expected 2 and 310", s.Gems, s.Score)
	}
}

func TestComboTimeout(t *testing.T) {
	s := newTestState(sim.ModeClassic)
	s.Tick(0, 0)
	s.Apply(coin(10))

	s.Tick(1999, 0)
	if s.Combo != 1 {
		t.Errorf("Combo = %d before timeout, expected 1", s.Combo)
	}
	if s.ComboLeftMs() != 1 {
		t.Errorf("ComboLeftMs() = %d, expected 1", s.ComboLeftMs())
	}

	s.Tick(2000, 0)
	if s.Combo != 0 {
		t.Errorf("Combo = %d after timeout, expected 0", s.Combo)
	}
	if s.MaxCombo != 1 {
		t.Errorf("MaxCombo = %d, expected 1", s.MaxCombo)
	}
}

func TestHealthLostResetsCombo(t *testing.T) {
	s := newTestState(sim.ModeClassic)
	s.Apply(coin(10))
	s.Apply(coin(10))
	s.Apply(sim.Event{Kind: sim.EventHealthLost})

	if s.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Lives)
	}
	if s.Combo != 0 {
		t.Errorf("Combo = %d, expected 0", s.Combo)
	}
}

func TestGameOverAppliedOnce(t *testing.T) {
	s := newTestState(sim.ModeClassic)
	s.Apply(sim.Event{Kind: sim.EventGameOver})
	if !s.Over() {
		t.Fatal("Over() = false after GameOver")
	}

	s.Apply(coin(10))
	s.Apply(sim.Event{Kind: sim.EventGameOver})
	if s.Score != 0 || s.Coins != 0 {
		t.Errorf("events after game over changed the state: score %d coins %d", s.Score, s.Coins)
	}
	if events := s.Tick(5000, 10); events != nil {
		t.Errorf("Tick() after game over = %v, expected nil", events)
	}

	s.TogglePause()
	if s.Status != StatusGameOver {
		t.Errorf("TogglePause() changed a finished run to %v", s.Status)
	}
}

func TestDistanceScoring(t *testing.T) {
	tests := []struct {
		now      int64
		meters   float64
		expected int // ScoreDelta amount, 0 for none
	}{
		{16, 0.4, 0},
		{32, 0.7, 1},
		{48, 2.0, 2},
		{64, 0.5, 0},
	}

	s := newTestState(sim.ModeClassic)
	for _, tc := range tests {
		events := s.Tick(tc.now, tc.meters)
		got := 0
		for _, ev := range events {
			if ev.Kind == sim.EventScoreDelta {
				got += ev.Amount
			}
			s.Apply(ev)
		}
		if got != tc.expected {
			t.Errorf("Tick(%d, %v) distance score = %d, expected %d", tc.now, tc.meters, got, tc.expected)
		}
	}
	if s.Score != 3 {
		t.Errorf("Score = %d, expected 3", s.Score)
	}
}

func TestNearMissAndPowerUpRecords(t *testing.T) {
	s := newTestState(sim.ModeClassic)
	s.Apply(sim.Event{Kind: sim.EventNearMiss, Amount: 50})
	s.Apply(sim.Event{Kind: sim.EventPowerUpActivated, PowerUp: sim.PowerUpMagnet})
	s.Apply(sim.Event{Kind: sim.EventShieldConsumed})

	if s.Score != 50 || s.NearMisses != 1 {
		t.Errorf("Score/NearMisses = %d/%d, expected 50/1", s.Score, s.NearMisses)
	}
	if s.PowerUps != 1 || s.LastPowerUp != sim.PowerUpMagnet {
		t.Errorf("PowerUps = %d LastPowerUp = %v", s.PowerUps, s.LastPowerUp)
	}
	if s.ShieldsUsed != 1 || s.Lives != 3 {
		t.Errorf("ShieldsUsed = %d Lives = %d, expected 1 and 3", s.ShieldsUsed, s.Lives)
	}
}

func TestTimeTrialLimit(t *testing.T) {
	s := newTestState(sim.ModeTimeTrial)

	for _, ev := range s.Tick(59999, 0) {
		if ev.Kind == sim.EventGameOver {
			t.Fatal("time trial ended early")
		}
	}
	if s.TimeLeftMs() != 1 {
		t.Errorf("TimeLeftMs() = %d, expected 1", s.TimeLeftMs())
	}

	events := s.Tick(60000, 0)
	if sim.CountEvents(events, sim.EventGameOver) != 1 {
		t.Fatalf("Tick(60000) events = %v, expected one GameOver", events)
	}
	for _, ev := range events {
		s.Apply(ev)
	}
	if !s.Over() || s.TimeLeftMs() != 0 {
		t.Errorf("Over() = %v TimeLeftMs() = %d, expected true and 0", s.Over(), s.TimeLeftMs())
	}

	if classic := newTestState(sim.ModeClassic); classic.TimeLeftMs() != -1 {
		t.Errorf("classic TimeLeftMs() = %d, expected -1", classic.TimeLeftMs())
	}
}

func TestTogglePause(t *testing.T) {
	s := newTestState(sim.ModeZen)
	s.TogglePause()
	if s.Status != StatusPaused || s.Playing() {
		t.Errorf("Status = %v, expected paused", s.Status)
	}
	s.TogglePause()
	if !s.Playing() {
		t.Errorf("Status = %v, expected playing", s.Status)
	}
}
