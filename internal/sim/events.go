package sim

// EventKind identifies a Game State mutation reported by a system.
type EventKind uint8

const (
	EventScoreDelta EventKind = iota
	EventCoinCollected
	EventGemCollected
	EventHealthLost
	EventGameOver
	EventNearMiss
	EventPowerUpActivated
	EventPowerUpExpired
	EventShieldConsumed
)

func (k EventKind) String() string {
	switch k {
	case EventScoreDelta:
		return "scoreDelta"
	case EventCoinCollected:
		return "coinCollected"
	case EventGemCollected:
		return "gemCollected"
	case EventHealthLost:
		return "healthLost"
	case EventGameOver:
		return "gameOver"
	case EventNearMiss:
		return "nearMiss"
	case EventPowerUpActivated:
		return "powerUpActivated"
	case EventPowerUpExpired:
		return "powerUpExpired"
	case EventShieldConsumed:
		return "shieldConsumed"
	default:
		return "unknown"
	}
}

// Event is a discrete notification for the Game State sink.
//
// Amount carries the score of ScoreDelta, CoinCollected and GemCollected
// (already multiplied by the active score multiplier) and the bonus of
// NearMiss. Value is the raw pickup value of coins and gems.
type Event struct {
	Kind    EventKind
	Amount  int
	Value   int
	PowerUp PowerUpKind
	Entity  Entity
}

// CountEvents returns how many events of kind k are in events.
func CountEvents(events []Event, k EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
