package round

// State is the round lifecycle state.
type State int

const (
	Init State = iota
	Playing
	GameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Init:
		return "Init"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Reason says why a round ended.
type Reason int

const (
	ReasonGap     Reason = iota + 1 // Landed on a None tile
	ReasonOffRoad                   // Landed at or past the road end
	ReasonTimeout                   // No jump started in time
)

// String returns a short machine-friendly name, used for storage.
func (r Reason) String() string {
	switch r {
	case ReasonGap:
		return "gap"
	case ReasonOffRoad:
		return "off_road"
	case ReasonTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Outcome describes a finished round.
type Outcome struct {
	Round      int    // 1-based round number since the machine was created
	Steps      int    // Steps reached before the round ended
	Reason     Reason // Why it ended
	RoadLength int
}
