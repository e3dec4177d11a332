package session

// EventKind identifies what happened inside a mutating call.
type EventKind int

const (
	// EventLocked fires every time a piece is locked, with Rows set to the
	// rows that lock cleared.
	EventLocked EventKind = iota
	// EventCleared fires after EventLocked when at least one row was cleared.
	EventCleared
	// EventGameOver fires once when a new piece cannot be placed.
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventLocked:
		return "Locked"
	case EventCleared:
		return "Cleared"
	case EventGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Event is delivered to listeners registered with WithListener.
type Event struct {
	Kind  EventKind
	Rows  int
	Score int
}
