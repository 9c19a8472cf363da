package event

// Type identifies a game event surfaced to collaborators
type Type int

const (
	EventRoundStarted Type = iota
	EventChaserSpawned
	EventChaserCaught
	EventChaserEscaped
	EventTimeWarning
	EventGameOver
)

func (t Type) String() string {
	switch t {
	case EventRoundStarted:
		return "round_started"
	case EventChaserSpawned:
		return "chaser_spawned"
	case EventChaserCaught:
		return "chaser_caught"
	case EventChaserEscaped:
		return "chaser_escaped"
	case EventTimeWarning:
		return "time_warning"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event carries the type plus the affected chaser ID (0 when the event
// is not about a specific chaser)
type Event struct {
	Type     Type
	ChaserID int
}

// Queue is a FIFO drained once per frame by the single consumer.
// The round is tick-driven with no cross-goroutine producers, so a
// plain slice is enough; Drain hands off the backing array and resets.
type Queue struct {
	pending []Event
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{pending: make([]Event, 0, 16)}
}

// Push appends an event
func (q *Queue) Push(ev Event) {
	q.pending = append(q.pending, ev)
}

// Drain returns all pending events in FIFO order and clears the queue.
// Returns nil when empty.
func (q *Queue) Drain() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of undrained events
func (q *Queue) Len() int {
	return len(q.pending)
}
