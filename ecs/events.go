package ecs

// EventType identifies game events pushed during a frame.
type EventType string

const (
	EventPieceSpawned EventType = "piece_spawned"
	EventPieceSettled EventType = "piece_settled"
	EventRowsCleared  EventType = "rows_cleared"
	EventToppedOut    EventType = "topped_out"
)

// Event is a frame-scoped game event. Events are visible to systems that run
// later in the same frame and are discarded when the frame ends.
type Event struct {
	Type EventType
	Data any
}

// RowsClearedData reports which rows were cleared and how many blocks died.
type RowsClearedData struct {
	Rows   []int
	Blocks int
}

// EventQueue is a simple per-frame FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the events pushed so far this frame without consuming them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
