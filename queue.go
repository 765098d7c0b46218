package easel

// eventQueue is an unbounded FIFO of events. Push appends at the tail, Pop
// removes from the head. Popped slots are cleared so the queue never keeps a
// consumed event alive, and the backing array is compacted once the dead
// prefix outgrows the live part.
type eventQueue struct {
	events []Event
	head   int
}

func (q *eventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Pop returns the oldest event, or nil when the queue is empty.
func (q *eventQueue) Pop() Event {
	if q.head == len(q.events) {
		return nil
	}
	ev := q.events[q.head]
	q.events[q.head] = nil
	q.head++

	switch {
	case q.head == len(q.events):
		q.events = q.events[:0]
		q.head = 0
	case q.head > 32 && q.head*2 > len(q.events):
		n := copy(q.events, q.events[q.head:])
		clear(q.events[n:])
		q.events = q.events[:n]
		q.head = 0
	}
	return ev
}

func (q *eventQueue) Len() int {
	return len(q.events) - q.head
}

// Clear drops all pending events.
func (q *eventQueue) Clear() {
	clear(q.events)
	q.events = q.events[:0]
	q.head = 0
}
