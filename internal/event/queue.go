package event

// Queue collects the events produced during one tick. Systems push,
// the game folds them into score and base state and then flushes them
// to the dispatcher.
type Queue struct {
	events []Event
}

func (q *Queue) Push(t EventType, data interface{}) {
	q.events = append(q.events, Event{Type: t, Data: data})
}

func (q *Queue) Len() int {
	return len(q.events)
}

// At returns the i-th event. Events pushed while iterating by index
// are visited too.
func (q *Queue) At(i int) Event {
	return q.events[i]
}

// Count returns how many queued events have type t.
func (q *Queue) Count(t EventType) int {
	n := 0
	for _, e := range q.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (q *Queue) Reset() {
	q.events = q.events[:0]
}
