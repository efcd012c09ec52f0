package observability

import (
	"context"
	"slices"
	"sync"
)

// Recorder keeps every event in memory. Tests use it to assert on the
// diagnostics a component produced.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnEvent(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Count returns how many events of the given type were recorded.
func (r *Recorder) Count(typ EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
