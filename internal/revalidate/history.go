package revalidate

import "sync"

// History keeps the most recent audit events in a fixed-size ring.
type History struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
}

// NewHistory returns a History holding up to size events. Sizes below 1 hold one.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{events: make([]Event, size)}
}

// Record stores ev, evicting the oldest event once full. Pass it to Revalidator.OnEvent.
func (h *History) Record(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events[h.next] = ev
	h.next = (h.next + 1) % len(h.events)
	if h.next == 0 {
		h.full = true
	}
}

// Recent returns the stored events, newest first.
func (h *History) Recent() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := h.next
	if h.full {
		n = len(h.events)
	}
	out := make([]Event, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, h.events[(h.next-i+len(h.events))%len(h.events)])
	}
	return out
}
