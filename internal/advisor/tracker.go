package advisor

import "sync"

// Tracker guards one call site so that only a single advisory request is in
// flight, and tells a late result apart from the current one.
type Tracker struct {
	mu         sync.Mutex
	inFlight   bool
	generation uint64
}

// Begin claims the slot and returns the ticket for the new request. It
// returns false while a previous request is still outstanding.
func (t *Tracker) Begin() (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inFlight {
		return 0, false
	}
	t.inFlight = true
	t.generation++
	return t.generation, true
}

// Resolve releases the slot for gen and reports whether its result should
// be shown. A ticket from an abandoned request resolves as stale.
func (t *Tracker) Resolve(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return false
	}
	t.inFlight = false
	return true
}

// Abandon drops the outstanding request, if any. Its eventual Resolve
// reports stale and the slot is free immediately.
func (t *Tracker) Abandon() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inFlight {
		t.inFlight = false
		t.generation++
	}
}

// Busy reports whether a request is outstanding.
func (t *Tracker) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight
}
