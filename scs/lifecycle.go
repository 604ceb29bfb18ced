package scs

// tracker records every buffer bound while assembling a problem, so that
// a single release covers whatever subset was constructed at the point of
// failure. Each call to Solve owns exactly one tracker; it is released
// exactly once, either after result marshaling or on the first failure.
type tracker struct {
	names    []string
	released bool
}

func newTracker() *tracker {
	return &tracker{}
}

// acquire records a named buffer as live.
func (t *tracker) acquire(name string) {
	t.names = append(t.names, name)
}

// live returns the number of buffers currently held.
func (t *tracker) live() int {
	if t.released {
		return 0
	}
	return len(t.names)
}

// release drops every recorded buffer and returns how many were dropped.
// It is safe to call release multiple times; only the first call has any
// effect.
func (t *tracker) release() int {
	if t.released {
		return 0
	}
	t.released = true
	n := len(t.names)
	t.names = nil
	return n
}
