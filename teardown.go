package vkboot

// teardownStack collects release actions as resources are created. Each
// creation step registers its release immediately after succeeding, so a
// failure anywhere in the sequence can unwind exactly the prefix that was
// built, in reverse-creation order. Not safe for concurrent use; the
// bootstrap is single-threaded.
type teardownStack struct {
	entries []teardownEntry
}

type teardownEntry struct {
	name    string
	release func()
}

func (s *teardownStack) push(name string, release func()) {
	s.entries = append(s.entries, teardownEntry{name: name, release: release})
}

func (s *teardownStack) depth() int {
	return len(s.entries)
}

// unwind runs every registered release in reverse push order and empties
// the stack. It returns the names in the order they were released. A
// second unwind is a no-op.
func (s *teardownStack) unwind() []string {
	released := make([]string, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		s.entries[i].release()
		released = append(released, s.entries[i].name)
	}
	s.entries = nil
	return released
}
