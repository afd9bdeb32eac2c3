package testfixtures

import "sync"

// Recorder counts business metric events in memory.
type Recorder struct {
	mu           sync.Mutex
	Created      map[string]int // key: priority, "+override" suffix for overrides
	Conflicts    map[string]int
	Transitions  map[string]int
	AutoReleased int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Created:     make(map[string]int),
		Conflicts:   make(map[string]int),
		Transitions: make(map[string]int),
	}
}

func (r *Recorder) RecordReservationCreated(priority string, override bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if override {
		priority += "+override"
	}
	r.Created[priority]++
}

func (r *Recorder) RecordConflict(conflictType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Conflicts[conflictType]++
}

func (r *Recorder) RecordTransition(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Transitions[status]++
}

func (r *Recorder) RecordAutoReleased(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.AutoReleased += count
}
