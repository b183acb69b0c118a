// Package autosave coalesces rapid edits into a single delayed save: every
// new value re-arms the timer, and only the latest value when the timer
// fires is ever written. This is deliberately not a queue — intermediate
// values are discarded (last-write-wins).
package autosave

import (
	"sync"
	"time"
)

// DefaultDelay is the idle window before a pending value is saved.
const DefaultDelay = 2 * time.Second

// Options tune a Saver. Zero values get defaults.
type Options struct {
	Delay     time.Duration
	OnSuccess func()
	OnError   func(error)
}

// Saver debounces writes of T. The scheduled save is an owned, cancellable
// handle: arming a new one always stops the prior timer, and Stop guarantees
// no save fires after teardown.
type Saver[T any] struct {
	save func(T) error
	opts Options

	mu        sync.Mutex
	timer     *time.Timer
	pending   T
	saving    bool
	stopped   bool
	lastSaved time.Time
	lastErr   error
}

// New builds a Saver around the given save function.
func New[T any](save func(T) error, opts Options) *Saver[T] {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	return &Saver[T]{save: save, opts: opts}
}

// Set records v as the value to save and restarts the idle window. If the
// owner keeps calling Set, nothing is written until the calls stop for the
// configured delay.
func (s *Saver[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.pending = v
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.Delay, s.fire)
}

// Stop cancels any pending save. The Saver is unusable afterward; a save
// must never fire against an owner that no longer exists.
func (s *Saver[T]) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// IsSaving reports whether a save is currently in flight.
func (s *Saver[T]) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// LastSaved is the completion time of the most recent successful save, or
// the zero time if none has succeeded.
func (s *Saver[T]) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// Err is the error from the most recent save attempt, cleared when a later
// save starts.
func (s *Saver[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Saver[T]) fire() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	v := s.pending
	s.saving = true
	s.lastErr = nil
	s.mu.Unlock()

	err := s.save(v)

	s.mu.Lock()
	s.saving = false
	if err != nil {
		s.lastErr = err
	} else {
		s.lastSaved = time.Now()
	}
	s.mu.Unlock()

	if err != nil {
		if s.opts.OnError != nil {
			s.opts.OnError(err)
		}
		return
	}
	if s.opts.OnSuccess != nil {
		s.opts.OnSuccess()
	}
}
