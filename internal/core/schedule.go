package core

import "time"

// Timer is a cancellable deadline. Nothing fires asynchronously: owners poll
// Expired with the current timestamp each tick.
type Timer struct {
	deadline time.Time
	armed    bool
}

// Arm starts or replaces the timer so it expires d after now.
func (t *Timer) Arm(now time.Time, d time.Duration) {
	t.deadline = now.Add(d)
	t.armed = true
}

// Cancel disarms the timer.
func (t *Timer) Cancel() {
	t.deadline = time.Time{}
	t.armed = false
}

// Armed reports whether the timer is pending.
func (t *Timer) Armed() bool {
	return t.armed
}

// Deadline returns the expiry time, or the zero time when disarmed.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Expired reports whether an armed timer has reached its deadline.
func (t *Timer) Expired(now time.Time) bool {
	return t.armed && !now.Before(t.deadline)
}

// Remaining returns the time left before expiry, never negative.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if !t.armed {
		return 0
	}
	if d := t.deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Loop tracks whether a tick loop is scheduled. Each Start hands out a new
// generation; a tick carrying any other generation is stale and must be dropped.
type Loop struct {
	gen     uint64
	running bool
}

// Start begins a new generation and returns its token.
func (l *Loop) Start() uint64 {
	l.gen++
	l.running = true
	return l.gen
}

// Stop cancels the current generation. Ticks already in flight become stale.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop is scheduled.
func (l *Loop) Running() bool {
	return l.running
}

// Generation returns the current generation token.
func (l *Loop) Generation() uint64 {
	return l.gen
}

// Accept reports whether a tick stamped with gen should run.
func (l *Loop) Accept(gen uint64) bool {
	return l.running && gen == l.gen
}
