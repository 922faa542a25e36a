package clock

import "time"

// Timer fires at a fixed interval driven by externally supplied frame time.
type Timer struct {
	interval    time.Duration
	accumulator time.Duration
}

// NewTimer constructs a Timer that fires every interval.
func NewTimer(interval time.Duration) *Timer {
	t := &Timer{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the firing interval. Non-positive values fire every frame.
func (t *Timer) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	t.interval = interval
}

// Interval returns the firing interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Tick adds elapsed to the accumulator and reports whether the timer fired.
// It fires at most once per call; time beyond one interval is dropped.
func (t *Timer) Tick(elapsed time.Duration) bool {
	if elapsed > 0 {
		t.accumulator += elapsed
	}
	if t.accumulator < t.interval {
		return false
	}
	if t.interval > 0 {
		t.accumulator %= t.interval
	} else {
		t.accumulator = 0
	}
	return true
}

// Reset clears the accumulated time.
func (t *Timer) Reset() {
	t.accumulator = 0
}
