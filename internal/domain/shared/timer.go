package shared

import "fmt"

// Timer is a stoppable countdown measured in simulated seconds.
//
// Progress and Cooldown are 0 while the timer is stopped. A negative dt passed
// to Timeout raises the remaining time and is never clamped to the duration.
type Timer struct {
	duration  float64
	remaining float64
	started   bool
}

// NewTimer creates a stopped timer
func NewTimer(duration float64) *Timer {
	return &Timer{duration: duration}
}

// Duration returns the configured duration
func (t *Timer) Duration() float64 {
	return t.duration
}

// SetDuration changes the duration without touching the remaining time
func (t *Timer) SetDuration(duration float64) {
	t.duration = duration
}

// Remaining returns the time left before the timer ends
func (t *Timer) Remaining() float64 {
	return t.remaining
}

// IsStarted reports whether the timer is armed
func (t *Timer) IsStarted() bool {
	return t.started
}

// Elapsed returns duration minus remaining
func (t *Timer) Elapsed() float64 {
	return t.duration - t.remaining
}

// Progress returns the completed fraction in [0,1]
func (t *Timer) Progress() float64 {
	if !t.started || t.duration == 0 {
		return 0
	}
	return Clamp01(1 - t.remaining/t.duration)
}

// Cooldown returns the remaining fraction in [0,1]
func (t *Timer) Cooldown() float64 {
	if !t.started || t.duration == 0 {
		return 0
	}
	return Clamp01(t.remaining / t.duration)
}

// Start arms the timer with a full duration
func (t *Timer) Start() {
	t.remaining = t.duration
	t.started = true
}

// Stop disarms the timer and zeroes the remaining time
func (t *Timer) Stop() {
	t.remaining = 0
	t.started = false
}

// Timeout advances the timer by dt and reports whether it ended on this call.
// A looping timer re-arms by adding its duration; otherwise it stops.
func (t *Timer) Timeout(dt float64, looping bool) bool {
	if !t.started {
		return false
	}

	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}

	if looping {
		t.remaining += t.duration
	} else {
		t.Stop()
	}
	return true
}

func (t *Timer) String() string {
	return fmt.Sprintf("Timer(%.2f/%.2f started=%t)", t.remaining, t.duration, t.started)
}

// Clamp01 limits v to [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
