// Package clock provides the monotonic millisecond clock that drives session
// timers, plus a manually advanced clock for simulations and tests.
package clock

import "time"

// Clock reports milliseconds on a monotonic timeline.
type Clock interface {
	NowMillis() int64
}

// Monotonic measures milliseconds elapsed since it was created
type Monotonic struct {
	origin time.Time
}

// NewMonotonic creates a clock whose zero is the current instant
func NewMonotonic() *Monotonic {
	return &Monotonic{origin: time.Now()}
}

// NowMillis returns milliseconds since the clock was created
func (m *Monotonic) NowMillis() int64 {
	return time.Since(m.origin).Milliseconds()
}

// Manual is a clock that only moves when told to
type Manual struct {
	now int64
}

// NewManual creates a manual clock starting at the given millisecond
func NewManual(start int64) *Manual {
	return &Manual{now: start}
}

// NowMillis returns the current manual time
func (m *Manual) NowMillis() int64 {
	return m.now
}

// Advance moves the clock forward by ms milliseconds
func (m *Manual) Advance(ms int64) {
	m.now += ms
}

// Set jumps the clock to an absolute millisecond value
func (m *Manual) Set(ms int64) {
	m.now = ms
}
