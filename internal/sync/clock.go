// ABOUTME: Timestamp source for outgoing packets
// ABOUTME: Provides epoch microseconds and a monotonic session clock
package sync

import "time"

// Micros returns the current Unix epoch time in microseconds. Every data
// packet is stamped with this clock so receivers can measure end-to-end
// latency against their own wall clock.
func Micros() int64 {
	return time.Now().UnixMicro()
}

// SessionClock measures elapsed time since session start on the monotonic
// clock, for uptime reporting.
type SessionClock struct {
	start time.Time
}

// NewSessionClock starts a session clock at the current instant
func NewSessionClock() *SessionClock {
	return &SessionClock{start: time.Now()}
}

// ElapsedMicros returns microseconds since the clock was started
func (c *SessionClock) ElapsedMicros() int64 {
	return time.Since(c.start).Microseconds()
}

// Elapsed returns the duration since the clock was started
func (c *SessionClock) Elapsed() time.Duration {
	return time.Since(c.start)
}
