// ABOUTME: Tests for the packet timestamp source
// ABOUTME: Verifies monotonic behavior and microsecond scale
package sync

import (
	"testing"
	"time"
)

func TestMicrosAdvances(t *testing.T) {
	first := Micros()
	time.Sleep(2 * time.Millisecond)
	second := Micros()

	if second <= first {
		t.Errorf("expected time to advance: first=%d second=%d", first, second)
	}
	if second-first < 1000 {
		t.Errorf("expected at least 1000µs elapsed, got %d", second-first)
	}
}

func TestMicrosIsEpochScale(t *testing.T) {
	now := Micros()
	wallMicros := time.Now().UnixMicro()

	diff := wallMicros - now
	if diff < 0 {
		diff = -diff
	}
	if diff > int64(time.Second/time.Microsecond) {
		t.Errorf("Micros deviates from wall clock by %dµs", diff)
	}
}

func TestSessionClockElapsed(t *testing.T) {
	clock := NewSessionClock()
	time.Sleep(2 * time.Millisecond)

	elapsed := clock.ElapsedMicros()
	if elapsed < 1000 {
		t.Errorf("expected at least 1000µs elapsed, got %d", elapsed)
	}
	if clock.Elapsed() <= 0 {
		t.Error("expected positive elapsed duration")
	}
}
