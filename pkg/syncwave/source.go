// ABOUTME: Audio source abstraction for the transmitter
// ABOUTME: Provides the Source interface and a test tone implementation
package syncwave

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Source delivers live interleaved float32 samples to a callback on its
// own execution context. The default implementation monitors the default
// output device; tests and tooling substitute their own.
type Source interface {
	// SampleRate returns the source's native sample rate
	SampleRate() int

	// Channels returns the source's native channel count
	Channels() int

	// Start registers the sample callback and begins delivery. The
	// callback runs on the source's capture context and must not block.
	Start(onSamples func([]float32)) error

	// Close stops delivery and releases the source
	Close() error
}

// TestToneSource generates a 440Hz sine wave, for running the transmitter
// without an audio device and for deterministic tests.
type TestToneSource struct {
	sampleRate  int
	channels    int
	frequency   float64
	sampleIndex uint64

	stopChan chan struct{}
	stopOnce sync.Once
	started  bool
}

// NewTestTone creates a test tone source. Zero values default to 48kHz stereo.
func NewTestTone(sampleRate, channels int) *TestToneSource {
	if sampleRate == 0 {
		sampleRate = 48000
	}
	if channels == 0 {
		channels = 2
	}

	return &TestToneSource{
		sampleRate: sampleRate,
		channels:   channels,
		frequency:  440.0, // A4 note
		stopChan:   make(chan struct{}),
	}
}

func (s *TestToneSource) SampleRate() int { return s.sampleRate }
func (s *TestToneSource) Channels() int   { return s.channels }

// Start delivers 10ms chunks on a generator goroutine until Close
func (s *TestToneSource) Start(onSamples func([]float32)) error {
	if s.started {
		return fmt.Errorf("test tone source already started")
	}
	s.started = true

	chunkFrames := s.sampleRate / 100 // 10ms per delivery

	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				onSamples(s.generate(chunkFrames))
			case <-s.stopChan:
				return
			}
		}
	}()

	return nil
}

// generate produces one chunk of interleaved sine samples at 50% volume
func (s *TestToneSource) generate(frames int) []float32 {
	samples := make([]float32, frames*s.channels)
	for i := 0; i < frames; i++ {
		t := float64(s.sampleIndex) / float64(s.sampleRate)
		value := float32(0.5 * math.Sin(2*math.Pi*s.frequency*t))
		for ch := 0; ch < s.channels; ch++ {
			samples[i*s.channels+ch] = value
		}
		s.sampleIndex++
	}
	return samples
}

// Close stops the generator
func (s *TestToneSource) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	return nil
}
