// ABOUTME: Audio type definitions and sample serialization
// ABOUTME: Defines frame timing constants and float32 wire conversion
package audio

import (
	"encoding/binary"
	"math"
)

const (
	// FrameDurationMs is the duration of one encode frame. Opus supports
	// 2.5 to 60ms; 20ms is the streaming default.
	FrameDurationMs = 20

	// BytesPerSample is the wire size of one float32 sample
	BytesPerSample = 4
)

// SamplesPerFrame returns the interleaved sample count of one encode frame
// for the given stream format.
func SamplesPerFrame(sampleRate, channels int) int {
	return sampleRate * FrameDurationMs / 1000 * channels
}

// Float32sToBytes serializes samples as little-endian float32 bytes.
// This is the raw-mode payload layout.
func Float32sToBytes(samples []float32) []byte {
	buf := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*BytesPerSample:], math.Float32bits(s))
	}
	return buf
}

// Float32sFromBytes deserializes little-endian float32 bytes into samples.
// Trailing bytes that do not form a full sample are ignored.
func Float32sFromBytes(data []byte) []float32 {
	samples := make([]float32, len(data)/BytesPerSample)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*BytesPerSample:]))
	}
	return samples
}
