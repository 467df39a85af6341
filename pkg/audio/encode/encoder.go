// ABOUTME: Frame encoder interface definition
// ABOUTME: Common interface for compressors fed by the frame accumulator
package encode

// FrameEncoder compresses one fixed-size frame of interleaved float32
// samples into a wire payload.
type FrameEncoder interface {
	// Encode compresses one frame. The frame length must match the size
	// the encoder was constructed for.
	Encode(frame []float32) ([]byte, error)

	// SamplesPerFrame returns the exact interleaved sample count Encode expects
	SamplesPerFrame() int

	// Close releases encoder resources
	Close() error
}
