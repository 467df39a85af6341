// ABOUTME: Audio frame encoder package
// ABOUTME: Provides the FrameEncoder interface and the Opus implementation
// Package encode compresses fixed-size audio frames for transmission.
//
// The transmitter's compressed mode feeds 20ms frames from the frame
// accumulator through a FrameEncoder. Raw mode bypasses this package
// entirely and serializes samples directly.
//
// Example:
//
//	encoder, err := encode.NewOpus(48000, 2)
//	payload, err := encoder.Encode(frame)
package encode
