// ABOUTME: Audio sample plumbing package
// ABOUTME: Frame timing, accumulation, serialization, and level metering
// Package audio provides the sample-level building blocks of the
// transmitter: frame timing constants, the accumulator that bridges
// variable-length capture deliveries to fixed-size codec frames, the
// little-endian float32 wire serialization used in raw mode, and RMS
// level metering for the status display.
package audio
