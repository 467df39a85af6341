// ABOUTME: Opus frame encoder
// ABOUTME: Wraps libopus to compress float32 frames for transmission
package encode

import (
	"fmt"
	"log"

	"github.com/syncwave-audio/syncwave-go/pkg/audio"
	"gopkg.in/hraban/opus.v2"
)

// MaxEncodedSize is a safe upper bound for one encoded 20ms frame.
// Opus recommends 4000 bytes; real frames at streaming bitrates are far smaller.
const MaxEncodedSize = 4000

// opusSampleRates are the sample rates libopus accepts
var opusSampleRates = map[int]bool{
	8000:  true,
	12000: true,
	16000: true,
	24000: true,
	48000: true,
}

// OpusEncoder compresses fixed-size float32 frames with Opus
type OpusEncoder struct {
	encoder         *opus.Encoder
	sampleRate      int
	channels        int
	samplesPerFrame int
}

// NewOpus creates an Opus frame encoder for the given stream format.
// The format must be validated here, before any capture callback runs:
// Opus only accepts a fixed set of sample rates and mono or stereo.
func NewOpus(sampleRate, channels int) (*OpusEncoder, error) {
	if !opusSampleRates[sampleRate] {
		return nil, fmt.Errorf("sample rate %d not supported by opus (supported: 8000, 12000, 16000, 24000, 48000)", sampleRate)
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("channel count %d not supported by opus (supported: 1, 2)", channels)
	}

	encoder, err := opus.NewEncoder(sampleRate, channels, opus.AppAudio)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus encoder: %w", err)
	}

	// 64 kbps per channel is a sane default for music
	if err := encoder.SetBitrate(64000 * channels); err != nil {
		log.Printf("Warning: failed to set opus bitrate: %v", err)
	}

	return &OpusEncoder{
		encoder:         encoder,
		sampleRate:      sampleRate,
		channels:        channels,
		samplesPerFrame: audio.SamplesPerFrame(sampleRate, channels),
	}, nil
}

// Encode compresses one frame of interleaved float32 samples
func (e *OpusEncoder) Encode(frame []float32) ([]byte, error) {
	if len(frame) != e.samplesPerFrame {
		return nil, fmt.Errorf("frame size %d, encoder expects %d", len(frame), e.samplesPerFrame)
	}

	data := make([]byte, MaxEncodedSize)
	n, err := e.encoder.EncodeFloat32(frame, data)
	if err != nil {
		return nil, fmt.Errorf("opus encode error: %w", err)
	}

	return data[:n], nil
}

// SamplesPerFrame returns the interleaved sample count of one encode frame
func (e *OpusEncoder) SamplesPerFrame() int {
	return e.samplesPerFrame
}

// Close releases resources. libopus encoders are garbage collected, so
// there is nothing to free explicitly.
func (e *OpusEncoder) Close() error {
	return nil
}
