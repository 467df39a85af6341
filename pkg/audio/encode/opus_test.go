// ABOUTME: Tests for the Opus frame encoder
// ABOUTME: Tests format validation, encoding, and output size bounds
package encode

import (
	"math"
	"testing"

	"github.com/syncwave-audio/syncwave-go/pkg/audio"
)

func TestNewOpusSupportedFormat(t *testing.T) {
	encoder, err := NewOpus(48000, 2)
	if err != nil {
		t.Fatalf("failed to create encoder: %v", err)
	}
	defer encoder.Close()

	if encoder.SamplesPerFrame() != 1920 {
		t.Errorf("expected 1920 samples per frame, got %d", encoder.SamplesPerFrame())
	}
}

func TestNewOpusAllSupportedRates(t *testing.T) {
	for _, rate := range []int{8000, 12000, 16000, 24000, 48000} {
		for _, channels := range []int{1, 2} {
			encoder, err := NewOpus(rate, channels)
			if err != nil {
				t.Errorf("NewOpus(%d, %d) failed: %v", rate, channels, err)
				continue
			}
			encoder.Close()
		}
	}
}

func TestNewOpusRejectsUnsupportedRate(t *testing.T) {
	if _, err := NewOpus(44100, 2); err == nil {
		t.Fatal("expected error for sample rate 44100")
	}
}

func TestNewOpusRejectsUnsupportedChannels(t *testing.T) {
	if _, err := NewOpus(48000, 3); err == nil {
		t.Fatal("expected error for 3 channels")
	}
}

func TestOpusEncodeFrame(t *testing.T) {
	encoder, err := NewOpus(48000, 2)
	if err != nil {
		t.Fatalf("failed to create encoder: %v", err)
	}
	defer encoder.Close()

	// 440Hz sine, 20ms stereo frame
	frame := make([]float32, encoder.SamplesPerFrame())
	for i := 0; i < len(frame); i += 2 {
		s := float32(0.5 * math.Sin(2*math.Pi*440*float64(i/2)/48000))
		frame[i] = s
		frame[i+1] = s
	}

	payload, err := encoder.Encode(frame)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(payload) == 0 {
		t.Error("expected non-empty payload")
	}
	if len(payload) > MaxEncodedSize {
		t.Errorf("payload %d bytes exceeds bound %d", len(payload), MaxEncodedSize)
	}
}

func TestOpusEncodeRejectsWrongFrameSize(t *testing.T) {
	encoder, err := NewOpus(48000, 2)
	if err != nil {
		t.Fatalf("failed to create encoder: %v", err)
	}
	defer encoder.Close()

	if _, err := encoder.Encode(make([]float32, 100)); err == nil {
		t.Fatal("expected error for wrong frame size")
	}
}

func TestOpusFrameSizesMatchAccumulator(t *testing.T) {
	// The encoder and accumulator must agree on frame sizing for every
	// supported format.
	for _, rate := range []int{8000, 12000, 16000, 24000, 48000} {
		for _, channels := range []int{1, 2} {
			encoder, err := NewOpus(rate, channels)
			if err != nil {
				t.Fatalf("NewOpus(%d, %d) failed: %v", rate, channels, err)
			}
			if encoder.SamplesPerFrame() != audio.SamplesPerFrame(rate, channels) {
				t.Errorf("rate %d ch %d: encoder frame %d != accumulator frame %d",
					rate, channels, encoder.SamplesPerFrame(), audio.SamplesPerFrame(rate, channels))
			}
			encoder.Close()
		}
	}
}
