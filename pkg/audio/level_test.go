// ABOUTME: Tests for audio level measurement
// ABOUTME: Verifies RMS calculation and clipping detection
package audio

import (
	"math"
	"testing"
)

func TestMeasureLevelSilence(t *testing.T) {
	level := MeasureLevel(make([]float32, 480))

	if level.RMS != 0 {
		t.Errorf("expected zero RMS for silence, got %v", level.RMS)
	}
	if level.Clipping {
		t.Error("silence should not clip")
	}
}

func TestMeasureLevelFullScale(t *testing.T) {
	samples := make([]float32, 480)
	for i := range samples {
		samples[i] = 1.0
	}

	level := MeasureLevel(samples)

	if math.Abs(level.RMS-1.0) > 1e-6 {
		t.Errorf("expected RMS 1.0, got %v", level.RMS)
	}
	if !level.Clipping {
		t.Error("full-scale signal should clip")
	}
}

func TestMeasureLevelHalfScale(t *testing.T) {
	samples := []float32{0.5, -0.5, 0.5, -0.5}

	level := MeasureLevel(samples)

	if math.Abs(level.RMS-0.5) > 1e-6 {
		t.Errorf("expected RMS 0.5, got %v", level.RMS)
	}
	if level.Clipping {
		t.Error("half-scale signal should not clip")
	}
}

func TestMeasureLevelEmpty(t *testing.T) {
	level := MeasureLevel(nil)

	if level.RMS != 0 || level.Clipping {
		t.Errorf("expected zero level for empty input, got %+v", level)
	}
}
