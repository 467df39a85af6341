// ABOUTME: Audio level measurement for monitoring
// ABOUTME: Computes RMS level and clipping state from float samples
package audio

import "math"

// Level describes the loudness of one capture delivery
type Level struct {
	RMS      float64 // 0.0 to 1.0
	Clipping bool
}

// MeasureLevel computes the RMS level of a sample chunk and whether any
// sample reaches full scale.
func MeasureLevel(samples []float32) Level {
	if len(samples) == 0 {
		return Level{}
	}

	var sum float64
	clipping := false
	for _, s := range samples {
		v := float64(s)
		sum += v * v
		if v >= 1.0 || v <= -1.0 {
			clipping = true
		}
	}

	return Level{
		RMS:      math.Sqrt(sum / float64(len(samples))),
		Clipping: clipping,
	}
}
