// ABOUTME: Frame accumulator for fixed-size codec frames
// ABOUTME: Buffers variable-length capture deliveries and slices exact frames
package audio

// FrameAccumulator converts the variable-length sample chunks delivered by
// a capture device into fixed-size encode frames. Device buffer sizes need
// not align with the codec frame size, so each push can yield zero or more
// frames; leftover samples are kept for the next push.
//
// The accumulator is owned by a single callback context and is not safe for
// concurrent use.
type FrameAccumulator struct {
	samplesPerFrame int
	pending         []float32
}

// NewFrameAccumulator creates an accumulator emitting frames of exactly
// samplesPerFrame interleaved samples.
func NewFrameAccumulator(samplesPerFrame int) *FrameAccumulator {
	return &FrameAccumulator{
		samplesPerFrame: samplesPerFrame,
		pending:         make([]float32, 0, samplesPerFrame*2),
	}
}

// Push appends samples and returns every complete frame now available,
// oldest first. Returned frames are copies; the caller may retain them.
func (a *FrameAccumulator) Push(samples []float32) [][]float32 {
	a.pending = append(a.pending, samples...)

	var frames [][]float32
	for len(a.pending) >= a.samplesPerFrame {
		frame := make([]float32, a.samplesPerFrame)
		copy(frame, a.pending[:a.samplesPerFrame])
		frames = append(frames, frame)

		// Shift the remainder down instead of reslicing so the pending
		// buffer does not pin ever-growing backing arrays.
		n := copy(a.pending, a.pending[a.samplesPerFrame:])
		a.pending = a.pending[:n]
	}

	return frames
}

// Pending returns the number of buffered samples awaiting a full frame.
// Always less than one frame after Push returns.
func (a *FrameAccumulator) Pending() int {
	return len(a.pending)
}
