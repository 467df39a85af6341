// ABOUTME: Loopback capture of the default audio output device
// ABOUTME: Uses miniaudio via malgo to deliver float32 sample callbacks
package capture

import (
	"fmt"

	"github.com/gen2brain/malgo"
	"github.com/syncwave-audio/syncwave-go/pkg/audio"
)

// Device monitors the default output device through a miniaudio loopback
// stream. The device's native sample rate and channel count are adopted
// as-is; no format is requested.
//
// Sample data arrives on a dedicated real-time callback context owned by
// the audio subsystem. The callback must not block; everything it calls
// is lock-free on this path.
type Device struct {
	ctx    *malgo.AllocatedContext
	device *malgo.Device

	// set once in Start, before the device begins invoking the callback
	onSamples func([]float32)
}

// Open initializes the audio backend and opens the default output-monitor
// device with its native format. The stream does not run until Start.
func Open() (*Device, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("audio context init failed: %w", err)
	}

	d := &Device{ctx: ctx}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Loopback)
	deviceConfig.Capture.Format = malgo.FormatF32
	// Channels and SampleRate stay zero so miniaudio uses the device's
	// native configuration.
	deviceConfig.Alsa.NoMMap = 1

	onRecv := func(pOutputSamples, pInputSamples []byte, frameCount uint32) {
		fn := d.onSamples
		if fn == nil {
			return
		}
		fn(audio.Float32sFromBytes(pInputSamples))
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onRecv,
	})
	if err != nil {
		uninitContext(ctx)
		return nil, fmt.Errorf("capture device open failed: %w", err)
	}

	d.device = device
	return d, nil
}

// SampleRate returns the device's native sample rate
func (d *Device) SampleRate() int {
	return int(d.device.SampleRate())
}

// Channels returns the device's native channel count
func (d *Device) Channels() int {
	return int(d.device.CaptureChannels())
}

// Start registers the sample callback and begins capture. The callback
// receives interleaved float32 samples once per available device buffer
// until Close.
func (d *Device) Start(onSamples func([]float32)) error {
	d.onSamples = onSamples
	if err := d.device.Start(); err != nil {
		return fmt.Errorf("capture start failed: %w", err)
	}
	return nil
}

// Close stops the stream and releases the device and backend context
func (d *Device) Close() error {
	d.device.Uninit()
	uninitContext(d.ctx)
	return nil
}

func uninitContext(ctx *malgo.AllocatedContext) {
	_ = ctx.Uninit()
	ctx.Free()
}
