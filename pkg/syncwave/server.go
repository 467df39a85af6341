// ABOUTME: High-level transmitter API for SyncWave streaming
// ABOUTME: Wires capture, framing, compression, and transport together
package syncwave

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/syncwave-audio/syncwave-go/internal/capture"
	"github.com/syncwave-audio/syncwave-go/internal/discovery"
	syncclock "github.com/syncwave-audio/syncwave-go/internal/sync"
	"github.com/syncwave-audio/syncwave-go/internal/transport"
	"github.com/syncwave-audio/syncwave-go/internal/version"
	"github.com/syncwave-audio/syncwave-go/pkg/audio"
	"github.com/syncwave-audio/syncwave-go/pkg/audio/encode"
	"github.com/syncwave-audio/syncwave-go/pkg/protocol"
)

const (
	// Header delivery-redundancy policy: headers are never acknowledged,
	// so the announcement is repeated and periodically re-sent in-stream.
	headerAnnounceCount = 5
	headerAnnounceDelay = 50 * time.Millisecond
	announceSettleDelay = 100 * time.Millisecond
	headerResendEvery   = 1000

	// Raw chunks larger than the packet length field allows are split on
	// a sample boundary.
	maxRawChunkBytes = protocol.MaxPayloadSize - protocol.MaxPayloadSize%audio.BytesPerSample
)

// Config configures a SyncWave transmitter
type Config struct {
	// TargetIP is the destination address (unicast or subnet broadcast)
	TargetIP string

	// TargetPort is the destination UDP port
	TargetPort int

	// UseCompression enables Opus compression. Requires the capture
	// device's native format to be Opus-compatible.
	UseCompression bool

	// Broadcast enables subnet-broadcast sends on the socket
	Broadcast bool

	// Name identifies this transmitter in logs and mDNS
	// (default: hostname-syncwave)
	Name string

	// EnableMDNS advertises the stream via mDNS
	EnableMDNS bool

	// Debug enables per-packet error logging
	Debug bool

	// Source overrides the default output-monitor capture device
	Source Source
}

// Server is a SyncWave transmitter session. Once started it streams the
// capture source to the destination until Stop.
type Server struct {
	config   Config
	streamID string

	sender *transport.UDPSender
	source Source
	format protocol.StreamFormat
	header []byte

	// compressed mode only; nil in raw mode
	encoder     encode.FrameEncoder
	accumulator *audio.FrameAccumulator

	clock       *syncclock.SessionClock
	mdnsManager *discovery.Manager

	// Shared between the startup path and the capture callback. The
	// counter only gates the approximate header-resend cadence, so
	// relaxed atomic semantics are sufficient.
	packetCount   atomic.Uint64
	headerCount   atomic.Uint64
	bytesSent     atomic.Uint64
	droppedFrames atomic.Uint64
	levelBits     atomic.Uint64

	stopChan    chan struct{}
	stopOnce    sync.Once
	releaseOnce sync.Once
}

// Stats is a point-in-time snapshot of transmitter activity
type Stats struct {
	StreamID      string
	Destination   string
	SampleRate    int
	Channels      int
	Compression   bool
	Packets       uint64
	Headers       uint64
	Bytes         uint64
	DroppedFrames uint64
	Level         float64
	Uptime        time.Duration
}

// New validates the configuration, binds the transport, and opens the
// capture source. Configuration and resource errors are reported here,
// before any datagram is sent or callback registered: a session that
// cannot encode must never start streaming.
func New(config Config) (*Server, error) {
	if config.TargetIP == "" {
		return nil, fmt.Errorf("target IP is required")
	}
	if config.TargetPort <= 0 || config.TargetPort > 65535 {
		return nil, fmt.Errorf("invalid target port: %d", config.TargetPort)
	}
	if config.Name == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		config.Name = fmt.Sprintf("%s-syncwave", hostname)
	}

	sender, err := transport.NewUDPSender(config.TargetIP, config.TargetPort, config.Broadcast)
	if err != nil {
		return nil, err
	}

	source := config.Source
	if source == nil {
		device, err := capture.Open()
		if err != nil {
			sender.Close()
			return nil, err
		}
		source = device
	}

	format := protocol.StreamFormat{
		SampleRate:  uint32(source.SampleRate()),
		Channels:    uint16(source.Channels()),
		Compression: config.UseCompression,
	}

	s := &Server{
		config:   config,
		streamID: uuid.New().String(),
		sender:   sender,
		source:   source,
		format:   format,
		header:   protocol.EncodeHeader(format),
		clock:    syncclock.NewSessionClock(),
		stopChan: make(chan struct{}),
	}

	if config.UseCompression {
		encoder, err := encode.NewOpus(source.SampleRate(), source.Channels())
		if err != nil {
			s.releaseResources()
			return nil, fmt.Errorf("compression not supported for device format: %w", err)
		}
		s.encoder = encoder
		s.accumulator = audio.NewFrameAccumulator(encoder.SamplesPerFrame())
	}

	return s, nil
}

// Start announces the stream format, begins capture, and blocks until
// Stop is called. Errors before the streaming state are fatal; once
// streaming, transient failures are logged and the stream continues.
func (s *Server) Start() error {
	mode := "raw"
	if s.format.Compression {
		mode = "opus"
	}
	log.Printf("Transmitter starting: %s (stream %s)", s.config.Name, s.streamID)
	log.Printf("Streaming to %s: %dHz, %d channels, %s",
		s.sender.Dest(), s.format.SampleRate, s.format.Channels, mode)

	if s.config.EnableMDNS {
		s.mdnsManager = discovery.NewManager(discovery.Config{
			InstanceName: fmt.Sprintf("%s-%.8s", s.config.Name, s.streamID),
			Port:         s.config.TargetPort,
			TXT: []string{
				fmt.Sprintf("rate=%d", s.format.SampleRate),
				fmt.Sprintf("channels=%d", s.format.Channels),
				fmt.Sprintf("compression=%t", s.format.Compression),
				fmt.Sprintf("version=%s", version.Version),
			},
		})

		if err := s.mdnsManager.Advertise(); err != nil {
			log.Printf("Failed to start mDNS advertisement: %v", err)
		}
	}

	for i := 0; i < headerAnnounceCount; i++ {
		if err := s.sendHeader(); err != nil {
			s.releaseResources()
			return fmt.Errorf("header announcement failed: %w", err)
		}
		time.Sleep(headerAnnounceDelay)
	}
	log.Printf("Header announced %d times for redundancy", headerAnnounceCount)
	time.Sleep(announceSettleDelay)

	if err := s.source.Start(s.onSamples); err != nil {
		s.releaseResources()
		return err
	}

	log.Printf("Streaming started")

	<-s.stopChan

	log.Printf("Transmitter shutting down...")
	s.releaseResources()

	stats := s.Stats()
	log.Printf("Stream ended: %d packets, %d bytes in %s", stats.Packets, stats.Bytes, stats.Uptime.Round(time.Second))

	return nil
}

// Stop ends the session and unblocks Start
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// Format returns the announced stream format
func (s *Server) Format() protocol.StreamFormat {
	return s.format
}

// Stats returns a snapshot of transmitter activity
func (s *Server) Stats() Stats {
	return Stats{
		StreamID:      s.streamID,
		Destination:   s.sender.Dest().String(),
		SampleRate:    int(s.format.SampleRate),
		Channels:      int(s.format.Channels),
		Compression:   s.format.Compression,
		Packets:       s.packetCount.Load(),
		Headers:       s.headerCount.Load(),
		Bytes:         s.bytesSent.Load(),
		DroppedFrames: s.droppedFrames.Load(),
		Level:         math.Float64frombits(s.levelBits.Load()),
		Uptime:        s.clock.Elapsed(),
	}
}

// onSamples is the capture callback: it runs on the audio subsystem's
// real-time context once per device buffer. Nothing here may block or
// propagate an error; a dropped frame beats a stalled stream.
func (s *Server) onSamples(samples []float32) {
	s.levelBits.Store(math.Float64bits(audio.MeasureLevel(samples).RMS))

	if s.encoder != nil {
		for _, frame := range s.accumulator.Push(samples) {
			payload, err := s.encoder.Encode(frame)
			if err != nil {
				s.droppedFrames.Add(1)
				log.Printf("Frame encode failed, dropping: %v", err)
				continue
			}
			s.sendPacket(protocol.PacketCompressed, payload)
		}
		return
	}

	// Raw mode: each device delivery becomes its own packet
	data := audio.Float32sToBytes(samples)
	for len(data) > maxRawChunkBytes {
		s.sendPacket(protocol.PacketRaw, data[:maxRawChunkBytes])
		data = data[maxRawChunkBytes:]
	}
	s.sendPacket(protocol.PacketRaw, data)
}

// sendPacket stamps and transmits one data packet, re-sending the header
// before every headerResendEvery'th packet for late-joining receivers.
func (s *Server) sendPacket(packetType protocol.PacketType, payload []byte) {
	count := s.packetCount.Add(1) - 1
	if count > 0 && count%headerResendEvery == 0 {
		if err := s.sendHeader(); err != nil && s.config.Debug {
			log.Printf("Header resend failed: %v", err)
		}
	}

	packet, err := protocol.EncodePacket(packetType, uint64(syncclock.Micros()), payload)
	if err != nil {
		s.droppedFrames.Add(1)
		log.Printf("Packet encode failed, dropping: %v", err)
		return
	}

	if err := s.sender.Send(packet); err != nil {
		if s.config.Debug {
			log.Printf("Packet send failed: %v", err)
		}
		return
	}
	s.bytesSent.Add(uint64(len(packet)))
}

// sendHeader transmits one header announcement
func (s *Server) sendHeader() error {
	if err := s.sender.Send(s.header); err != nil {
		return err
	}
	s.headerCount.Add(1)
	s.bytesSent.Add(uint64(len(s.header)))
	return nil
}

// releaseResources tears down the session's capture, codec, discovery,
// and socket in dependency order. The capture source goes first so no
// callback runs against a closed socket.
func (s *Server) releaseResources() {
	s.releaseOnce.Do(func() {
		if s.mdnsManager != nil {
			s.mdnsManager.Stop()
		}
		if err := s.source.Close(); err != nil {
			log.Printf("Error closing capture source: %v", err)
		}
		if s.encoder != nil {
			s.encoder.Close()
		}
		s.sender.Close()
	})
}
