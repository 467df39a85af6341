// ABOUTME: SyncWave wire format encoding and decoding
// ABOUTME: Defines the header announcement and data packet byte layouts
package protocol

import (
	"encoding/binary"
	"fmt"
)

const (
	// ProtocolVersion is the version of the SyncWave wire format we implement
	ProtocolVersion = 1

	// HeaderSize is the fixed size of an encoded header announcement
	HeaderSize = 12

	// PacketOverhead is the size of a data packet before its payload
	// (1 type byte + 8 timestamp bytes + 2 length bytes)
	PacketOverhead = 11

	// MaxPayloadSize is the largest payload a data packet can carry,
	// bounded by the 16-bit length field
	MaxPayloadSize = 65535
)

// Magic identifies SyncWave datagrams on the wire
var Magic = [4]byte{'S', 'Y', 'N', 'C'}

// PacketType identifies the payload encoding of a data packet
type PacketType byte

const (
	// PacketRaw carries uncompressed little-endian float32 samples
	PacketRaw PacketType = 0

	// PacketCompressed carries an Opus-encoded frame
	PacketCompressed PacketType = 1
)

// StreamFormat describes the audio stream announced in the header.
// It is fixed at session start and never changes for the stream's lifetime.
type StreamFormat struct {
	SampleRate  uint32
	Channels    uint16
	Compression bool
}

// EncodeHeader serializes a header announcement.
// Layout: magic(4) version(1) sampleRate(4,LE) channels(2,LE) compression(1)
func EncodeHeader(format StreamFormat) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], Magic[:])
	buf[4] = ProtocolVersion
	binary.LittleEndian.PutUint32(buf[5:9], format.SampleRate)
	binary.LittleEndian.PutUint16(buf[9:11], format.Channels)
	if format.Compression {
		buf[11] = 1
	}
	return buf
}

// DecodeHeader parses a header announcement. Receivers treat the most
// recently decoded header as the authoritative stream format.
func DecodeHeader(data []byte) (StreamFormat, error) {
	if len(data) != HeaderSize {
		return StreamFormat{}, fmt.Errorf("invalid header length: %d bytes, want %d", len(data), HeaderSize)
	}
	if [4]byte(data[0:4]) != Magic {
		return StreamFormat{}, fmt.Errorf("invalid header magic: %q", data[0:4])
	}
	if data[4] != ProtocolVersion {
		return StreamFormat{}, fmt.Errorf("unsupported protocol version: %d", data[4])
	}

	return StreamFormat{
		SampleRate:  binary.LittleEndian.Uint32(data[5:9]),
		Channels:    binary.LittleEndian.Uint16(data[9:11]),
		Compression: data[11] != 0,
	}, nil
}

// EncodePacket serializes a data packet.
// Layout: type(1) timestampMicros(8,LE) payloadLength(2,LE) payload(N)
// Payloads larger than MaxPayloadSize are a caller contract violation.
func EncodePacket(packetType PacketType, timestampMicros uint64, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload too large: %d bytes, max %d", len(payload), MaxPayloadSize)
	}

	buf := make([]byte, PacketOverhead+len(payload))
	buf[0] = byte(packetType)
	binary.LittleEndian.PutUint64(buf[1:9], timestampMicros)
	binary.LittleEndian.PutUint16(buf[9:11], uint16(len(payload)))
	copy(buf[11:], payload)
	return buf, nil
}

// DecodePacket parses a data packet, returning its type, capture timestamp
// in microseconds, and payload bytes.
func DecodePacket(data []byte) (PacketType, uint64, []byte, error) {
	if len(data) < PacketOverhead {
		return 0, 0, nil, fmt.Errorf("packet too short: %d bytes", len(data))
	}

	packetType := PacketType(data[0])
	if packetType != PacketRaw && packetType != PacketCompressed {
		return 0, 0, nil, fmt.Errorf("unknown packet type: %d", data[0])
	}

	timestamp := binary.LittleEndian.Uint64(data[1:9])
	length := int(binary.LittleEndian.Uint16(data[9:11]))
	if len(data) != PacketOverhead+length {
		return 0, 0, nil, fmt.Errorf("packet length mismatch: declared %d, got %d payload bytes", length, len(data)-PacketOverhead)
	}

	return packetType, timestamp, data[11 : 11+length], nil
}

// IsHeader reports whether a datagram is a header announcement rather than
// a data packet. Headers always begin with the magic bytes.
func IsHeader(data []byte) bool {
	return len(data) == HeaderSize && [4]byte(data[0:4]) == Magic
}
