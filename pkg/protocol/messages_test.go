// ABOUTME: Tests for SyncWave wire format encoding
// ABOUTME: Verifies byte layouts and encode/decode round-trips
package protocol

import (
	"bytes"
	"testing"
)

func TestEncodeHeaderLayout(t *testing.T) {
	format := StreamFormat{
		SampleRate:  48000,
		Channels:    2,
		Compression: true,
	}

	data := EncodeHeader(format)

	if len(data) != HeaderSize {
		t.Fatalf("expected %d bytes, got %d", HeaderSize, len(data))
	}

	expected := []byte{
		'S', 'Y', 'N', 'C', // magic
		1,                // version
		0x80, 0xBB, 0, 0, // 48000 little-endian
		2, 0, // channels little-endian
		1, // compression flag
	}

	if !bytes.Equal(data, expected) {
		t.Errorf("header bytes mismatch:\n got  %v\n want %v", data, expected)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	rates := []uint32{8000, 12000, 16000, 24000, 48000}
	channels := []uint16{1, 2}

	for _, rate := range rates {
		for _, ch := range channels {
			for _, compressed := range []bool{false, true} {
				format := StreamFormat{SampleRate: rate, Channels: ch, Compression: compressed}

				decoded, err := DecodeHeader(EncodeHeader(format))
				if err != nil {
					t.Fatalf("decode failed for %+v: %v", format, err)
				}
				if decoded != format {
					t.Errorf("round trip mismatch: got %+v, want %+v", decoded, format)
				}
			}
		}
	}
}

func TestDecodeHeaderRejectsBadMagic(t *testing.T) {
	data := EncodeHeader(StreamFormat{SampleRate: 48000, Channels: 2})
	data[0] = 'X'

	if _, err := DecodeHeader(data); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestDecodeHeaderRejectsBadVersion(t *testing.T) {
	data := EncodeHeader(StreamFormat{SampleRate: 48000, Channels: 2})
	data[4] = 99

	if _, err := DecodeHeader(data); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestDecodeHeaderRejectsShortData(t *testing.T) {
	if _, err := DecodeHeader([]byte{'S', 'Y', 'N', 'C'}); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestEncodePacketLayout(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	data, err := EncodePacket(PacketCompressed, 0x0102030405060708, payload)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	expected := []byte{
		1,                                              // type
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // timestamp little-endian
		4, 0, // payload length little-endian
		0xDE, 0xAD, 0xBE, 0xEF,
	}

	if !bytes.Equal(data, expected) {
		t.Errorf("packet bytes mismatch:\n got  %v\n want %v", data, expected)
	}
}

func TestPacketRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 11, 960, MaxPayloadSize}

	for _, size := range sizes {
		payload := make([]byte, size)
		for i := range payload {
			payload[i] = byte(i * 7)
		}

		data, err := EncodePacket(PacketRaw, 1234567890, payload)
		if err != nil {
			t.Fatalf("encode failed for size %d: %v", size, err)
		}
		if len(data) != PacketOverhead+size {
			t.Errorf("size %d: expected %d bytes, got %d", size, PacketOverhead+size, len(data))
		}

		packetType, timestamp, decoded, err := DecodePacket(data)
		if err != nil {
			t.Fatalf("decode failed for size %d: %v", size, err)
		}
		if packetType != PacketRaw {
			t.Errorf("size %d: expected type %d, got %d", size, PacketRaw, packetType)
		}
		if timestamp != 1234567890 {
			t.Errorf("size %d: expected timestamp 1234567890, got %d", size, timestamp)
		}
		if !bytes.Equal(decoded, payload) {
			t.Errorf("size %d: payload mismatch after round trip", size)
		}
	}
}

func TestEncodePacketRejectsOversizedPayload(t *testing.T) {
	payload := make([]byte, MaxPayloadSize+1)

	if _, err := EncodePacket(PacketRaw, 0, payload); err == nil {
		t.Fatal("expected error for oversized payload")
	}
}

func TestDecodePacketRejectsTruncatedData(t *testing.T) {
	if _, _, _, err := DecodePacket([]byte{0, 1, 2}); err == nil {
		t.Fatal("expected error for truncated packet")
	}
}

func TestDecodePacketRejectsLengthMismatch(t *testing.T) {
	data, err := EncodePacket(PacketRaw, 0, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if _, _, _, err := DecodePacket(data[:len(data)-1]); err == nil {
		t.Fatal("expected error for payload shorter than declared length")
	}
}

func TestDecodePacketRejectsUnknownType(t *testing.T) {
	data, err := EncodePacket(PacketRaw, 0, nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	data[0] = 7

	if _, _, _, err := DecodePacket(data); err == nil {
		t.Fatal("expected error for unknown packet type")
	}
}

func TestIsHeader(t *testing.T) {
	header := EncodeHeader(StreamFormat{SampleRate: 48000, Channels: 2})
	if !IsHeader(header) {
		t.Error("expected header to be recognized")
	}

	packet, err := EncodePacket(PacketRaw, 0, make([]byte, 1))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if IsHeader(packet) {
		t.Error("data packet misidentified as header")
	}
}
