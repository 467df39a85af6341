// ABOUTME: SyncWave wire format package documentation
// ABOUTME: Documents the header and data packet layouts
// Package protocol implements the SyncWave wire format.
//
// A stream consists of two datagram kinds, both little-endian:
//
//	Header (12 bytes):  magic "SYNC" | version | sample rate u32 | channels u16 | compression flag
//	Data   (11+N):      type | timestamp µs u64 | payload length u16 | payload
//
// Headers are sent redundantly and never acknowledged; receivers track the
// most recent one as the current stream format. Data packets carry either
// raw little-endian float32 samples or one Opus frame, by type.
//
// Both sides of the codec live here so that a receiver collaborator can
// import the same package, but this repository only transmits.
package protocol
