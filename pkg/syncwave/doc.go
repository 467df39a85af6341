// ABOUTME: High-level SyncWave transmitter library API
// ABOUTME: Provides the Server and Source types most users need
// Package syncwave provides the high-level API for SyncWave audio
// transmission.
//
// A Server captures the default output device (or any Source), optionally
// compresses the samples with Opus, and streams timestamped datagrams to
// a fixed UDP destination until stopped.
//
// Example:
//
//	server, err := syncwave.New(syncwave.Config{
//	    TargetIP:       "192.168.1.50",
//	    TargetPort:     5555,
//	    UseCompression: true,
//	})
//	err = server.Start() // blocks until server.Stop()
//
// For lower-level control, see the audio and protocol packages.
package syncwave
