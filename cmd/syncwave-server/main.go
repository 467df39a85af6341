// ABOUTME: Entry point for the SyncWave transmitter
// ABOUTME: Parses CLI flags and runs the streaming server
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/syncwave-audio/syncwave-go/internal/ui"
	"github.com/syncwave-audio/syncwave-go/internal/version"
	"github.com/syncwave-audio/syncwave-go/pkg/syncwave"
)

var (
	target    = flag.String("target", "", "Destination IP address (required)")
	port      = flag.Int("port", 5555, "Destination UDP port")
	compress  = flag.Bool("compress", false, "Enable Opus compression")
	broadcast = flag.Bool("broadcast", false, "Enable subnet broadcast sends")
	name      = flag.String("name", "", "Transmitter friendly name (default: hostname-syncwave)")
	logFile   = flag.String("log-file", "syncwave-server.log", "Log file path")
	noMDNS    = flag.Bool("no-mdns", false, "Disable mDNS advertisement")
	noTUI     = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
	testTone  = flag.Bool("test-tone", false, "Stream a generated 440Hz tone instead of capturing audio")
	debug     = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *target == "" {
		flag.Usage()
		os.Exit(2)
	}

	useTUI := !*noTUI

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Streaming logs mode: log to both stdout and file
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	log.Printf("%s %s starting", version.Product, version.Version)

	config := syncwave.Config{
		TargetIP:       *target,
		TargetPort:     *port,
		UseCompression: *compress,
		Broadcast:      *broadcast,
		Name:           *name,
		EnableMDNS:     !*noMDNS,
		Debug:          *debug,
	}
	if *testTone {
		config.Source = syncwave.NewTestTone(0, 0)
	}

	server, err := syncwave.New(config)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received %v signal, shutting down...", sig)
		server.Stop()
	}()

	if useTUI {
		runWithTUI(server)
	} else if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Printf("Server stopped")
}

// runWithTUI runs the server with the status display, feeding it stats
// snapshots until the server or the user ends the session.
func runWithTUI(server *syncwave.Server) {
	p := ui.Run()

	stopPolling := make(chan struct{})
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.Send(statusMsg(server))
			case <-stopPolling:
				return
			}
		}
	}()

	// Quitting the TUI stops the server, and vice versa
	go func() {
		if _, err := p.Run(); err != nil {
			log.Printf("TUI error: %v", err)
		}
		server.Stop()
	}()

	err := server.Start()
	close(stopPolling)
	p.Quit()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// statusMsg maps a stats snapshot onto the TUI message
func statusMsg(server *syncwave.Server) ui.StatusMsg {
	stats := server.Stats()

	return ui.StatusMsg{
		Destination: stats.Destination,
		StreamID:    stats.StreamID,
		SampleRate:  stats.SampleRate,
		Channels:    stats.Channels,
		Compression: stats.Compression,
		Broadcast:   *broadcast,
		Packets:     stats.Packets,
		Headers:     stats.Headers,
		Bytes:       stats.Bytes,
		Dropped:     stats.DroppedFrames,
		Level:       stats.Level,
		Uptime:      stats.Uptime,
	}
}
