// ABOUTME: Bubbletea model for the transmitter status TUI
// ABOUTME: Defines application state and update logic
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state
type Model struct {
	// Stream
	destination string
	streamID    string
	sampleRate  int
	channels    int
	compression bool
	broadcast   bool

	// Activity
	packets uint64
	headers uint64
	bytes   uint64
	dropped uint64
	level   float64
	uptime  time.Duration

	// Debug
	showDebug bool

	// Dimensions
	width  int
	height int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.applyStatus(msg)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderStreamInfo()
	s += m.renderLevel()
	s += m.renderStats()

	if m.showDebug {
		s += m.renderDebug()
	}

	s += m.renderHelp()

	return s
}

// renderHeader renders the destination line
func (m Model) renderHeader() string {
	dest := m.destination
	if m.broadcast {
		dest += " (broadcast)"
	}

	return fmt.Sprintf(`┌─ SyncWave Transmitter ───────────────────────────────┐
│ Target: %-45s│
├──────────────────────────────────────────────────────┤
`, truncate(dest, 45))
}

// renderStreamInfo renders the announced format
func (m Model) renderStreamInfo() string {
	if m.sampleRate == 0 {
		return "│ No stream                                            │\n"
	}

	codec := "raw float32"
	if m.compression {
		codec = "opus"
	}

	return fmt.Sprintf("│ Format: %dHz %s %s%-23s│\n",
		m.sampleRate, channelName(m.channels), codec, "")
}

// renderLevel renders the live audio meter
func (m Model) renderLevel() string {
	meter := renderBar(int(m.level*100), 100, 30)

	return fmt.Sprintf("│ Level:  [%s] %3.0f%%%-6s│\n", meter, m.level*100, "")
}

// renderStats renders transmission statistics
func (m Model) renderStats() string {
	return fmt.Sprintf(`├──────────────────────────────────────────────────────┤
│ Sent: %d packets  %s  Dropped: %d%-10s│
│ Uptime: %-44s │
`, m.packets, formatBytes(m.bytes), m.dropped, "", m.uptime.Round(time.Second))
}

// renderDebug renders debug information
func (m Model) renderDebug() string {
	return fmt.Sprintf(`│ DEBUG:                                               │
│   Stream ID: %-39s │
│   Headers sent: %-36d │
`, truncate(m.streamID, 39), m.headers)
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ d:Debug  q:Quit                                      │
└──────────────────────────────────────────────────────┘
`
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "d":
		m.showDebug = !m.showDebug
	}

	return m, nil
}

// applyStatus updates model from a status message
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.Destination != "" {
		m.destination = msg.Destination
	}
	if msg.StreamID != "" {
		m.streamID = msg.StreamID
	}
	if msg.SampleRate != 0 {
		m.sampleRate = msg.SampleRate
		m.channels = msg.Channels
		m.compression = msg.Compression
		m.broadcast = msg.Broadcast
	}
	m.packets = msg.Packets
	m.headers = msg.Headers
	m.bytes = msg.Bytes
	m.dropped = msg.Dropped
	m.level = msg.Level
	m.uptime = msg.Uptime
}

// StatusMsg updates TUI state from a stats snapshot
type StatusMsg struct {
	Destination string
	StreamID    string
	SampleRate  int
	Channels    int
	Compression bool
	Broadcast   bool
	Packets     uint64
	Headers     uint64
	Bytes       uint64
	Dropped     uint64
	Level       float64
	Uptime      time.Duration
}

// Utility functions
func renderBar(value, max, width int) string {
	if value > max {
		value = max
	}
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func channelName(channels int) string {
	switch channels {
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
