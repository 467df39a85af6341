// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the transmitter status display
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates a new TUI model
func NewModel() Model {
	return Model{}
}

// Run creates the TUI program. The caller sends StatusMsg updates with
// Program.Send and runs the program on its own goroutine.
func Run() *tea.Program {
	return tea.NewProgram(NewModel(), tea.WithAltScreen())
}
