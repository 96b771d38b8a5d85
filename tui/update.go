package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TickMsg:
		return m, tea.Batch(pollStatus(m.Client), tickCmd())
	case StatusUpdateMsg:
		return m.handleStatusUpdate(msg)
	case GenerateDoneMsg:
		return m.handleGenerateDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "g", "G":
		if m.Generating || m.Config == nil || m.Config.Topic == "" {
			return m, nil
		}
		m.Generating = true
		m = m.AddLog(fmt.Sprintf("Generating video for topic %q...", m.Config.Topic))
		return m, triggerGenerate(m.Client, m.Config.Topic)
	}
	return m, nil
}

// handleStatusUpdate syncs local state from the server
func (m Model) handleStatusUpdate(msg StatusUpdateMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Connected = false
		m.Err = msg.Err
		return m, nil
	}
	m.Connected = true
	m.Err = nil
	m.Config = msg.Config
	m.Videos = msg.Videos
	return m, nil
}

// handleGenerateDone reports the outcome of a manual generation
func (m Model) handleGenerateDone(msg GenerateDoneMsg) (tea.Model, tea.Cmd) {
	m.Generating = false
	if msg.Err != nil {
		m = m.AddLog(fmt.Sprintf("Generation failed: %v", msg.Err))
		return m, nil
	}
	m = m.AddLog("Generation complete")
	return m, pollStatus(m.Client)
}
