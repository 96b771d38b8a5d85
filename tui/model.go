package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"autotube/types"
)

const maxLogLines = 8

// Model represents the monitor state (thin client over the HTTP API).
type Model struct {
	Client *APIClient

	Config     *types.Configuration
	Videos     []types.VideoRecord
	Generating bool
	Connected  bool
	Err        error

	Logs []string
}

// NewModel creates a monitor model pointed at the given server.
func NewModel(serverURL string) Model {
	return Model{
		Client: NewAPIClient(serverURL),
		Logs:   make([]string, 0, maxLogLines),
	}
}

// Init implements tea.Model: start the poll loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(pollStatus(m.Client), tickCmd())
}

// AddLog appends a line to the activity log, keeping the tail.
func (m Model) AddLog(line string) Model {
	m.Logs = append(m.Logs, line)
	if len(m.Logs) > maxLogLines {
		m.Logs = m.Logs[len(m.Logs)-maxLogLines:]
	}
	return m
}

// countByStatus tallies videos per lifecycle status.
func (m Model) countByStatus() (draft, scheduled, published int) {
	for _, v := range m.Videos {
		switch v.Status {
		case types.StatusDraft:
			draft++
		case types.StatusScheduled:
			scheduled++
		case types.StatusPublished:
			published++
		}
	}
	return
}
