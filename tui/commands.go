package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollStatus fetches the config and video list in one command.
func pollStatus(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		cfg, err := client.GetConfig()
		if err != nil {
			return StatusUpdateMsg{Err: err}
		}
		videos, err := client.GetVideos()
		return StatusUpdateMsg{
			Config: cfg,
			Videos: videos,
			Err:    err,
		}
	}
}

// triggerGenerate fires a manual generation for the configured topic.
func triggerGenerate(client *APIClient, topic string) tea.Cmd {
	return func() tea.Msg {
		return GenerateDoneMsg{Err: client.Generate(topic)}
	}
}

// tickCmd ticks every 2s to drive polling.
func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
