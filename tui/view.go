package tui

import (
	"fmt"
	"strings"
)

const maxVisibleVideos = 6

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📺 AutoTube Monitor"))
	b.WriteString("\n\n")

	if !m.Connected {
		if m.Err != nil {
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("✗ Not connected: %v", m.Err)))
		} else {
			b.WriteString(InfoStyle.Render("Connecting..."))
		}
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
		return b.String()
	}

	if m.Config != nil {
		enabled := "disabled"
		if m.Config.Enabled {
			enabled = "enabled"
		}
		cfg := fmt.Sprintf("⚙  Topic: %q | Schedule: %s | Auto-posting: %s",
			m.Config.Topic, m.Config.Schedule, enabled)
		b.WriteString(StatusStyle.Render(cfg))
		b.WriteString("\n\n")
	}

	draft, scheduled, published := m.countByStatus()
	stats := fmt.Sprintf("📊 Videos: %d | Draft: %d | Scheduled: %d | Published: %d",
		len(m.Videos), draft, scheduled, published)
	b.WriteString(InfoStyle.Render(stats))
	b.WriteString("\n\n")

	if len(m.Videos) > 0 {
		var box strings.Builder
		start := 0
		if len(m.Videos) > maxVisibleVideos {
			start = len(m.Videos) - maxVisibleVideos
		}
		for _, v := range m.Videos[start:] {
			box.WriteString(fmt.Sprintf("%s  [%s]\n", v.Title, v.Status))
		}
		b.WriteString(BoxStyle.Render(strings.TrimRight(box.String(), "\n")))
		b.WriteString("\n\n")
	}

	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, line := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.Generating {
		b.WriteString(InfoStyle.Render("Generating... | Press 'q' or Ctrl+C to quit"))
	} else {
		b.WriteString(InfoStyle.Render("Press 'g' to generate now | Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}
