package tui

import (
	"time"

	"autotube/types"
)

// Messages for the tea program (polling-based)

// StatusUpdateMsg carries the latest config and video list from the server.
type StatusUpdateMsg struct {
	Config *types.Configuration
	Videos []types.VideoRecord
	Err    error
}

// TickMsg is sent periodically to trigger polling.
type TickMsg struct {
	Time time.Time
}

// GenerateDoneMsg is sent when a manual generation request completes.
type GenerateDoneMsg struct {
	Err error
}
