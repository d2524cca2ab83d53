package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewStats
	viewHeatmap
	viewSettings
)

var viewNames = []string{"Timer", "Stats", "Heatmap", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type workCompleteMsg struct {
	record session.Record
}

type durationsChangedMsg struct {
	work time.Duration
	brk  time.Duration
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatClock renders a countdown as MM:SS, spilling into hours past 99
// minutes is not a concern at the configured ceilings.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatSeconds(secs int64) string {
	return formatDuration(time.Duration(secs) * time.Second)
}
