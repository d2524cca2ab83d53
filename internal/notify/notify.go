// Package notify sends desktop notifications when a phase completes.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const appTitle = "pomo"

// WorkComplete announces a finished work session. Notification
// failures are returned so the caller can log them, but they never
// stop the timer.
func WorkComplete(tag string) error {
	msg := "Work session complete. Time for a break."
	if tag != "" {
		msg = fmt.Sprintf("Work session complete (%s). Time for a break.", tag)
	}
	return beeep.Notify(appTitle, msg, "")
}

// BreakComplete announces the end of a break.
func BreakComplete() error {
	return beeep.Notify(appTitle, "Break over. Back to work.", "")
}
