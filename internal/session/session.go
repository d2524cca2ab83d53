// Package session defines the completed-interval record shared by the
// timer, store, stats and export packages.
package session

import "time"

// Phase identifies which side of the work/break cycle an interval
// belongs to.
type Phase string

const (
	Work  Phase = "work"
	Break Phase = "break"
)

// Record is an immutable completed interval. The timer creates one when
// a phase runs to zero; nothing mutates it afterwards.
type Record struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  int64 // seconds
	Tag       string
	Phase     Phase
}

// IsWork reports whether the record counts toward statistics. Break
// records are stored for completeness but excluded from aggregation.
func (r Record) IsWork() bool {
	return r.Phase == Work
}
