// Package timer implements the work/break countdown state machine and
// the tag registry it consults. All transitions are pure functions of
// the current state plus an event; the only side effect is the
// completed-work record returned by Tick, which the caller persists.
package timer

import (
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// RunState is orthogonal to the work/break phase.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
)

// MinDuration is the floor for configured phase durations.
const MinDuration = time.Minute

const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// Config carries the initial timer setup, typically loaded from the
// settings table.
type Config struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	Tags          []string
	SelectedTag   string
	Clock         Clock
}

// Timer is the session countdown state machine. Not safe for
// concurrent use; it is owned by the interactive loop.
type Timer struct {
	clock Clock
	tags  *TagRegistry

	phase         session.Phase
	state         RunState
	remaining     time.Duration
	workDuration  time.Duration
	breakDuration time.Duration

	// sessionStart anchors the in-flight interval; zero when Idle with
	// no interval started.
	sessionStart time.Time
}

// New builds a timer in Idle(Work) with remaining set to the configured
// work duration.
func New(cfg Config) *Timer {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.WorkDuration < MinDuration {
		cfg.WorkDuration = DefaultWorkDuration
	}
	if cfg.BreakDuration < MinDuration {
		cfg.BreakDuration = DefaultBreakDuration
	}

	t := &Timer{
		clock:         cfg.Clock,
		tags:          NewTagRegistry(cfg.Tags),
		phase:         session.Work,
		state:         Idle,
		workDuration:  cfg.WorkDuration,
		breakDuration: cfg.BreakDuration,
	}
	t.remaining = t.workDuration

	if cfg.SelectedTag != "" {
		_ = t.tags.Select(cfg.SelectedTag)
	}
	return t
}

// Start begins or resumes the countdown. Starting a Work phase with an
// empty tag registry fails with ErrInvalidTag. No-op while Running.
func (t *Timer) Start() error {
	if t.state == Running {
		return nil
	}
	if t.phase == session.Work && t.tags.Len() == 0 {
		return ErrInvalidTag
	}
	if t.state == Idle {
		t.sessionStart = t.clock.Now()
	}
	t.state = Running
	return nil
}

// Pause freezes the countdown. No-op unless Running.
func (t *Timer) Pause() {
	if t.state == Running {
		t.state = Paused
	}
}

// Reset returns to Idle in the current phase with remaining restored to
// that phase's configured duration. Phase and tag selection are kept.
func (t *Timer) Reset() {
	t.state = Idle
	t.remaining = t.configured(t.phase)
	t.sessionStart = time.Time{}
}

// Tick applies elapsed running time. It returns the completed work
// record when a Work phase finishes (nil otherwise) and whether the
// phase flipped. After a flip the timer keeps Running in the new phase
// so work and break intervals chain without another Start.
func (t *Timer) Tick(elapsed time.Duration) (*session.Record, bool) {
	if t.state != Running {
		return nil, false
	}

	t.remaining -= elapsed
	if t.remaining > 0 {
		return nil, false
	}
	t.remaining = 0

	var rec *session.Record
	if t.phase == session.Work {
		rec = &session.Record{
			StartTime: t.sessionStart,
			EndTime:   t.clock.Now(),
			Duration:  int64(t.workDuration / time.Second),
			Tag:       t.tags.Selected(),
			Phase:     session.Work,
		}
		t.phase = session.Break
	} else {
		t.phase = session.Work
	}

	t.remaining = t.configured(t.phase)
	t.sessionStart = t.clock.Now()
	return rec, true
}

// AdjustDuration changes a phase's configured duration by deltaMinutes,
// floored at one minute. When the adjusted phase is the current one and
// the timer is Idle, remaining re-syncs immediately; while Running or
// Paused the countdown is left alone and the new value takes effect on
// the next Reset or natural completion.
func (t *Timer) AdjustDuration(phase session.Phase, deltaMinutes int) time.Duration {
	d := t.configured(phase) + time.Duration(deltaMinutes)*time.Minute
	if d < MinDuration {
		d = MinDuration
	}

	if phase == session.Work {
		t.workDuration = d
	} else {
		t.breakDuration = d
	}

	if phase == t.phase && t.state == Idle {
		t.remaining = d
	}
	return d
}

// SelectTag sets the tag applied to the next completed work interval.
func (t *Timer) SelectTag(name string) error {
	return t.tags.Select(name)
}

// AddTag registers a new tag name.
func (t *Timer) AddTag(name string) error {
	return t.tags.Add(name)
}

// RemoveTag deletes a tag. Removing the last remaining tag is rejected
// with ErrProtectedTag while a work interval is in progress, since the
// completed record would otherwise reference nothing.
func (t *Timer) RemoveTag(name string) error {
	if t.tags.Len() == 1 && t.tags.Selected() == name &&
		t.phase == session.Work && t.state != Idle {
		return ErrProtectedTag
	}
	return t.tags.Remove(name)
}

func (t *Timer) configured(phase session.Phase) time.Duration {
	if phase == session.Work {
		return t.workDuration
	}
	return t.breakDuration
}

func (t *Timer) Phase() session.Phase { return t.phase }
func (t *Timer) State() RunState      { return t.state }

// Remaining reports the time left in the current phase.
func (t *Timer) Remaining() time.Duration { return t.remaining }

func (t *Timer) WorkDuration() time.Duration  { return t.workDuration }
func (t *Timer) BreakDuration() time.Duration { return t.breakDuration }

// Tags exposes the owned registry for listing and cycling.
func (t *Timer) Tags() *TagRegistry { return t.tags }

// SelectedTag returns the active tag, or "" when the registry is empty.
func (t *Timer) SelectedTag() string { return t.tags.Selected() }
