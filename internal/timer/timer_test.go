package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// fakeClock is a manually advanced Clock for deterministic records.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTimer(work, brk time.Duration, tags ...string) (*Timer, *fakeClock) {
	clk := newFakeClock()
	t := New(Config{
		WorkDuration:  work,
		BreakDuration: brk,
		Tags:          tags,
		Clock:         clk,
	})
	return t, clk
}

// tick advances the clock and the timer together, one second at a time,
// the way the interactive loop drives it.
func tick(t *Timer, clk *fakeClock, d time.Duration) (*session.Record, bool) {
	var (
		rec     *session.Record
		flipped bool
	)
	for d > 0 {
		clk.advance(time.Second)
		r, f := t.Tick(time.Second)
		if r != nil {
			rec = r
		}
		if f {
			flipped = true
		}
		d -= time.Second
	}
	return rec, flipped
}

// ============================================================
// Initial state
// ============================================================

func TestNewDefaults(t *testing.T) {
	tm := New(Config{})
	if tm.Phase() != session.Work {
		t.Fatalf("initial phase = %v, want work", tm.Phase())
	}
	if tm.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", tm.State())
	}
	if tm.WorkDuration() != DefaultWorkDuration {
		t.Fatalf("work duration = %v, want %v", tm.WorkDuration(), DefaultWorkDuration)
	}
	if tm.BreakDuration() != DefaultBreakDuration {
		t.Fatalf("break duration = %v, want %v", tm.BreakDuration(), DefaultBreakDuration)
	}
	if tm.Remaining() != DefaultWorkDuration {
		t.Fatalf("remaining = %v, want configured work duration", tm.Remaining())
	}
}

func TestNewSelectsConfiguredTag(t *testing.T) {
	tm := New(Config{Tags: []string{"A", "B"}, SelectedTag: "B"})
	if tm.SelectedTag() != "B" {
		t.Fatalf("selected = %q, want B", tm.SelectedTag())
	}
}

// ============================================================
// Start / Pause / Reset
// ============================================================

func TestStartRequiresTag(t *testing.T) {
	tm, _ := newTestTimer(time.Minute, time.Minute)
	err := tm.Start()
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("Start with empty registry: err = %v, want ErrInvalidTag", err)
	}
	if tm.State() != Idle {
		t.Fatal("failed Start must leave the timer Idle")
	}
}

func TestStartIsIdempotentWhileRunning(t *testing.T) {
	tm, clk := newTestTimer(2*time.Minute, time.Minute, "Work")
	if err := tm.Start(); err != nil {
		t.Fatal(err)
	}
	tick(tm, clk, 30*time.Second)
	remaining := tm.Remaining()

	if err := tm.Start(); err != nil {
		t.Fatal(err)
	}
	if tm.Remaining() != remaining {
		t.Fatal("Start while Running must not disturb the countdown")
	}
}

func TestPauseNoTimeLeak(t *testing.T) {
	tm, clk := newTestTimer(2*time.Minute, time.Minute, "Work")
	tm.Start()
	tick(tm, clk, 30*time.Second)

	tm.Pause()
	atPause := tm.Remaining()

	// Ticks while paused must not apply.
	tick(tm, clk, 45*time.Second)
	if tm.Remaining() != atPause {
		t.Fatalf("remaining moved while paused: %v -> %v", atPause, tm.Remaining())
	}

	if err := tm.Start(); err != nil {
		t.Fatal(err)
	}
	if tm.Remaining() != atPause {
		t.Fatalf("resume changed remaining: %v -> %v", atPause, tm.Remaining())
	}
}

func TestPauseOnlyAppliesWhileRunning(t *testing.T) {
	tm, _ := newTestTimer(time.Minute, time.Minute, "Work")
	tm.Pause()
	if tm.State() != Idle {
		t.Fatal("Pause while Idle should be a no-op")
	}
}

func TestResetRestoresConfiguredDuration(t *testing.T) {
	tm, clk := newTestTimer(2*time.Minute, time.Minute, "Work")
	tm.Start()
	tick(tm, clk, 50*time.Second)

	tm.Reset()
	if tm.State() != Idle {
		t.Fatal("Reset should return to Idle")
	}
	if tm.Phase() != session.Work {
		t.Fatal("Reset must not change the phase")
	}
	if tm.Remaining() != 2*time.Minute {
		t.Fatalf("remaining = %v, want configured work duration", tm.Remaining())
	}
}

// ============================================================
// Tick and completion
// ============================================================

func TestWorkCompletionEmitsOneRecord(t *testing.T) {
	work := 90 * time.Second
	tm, clk := newTestTimer(work, time.Minute, "Deep")
	start := clk.Now()
	tm.Start()

	rec, flipped := tick(tm, clk, work)
	if rec == nil {
		t.Fatal("expected a record at work completion")
	}
	if !flipped {
		t.Fatal("expected a phase flip")
	}
	if rec.Phase != session.Work {
		t.Fatalf("record phase = %v, want work", rec.Phase)
	}
	if rec.Duration != int64(work/time.Second) {
		t.Fatalf("record duration = %d, want %d", rec.Duration, int64(work/time.Second))
	}
	if rec.Tag != "Deep" {
		t.Fatalf("record tag = %q, want Deep", rec.Tag)
	}
	if !rec.StartTime.Equal(start) {
		t.Fatalf("record start = %v, want %v", rec.StartTime, start)
	}
	if !rec.EndTime.Equal(start.Add(work)) {
		t.Fatalf("record end = %v, want %v", rec.EndTime, start.Add(work))
	}

	if tm.Phase() != session.Break {
		t.Fatal("phase should flip to break")
	}
	if tm.State() != Running {
		t.Fatal("timer should keep running into the break")
	}
	if tm.Remaining() != time.Minute {
		t.Fatalf("remaining = %v, want break duration", tm.Remaining())
	}
}

func TestBreakCompletionEmitsNoRecord(t *testing.T) {
	tm, clk := newTestTimer(time.Second, time.Second, "Work")
	tm.Start()

	rec, _ := tick(tm, clk, time.Second) // work done
	if rec == nil {
		t.Fatal("work completion should emit a record")
	}

	rec, flipped := tick(tm, clk, time.Second) // break done
	if rec != nil {
		t.Fatal("break completion must not emit a record")
	}
	if !flipped {
		t.Fatal("break completion should flip back to work")
	}
	if tm.Phase() != session.Work {
		t.Fatal("phase should be work again")
	}
	if tm.Remaining() != time.Second {
		t.Fatalf("remaining = %v, want work duration", tm.Remaining())
	}
}

func TestChainingScenario(t *testing.T) {
	// work=1s, break=1s: one tick completes work (one record), the
	// next completes the break (none), and the cycle keeps running.
	tm, clk := newTestTimer(time.Second, time.Second, "Focus")
	if err := tm.Start(); err != nil {
		t.Fatal(err)
	}

	rec, _ := tick(tm, clk, time.Second)
	if rec == nil || rec.Duration != 1 || rec.Phase != session.Work || rec.Tag != "Focus" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if tm.Phase() != session.Break || tm.Remaining() != time.Second {
		t.Fatalf("after work: phase=%v remaining=%v", tm.Phase(), tm.Remaining())
	}

	rec, _ = tick(tm, clk, time.Second)
	if rec != nil {
		t.Fatal("no record expected for the break")
	}
	if tm.Phase() != session.Work || tm.Remaining() != time.Second {
		t.Fatalf("after break: phase=%v remaining=%v", tm.Phase(), tm.Remaining())
	}
	if tm.State() != Running {
		t.Fatal("cycle should continue without a new Start")
	}
}

func TestTickClampsAtZero(t *testing.T) {
	tm, clk := newTestTimer(time.Minute, time.Minute, "Work")
	tm.Start()

	clk.advance(time.Minute)
	rec, _ := tm.Tick(90 * time.Second) // overshoot
	if rec == nil {
		t.Fatal("overshooting tick should still complete the phase")
	}
	if tm.Remaining() != time.Minute {
		t.Fatalf("remaining = %v, want full break duration", tm.Remaining())
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	tm, _ := newTestTimer(time.Minute, time.Minute, "Work")
	rec, flipped := tm.Tick(time.Second)
	if rec != nil || flipped {
		t.Fatal("Tick while Idle must be a no-op")
	}
	if tm.Remaining() != time.Minute {
		t.Fatal("remaining must not move while Idle")
	}
}

// ============================================================
// Duration adjustment
// ============================================================

func TestAdjustDurationIdleResyncsRemaining(t *testing.T) {
	tm, _ := newTestTimer(25*time.Minute, 5*time.Minute, "Work")

	tm.AdjustDuration(session.Work, 5)
	if tm.WorkDuration() != 30*time.Minute {
		t.Fatalf("work duration = %v, want 30m", tm.WorkDuration())
	}
	if tm.Remaining() != 30*time.Minute {
		t.Fatalf("remaining = %v, want 30m while Idle", tm.Remaining())
	}
}

func TestAdjustDurationRunningLeavesRemaining(t *testing.T) {
	tm, clk := newTestTimer(25*time.Minute, 5*time.Minute, "Work")
	tm.Start()
	tick(tm, clk, 10*time.Second)
	remaining := tm.Remaining()

	tm.AdjustDuration(session.Work, 5)
	if tm.Remaining() != remaining {
		t.Fatal("adjustment while Running must not touch remaining")
	}

	tm.Reset()
	if tm.Remaining() != 30*time.Minute {
		t.Fatal("adjustment should apply on the next Reset")
	}
}

func TestAdjustDurationOtherPhaseLeavesRemaining(t *testing.T) {
	tm, _ := newTestTimer(25*time.Minute, 5*time.Minute, "Work")
	tm.AdjustDuration(session.Break, 5)
	if tm.BreakDuration() != 10*time.Minute {
		t.Fatalf("break duration = %v, want 10m", tm.BreakDuration())
	}
	if tm.Remaining() != 25*time.Minute {
		t.Fatal("adjusting the other phase must not touch remaining")
	}
}

func TestAdjustDurationFloorsAtOneMinute(t *testing.T) {
	tm, _ := newTestTimer(2*time.Minute, 5*time.Minute, "Work")
	tm.AdjustDuration(session.Work, -30)
	if tm.WorkDuration() != MinDuration {
		t.Fatalf("work duration = %v, want floor %v", tm.WorkDuration(), MinDuration)
	}
}

// ============================================================
// Tag interaction
// ============================================================

func TestSelectTagUnknown(t *testing.T) {
	tm, _ := newTestTimer(time.Minute, time.Minute, "A")
	if err := tm.SelectTag("nope"); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("err = %v, want ErrUnknownTag", err)
	}
	if tm.SelectedTag() != "A" {
		t.Fatal("failed select must not change the selection")
	}
}

func TestSelectTagAppliesToNextCompletion(t *testing.T) {
	tm, clk := newTestTimer(2*time.Second, time.Second, "A", "B")
	tm.Start()
	tick(tm, clk, time.Second)

	// Mid-session switch applies to the interval being completed next.
	if err := tm.SelectTag("B"); err != nil {
		t.Fatal(err)
	}
	rec, _ := tick(tm, clk, time.Second)
	if rec == nil || rec.Tag != "B" {
		t.Fatalf("record tag = %v, want B", rec)
	}
}

func TestRemoveProtectedTag(t *testing.T) {
	tm, _ := newTestTimer(time.Minute, time.Minute, "Only")
	tm.Start()
	if err := tm.RemoveTag("Only"); !errors.Is(err, ErrProtectedTag) {
		t.Fatalf("err = %v, want ErrProtectedTag", err)
	}

	tm.Pause()
	if err := tm.RemoveTag("Only"); !errors.Is(err, ErrProtectedTag) {
		t.Fatalf("err while paused = %v, want ErrProtectedTag", err)
	}

	tm.Reset()
	if err := tm.RemoveTag("Only"); err != nil {
		t.Fatalf("removal while Idle should succeed: %v", err)
	}
}

func TestRemoveLastTagDuringBreakAllowed(t *testing.T) {
	tm, clk := newTestTimer(time.Second, time.Minute, "Only")
	tm.Start()
	tick(tm, clk, time.Second) // now in break, running

	if err := tm.RemoveTag("Only"); err != nil {
		t.Fatalf("removal during break should succeed: %v", err)
	}
	if tm.SelectedTag() != "" {
		t.Fatal("selection should be empty")
	}
}

func TestEmptyRegistryScenario(t *testing.T) {
	// Registry ["A","B"] selected A; remove A while Idle -> B; remove B
	// -> empty; Start fails with InvalidTag.
	tm, _ := newTestTimer(time.Minute, time.Minute, "A", "B")

	if err := tm.RemoveTag("A"); err != nil {
		t.Fatal(err)
	}
	if tm.SelectedTag() != "B" {
		t.Fatalf("selected = %q, want B", tm.SelectedTag())
	}

	if err := tm.RemoveTag("B"); err != nil {
		t.Fatal(err)
	}
	if tm.SelectedTag() != "" {
		t.Fatal("selection should be undefined")
	}

	if err := tm.Start(); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("Start = %v, want ErrInvalidTag", err)
	}
}
