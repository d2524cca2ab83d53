package timer

import "time"

// Clock supplies the current time. The timer takes a Clock so completed
// records carry deterministic timestamps under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }
