package nav

import "time"

// Clock supplies wall-clock time to the controller. Tests inject a fake
// so cooldown arithmetic is deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
