package timeout

import "time"

// Time is the real clock implementation of types.Time.
type Time struct{}

func (t *Time) Now() time.Time {
	return time.Now()
}

func (t *Time) NewTimer(d time.Duration) *time.Timer {
	return time.NewTimer(d)
}
