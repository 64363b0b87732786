package test

import (
	"sync"
	"time"
)

// Time is a virtual clock. NewTimer fires immediately and advances the
// clock by the requested duration, so polling loops observe elapsed
// time without real sleeps.
type Time struct {
	now time.Time
	mux sync.Mutex
}

func NewFakeTime() *Time {
	return &Time{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (t *Time) Now() time.Time {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.now
}

func (t *Time) NewTimer(d time.Duration) *time.Timer {
	t.mux.Lock()
	t.now = t.now.Add(d)
	now := t.now
	t.mux.Unlock()
	ch := make(chan time.Time, 1)
	ch <- now
	return &time.Timer{C: ch}
}
