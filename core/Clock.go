package core

import "time"

// Clock supplies the seconds elapsed since it was last queried.
type Clock interface {
	Elapsed() float64
}

// WallClock measures real time between queries.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

func NewWallClock(now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now, last: now()}
}

func (c *WallClock) Elapsed() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// FixedClock returns the same step on every query, used under a fixed tick rate.
type FixedClock struct {
	Step float64
}

func (c FixedClock) Elapsed() float64 { return c.Step }
