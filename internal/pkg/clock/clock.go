// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a clock pinned to a single instant, for tests
type Fixed struct {
	T time.Time
}

// Now returns the pinned instant
func (c *Fixed) Now() time.Time {
	return c.T
}

// Advance moves the pinned instant forward
func (c *Fixed) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// NewFixed returns a clock that always reports t until advanced
func NewFixed(t time.Time) *Fixed {
	return &Fixed{T: t}
}
