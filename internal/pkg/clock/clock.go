package clock

import "time"

// Clock abstracts wall-clock access so time-sensitive rules, promo
// expiry in particular, can be tested at a fixed instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant until moved explicitly.
type MockClock struct {
	now time.Time
}

func NewMockClock(at time.Time) *MockClock {
	return &MockClock{now: at}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

func (c *MockClock) Set(at time.Time) {
	c.now = at
}

func (c *MockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
