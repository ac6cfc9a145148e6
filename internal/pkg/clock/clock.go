package clock

import "time"

// Clock returns instants in UTC so persisted timestamps and
// window arithmetic never depend on the host zone.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock stands still until moved; hold expiry and refund windows are
// tested by advancing it.
type MockClock struct {
	now time.Time
}

func NewMockClock(at time.Time) *MockClock {
	return &MockClock{now: at.UTC()}
}

func (c *MockClock) Now() time.Time { return c.now }

func (c *MockClock) Set(at time.Time) { c.now = at.UTC() }

func (c *MockClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
