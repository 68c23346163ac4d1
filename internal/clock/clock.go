package clock

import (
	"sync"
	"time"
)

// Clock abstracts the current time so order timestamps are testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a settable time. Safe for concurrent use.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}
