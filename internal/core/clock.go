package core

import (
	"sync"
	"time"
)

// Clock supplies the frame time in milliseconds. The engine samples it once
// per frame and threads that value through every timing computation.
type Clock interface {
	NowMillis() int64
}

// SystemClock is a monotonic clock counting from its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a clock advanced explicitly, for tests and replays.
type ManualClock struct {
	mu  sync.Mutex
	now int64
}

// NewManualClock creates a manual clock set to start.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to an absolute time.
func (c *ManualClock) Set(ms int64) {
	c.mu.Lock()
	c.now = ms
	c.mu.Unlock()
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms int64) {
	c.mu.Lock()
	c.now += ms
	c.mu.Unlock()
}
