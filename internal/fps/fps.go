// Package fps counts frames and periodically logs the frame rate.
package fps

import (
	"time"

	"go.uber.org/zap"
)

type Counter struct {
	now      func() time.Time
	interval time.Duration
	logger   *zap.Logger
	name     string

	checkpoint time.Time
	frames     int
	total      int
	last       float64
}

type Option func(*Counter)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Counter) { c.now = now }
}

// WithInterval sets how often the rate is logged. Defaults to one second.
func WithInterval(d time.Duration) Option {
	return func(c *Counter) { c.interval = d }
}

func New(logger *zap.Logger, name string, opts ...Option) *Counter {
	c := &Counter{
		now:      time.Now,
		interval: time.Second,
		logger:   logger,
		name:     name,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Counter) Start() {
	c.frames = 0
	c.checkpoint = c.now()
}

// FrameDone counts one frame and logs the rate once the interval passed.
func (c *Counter) FrameDone() {
	c.frames++
	c.total++

	now := c.now()
	elapsed := now.Sub(c.checkpoint)
	if elapsed < c.interval {
		return
	}

	c.last = float64(c.frames) / elapsed.Seconds()
	c.logger.Debug("frame rate", zap.String("loop", c.name), zap.Float64("fps", c.last))

	c.checkpoint = now
	c.frames = 0
}

// Rate is the last logged frame rate, zero before the first interval.
func (c *Counter) Rate() float64 { return c.last }

func (c *Counter) Frames() int { return c.total }
