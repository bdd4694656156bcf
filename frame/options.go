// SPDX-License-Identifier: MIT
// Package: driftgraph/frame
//
// options.go - functional options for NewDriver.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (nil
//     logger, nil RNG, nil metrics, non-positive interval).
//   - Seeding precedence: WithRand/WithSeed override Params.Seed.

package frame

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// DefaultInterval is the delay between two steps (50 frames per second).
const DefaultInterval = 20 * time.Millisecond

// Option customises a Driver at construction.
type Option func(*driverConfig)

type driverConfig struct {
	log      *zap.Logger
	rng      *rand.Rand
	interval time.Duration
	metrics  *Metrics
}

func defaultConfig() driverConfig {
	return driverConfig{
		log:      zap.NewNop(),
		interval: DefaultInterval,
	}
}

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("frame: WithLogger(nil)")
	}
	return func(c *driverConfig) {
		c.log = l
	}
}

// WithRand supplies the RNG used for node spawning. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("frame: WithRand(nil)")
	}
	return func(c *driverConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *driverConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithInterval overrides DefaultInterval. Panics on d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("frame: WithInterval(<=0)")
	}
	return func(c *driverConfig) {
		c.interval = d
	}
}

// WithMetrics records per-step statistics into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("frame: WithMetrics(nil)")
	}
	return func(c *driverConfig) {
		c.metrics = m
	}
}
