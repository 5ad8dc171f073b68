// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import "time"

// Config holds the driver configuration.
type Config struct {
	// Mode selects initiative upload or query/response framing.
	Mode Mode

	// WarmupTime is how long after construction reads are held back while
	// the sensing element stabilizes.
	WarmupTime time.Duration

	// RequestDelay is the pause after transmitting a query-mode request
	// before listening for the response.
	RequestDelay time.Duration

	// SettleDelay is the pause between failed synchronization cycles.
	SettleDelay time.Duration

	// Debug installs StderrTracer when no Tracer is set.
	Debug bool

	// Tracer receives structured diagnostic events (optional).
	Tracer Tracer
}

// defaultConfig returns the sensor's documented defaults.
func defaultConfig() Config {
	return Config{
		Mode:         ModeInitiative,
		WarmupTime:   DefaultWarmupTime,
		RequestDelay: DefaultRequestDelay,
		SettleDelay:  DefaultSettleDelay,
	}
}

// Option is a functional option for configuring the Driver.
type Option func(*Config)

// WithMode selects the operating mode. The mode must match the sensor's
// actual configuration; it decides both request emission and which frame
// bytes carry the concentration.
func WithMode(m Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// WithWarmupTime overrides the warm-up duration. Zero disables the gate,
// which is only sensible against a sensor that is already settled (or a
// capture replay).
func WithWarmupTime(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.WarmupTime = d
		}
	}
}

// WithRequestDelay overrides the query-mode turnaround delay.
func WithRequestDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.RequestDelay = d
		}
	}
}

// WithSettleDelay overrides the delay between failed read cycles.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SettleDelay = d
		}
	}
}

// WithDebug enables diagnostic tracing to the standard logger when no
// explicit tracer is installed.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithTracer installs an observer for structured diagnostic events.
func WithTracer(t Tracer) Option {
	return func(c *Config) {
		c.Tracer = t
	}
}
