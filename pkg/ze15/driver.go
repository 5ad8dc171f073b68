// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"fmt"
	"time"
)

// Driver owns one sensor instance: the transport handle, the operating
// mode, the warm-up clock, and the diagnostic tracer. It has no internal
// concurrency; exactly one read is in flight at a time and callers must
// serialize access per instance.
type Driver struct {
	transport Transport
	cfg       Config
	sync      *Synchronizer
	stats     *Statistics
	tracer    Tracer

	start time.Time
	ready bool // warm-up gate: one-way Pending -> Ready

	// seams for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a driver for a sensor on the given transport. The warm-up
// clock starts now; the first read blocks until the warm-up time has
// elapsed. New itself never blocks.
func New(t Transport, opts ...Option) *Driver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tracer := cfg.Tracer
	if tracer == nil && cfg.Debug {
		tracer = StderrTracer
	}

	d := &Driver{
		transport: t,
		cfg:       cfg,
		sync:      NewSynchronizer(t),
		stats:     NewStatistics(),
		tracer:    tracer,
		now:       time.Now,
		sleep:     time.Sleep,
	}
	d.start = d.now()
	return d
}

// Mode returns the configured operating mode.
func (d *Driver) Mode() Mode {
	return d.cfg.Mode
}

// Ready reports whether the warm-up gate has opened. It never transitions
// back once open.
func (d *Driver) Ready() bool {
	return d.ready
}

// WarmupRemaining returns how long until the warm-up gate opens, or zero.
func (d *Driver) WarmupRemaining() time.Duration {
	if d.ready {
		return 0
	}
	remaining := d.cfg.WarmupTime - d.now().Sub(d.start)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Stats returns the driver's statistics tracker. Use Snapshot when handing
// values to another goroutine.
func (d *Driver) Stats() *Statistics {
	return d.stats
}

// ReadCO reads one CO concentration in ppm. Every failure mode (no data,
// truncated frame, checksum mismatch) degrades to the 0.0 sentinel; no
// error is ever raised for transient protocol noise. Callers that need to
// tell failure apart from a true zero should use Read instead.
func (d *Driver) ReadCO() float64 {
	return d.Read().Sentinel()
}

// Read reads one CO concentration, reporting the outcome explicitly.
//
// It blocks until the warm-up gate is open, emits a request first in
// query/response mode, then attempts up to two synchronize+validate+decode
// cycles with a settle delay between failures. The first valid frame wins.
func (d *Driver) Read() Reading {
	d.awaitWarmup()

	if d.cfg.Mode == ModeQueryResponse {
		d.emitRequest()
	}

	status := StatusNoData
	for cycle := 0; cycle < readCycles; cycle++ {
		if cycle > 0 {
			d.sleep(d.cfg.SettleDelay)
		}

		frame, err := d.sync.Next()
		if err != nil {
			if err == ErrTruncatedFrame {
				d.stats.FramingErrors++
			} else {
				d.stats.EmptyCycles++
			}
			d.trace(LevelDebug, fmt.Sprintf("sync cycle %d failed", cycle+1), nil, err)
			continue
		}

		if !frame.Valid() {
			status = StatusChecksumError
			d.stats.ChecksumErrors++
			d.trace(LevelWarn, "frame rejected", frame.Bytes(), ErrChecksum)
			continue
		}

		ppm := Concentration(frame, d.cfg.Mode)
		d.finishRead(true)
		d.stats.RecordReading(ppm)
		d.trace(LevelDebug, fmt.Sprintf("decoded %.1f ppm", ppm), frame.Bytes(), nil)
		return Reading{PPM: ppm, Status: StatusOK, Frame: frame, Timestamp: frame.Timestamp()}
	}

	d.finishRead(false)
	d.trace(LevelInfo, "read exhausted retries, returning sentinel", nil, nil)
	return Reading{Status: status, Timestamp: d.now()}
}

// awaitWarmup holds the caller until the warm-up time has elapsed since
// construction, then flushes the input buffer once to discard whatever the
// sensor emitted while settling. The transition is one-way.
func (d *Driver) awaitWarmup() {
	if d.ready {
		return
	}
	if remaining := d.cfg.WarmupTime - d.now().Sub(d.start); remaining > 0 {
		d.trace(LevelInfo, fmt.Sprintf("warming up, %s remaining", remaining.Round(time.Millisecond)), nil, nil)
		d.sleep(remaining)
	}
	d.ready = true
	if err := d.transport.ResetInputBuffer(); err != nil {
		d.trace(LevelWarn, "post-warmup flush failed", nil, err)
	}
	d.trace(LevelInfo, "warm-up complete", nil, nil)
}

// emitRequest flushes stale receive bytes, transmits the fixed request
// sequence, and waits out the sensor's turnaround latency. A write failure
// is traced but not propagated; the read cycles that follow will simply
// find no data.
func (d *Driver) emitRequest() {
	if err := d.transport.ResetInputBuffer(); err != nil {
		d.trace(LevelWarn, "pre-request flush failed", nil, err)
	}
	if _, err := d.transport.Write(RequestFrame()); err != nil {
		d.trace(LevelWarn, "request write failed", nil, err)
		return
	}
	d.stats.RequestsSent++
	d.trace(LevelDebug, "request sent", requestFrame[:], nil)
	d.sleep(d.cfg.RequestDelay)
}

// finishRead rolls per-read bookkeeping into the statistics.
func (d *Driver) finishRead(ok bool) {
	d.stats.Reads++
	if !ok {
		d.stats.FailedReads++
	}
	d.stats.BytesDiscarded = d.sync.Discarded()
}

// trace emits a diagnostic event if a tracer is installed.
func (d *Driver) trace(level Level, msg string, frame []byte, err error) {
	if d.tracer == nil {
		return
	}
	d.tracer(Event{
		Time:    d.now(),
		Level:   level,
		Message: msg,
		Frame:   frame,
		Err:     err,
	})
}
