// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"fmt"
	"time"
)

// Statistics tracks read outcomes and stream health for one driver.
type Statistics struct {
	StartTime time.Time

	// Counters
	Reads          uint64 // completed Read/ReadCO calls
	ValidFrames    uint64
	ChecksumErrors uint64
	FramingErrors  uint64 // truncated candidates
	EmptyCycles    uint64 // cycles that found no data at all
	BytesDiscarded uint64 // non-marker bytes skipped during sync
	RequestsSent   uint64
	FailedReads    uint64 // reads that degraded to the sentinel

	// Last valid reading
	LastPPM       float64
	LastReadingAt time.Time

	// Rates (calculated)
	ReadRate  float64 // reads/sec
	ErrorRate float64 // failures/sec
}

// NewStatistics creates a statistics tracker starting now.
func NewStatistics() *Statistics {
	return &Statistics{StartTime: time.Now()}
}

// RecordReading notes a successful decode.
func (s *Statistics) RecordReading(ppm float64) {
	s.ValidFrames++
	s.LastPPM = ppm
	s.LastReadingAt = time.Now()
}

// CalculateRates refreshes the derived read and error rates.
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.ReadRate = float64(s.Reads) / elapsed
		errorCount := s.ChecksumErrors + s.FramingErrors + s.FailedReads
		s.ErrorRate = float64(errorCount) / elapsed
	}
}

// Snapshot returns a copy safe to hand to another goroutine.
func (s *Statistics) Snapshot() Statistics {
	s.CalculateRates()
	return *s
}

// String returns a formatted statistics summary.
func (s *Statistics) String() string {
	s.CalculateRates()

	var validPercent float64
	if s.Reads > 0 {
		validPercent = float64(s.Reads-s.FailedReads) * 100.0 / float64(s.Reads)
	}

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Reads:           %8d\n", s.Reads)
	result += fmt.Sprintf("With data:       %8d (%.1f%%)\n", s.Reads-s.FailedReads, validPercent)
	result += fmt.Sprintf("Valid frames:    %8d\n", s.ValidFrames)

	if s.ChecksumErrors > 0 {
		result += fmt.Sprintf("Checksum errors: %8d\n", s.ChecksumErrors)
	}
	if s.FramingErrors > 0 {
		result += fmt.Sprintf("Framing errors:  %8d\n", s.FramingErrors)
	}
	if s.BytesDiscarded > 0 {
		result += fmt.Sprintf("Bytes discarded: %8d\n", s.BytesDiscarded)
	}
	if s.RequestsSent > 0 {
		result += fmt.Sprintf("Requests sent:   %8d\n", s.RequestsSent)
	}

	if !s.LastReadingAt.IsZero() {
		result += fmt.Sprintf("Last reading:    %8.1f ppm at %s\n", s.LastPPM, s.LastReadingAt.Format("15:04:05"))
	}

	result += fmt.Sprintf("Read rate:       %8.2f reads/sec\n", s.ReadRate)
	result += fmt.Sprintf("Error rate:      %8.2f errors/sec\n", s.ErrorRate)
	result += "================================\n"

	return result
}

// Reset clears all counters and restarts the clock.
func (s *Statistics) Reset() {
	*s = Statistics{StartTime: time.Now()}
}
