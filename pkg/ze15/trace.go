// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"fmt"
	"log"
	"time"
)

// Level grades diagnostic events.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

// String returns the human-readable level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Event is one structured diagnostic emitted by the driver. Events are
// observability only: they never change control flow or return values.
type Event struct {
	Time    time.Time
	Level   Level
	Message string
	Frame   []byte // raw frame bytes, when the event concerns one
	Err     error  // underlying failure, when there is one
}

// Tracer receives diagnostic events. Install one with WithTracer, or set
// WithDebug to route events to the standard logger.
type Tracer func(Event)

// StderrTracer writes events through the standard log package. It is the
// tracer installed by WithDebug when none is provided.
func StderrTracer(e Event) {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Frame) > 0 {
		msg = fmt.Sprintf("%s [% X]", msg, e.Frame)
	}
	log.Printf("[%s] %s", e.Level, msg)
}
