// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

// Package ze15 provides a driver for the Winsen ZE15-CO carbon monoxide
// sensor over its fixed-baud serial link.
//
// The sensor speaks a 9-byte binary frame protocol in one of two modes:
// initiative upload, where a frame arrives autonomously about once a second,
// and query/response, where a frame is only produced after the driver
// transmits a request. This package provides frame synchronization, checksum
// validation, mode-aware concentration decoding, request emission, and the
// warm-up and retry discipline that makes reads reliable over a noisy byte
// stream.
package ze15

import "time"

// Protocol framing
const (
	// StartByte marks the first byte of every frame.
	StartByte = 0xFF

	// FrameSize is the fixed length of a frame, checksum included.
	FrameSize = 9

	// CmdReadConcentration is the command byte of the query-mode request,
	// echoed back in byte 1 of the sensor's response.
	CmdReadConcentration = 0x86
)

// Initiative upload header bytes, fixed by the sensor.
const (
	gasCO   = 0x04 // gas id reported in byte 1
	unitPPM = 0x03 // concentration unit reported in byte 2
)

// fullScalePPM is the sensor's measurement range, reported in bytes 6-7 of
// initiative upload frames.
const fullScalePPM = 500

// ConcentrationStep is the protocol's quantization step: concentrations are
// carried as a 16-bit count of 0.1 ppm units.
const ConcentrationStep = 0.1

// Concentration byte offsets per mode
const (
	initiativeHighByte = 4
	initiativeLowByte  = 5
	queryHighByte      = 2
	queryLowByte       = 3
)

// Defaults
const (
	// DefaultBaudRate is the sensor's fixed UART speed (8N1).
	DefaultBaudRate = 9600

	// DefaultWarmupTime is the settling period after power-on during which
	// the sensing element has not stabilized and output is unreliable.
	DefaultWarmupTime = 10 * time.Second

	// DefaultRequestDelay is the sensor's turnaround latency after a
	// query-mode request before the response starts arriving.
	DefaultRequestDelay = 100 * time.Millisecond

	// DefaultSettleDelay is the pause between failed synchronization cycles,
	// letting more bytes arrive or the stream resynchronize.
	DefaultSettleDelay = 100 * time.Millisecond
)

// readCycles bounds the synchronize+decode attempts per read. The first
// valid frame wins; if both cycles fail the read degrades to the sentinel.
const readCycles = 2

// requestFrame is the fixed, checksum-valid command sequence that solicits
// one response frame in query mode. It carries no variable data.
var requestFrame = [FrameSize]byte{StartByte, 0x01, CmdReadConcentration, 0x00, 0x00, 0x00, 0x00, 0x00, 0x79}

// RequestFrame returns a copy of the query-mode request sequence.
func RequestFrame() []byte {
	out := make([]byte, FrameSize)
	copy(out, requestFrame[:])
	return out
}

// Mode selects how the sensor produces frames.
type Mode int

const (
	// ModeInitiative is the sensor's default: it pushes a frame on a fixed
	// cadence (~1s) without solicitation.
	ModeInitiative Mode = iota

	// ModeQueryResponse produces a frame only after the driver transmits
	// the request sequence.
	ModeQueryResponse
)

// String returns the human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeInitiative:
		return "INITIATIVE"
	case ModeQueryResponse:
		return "QUERY_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
