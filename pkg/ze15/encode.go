// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"math"
	"time"
)

// EncodeFrame builds a checksum-valid frame carrying the given concentration
// in the layout the sensor uses for the given mode. It is the inverse of
// Concentration and serves test fixtures, capture tooling, and simulators.
//
// The concentration is quantized to 0.1 ppm counts and clamped to the
// 16-bit count range.
func EncodeFrame(mode Mode, ppm float64) *Frame {
	counts := encodeCounts(ppm)
	hi, lo := byte(counts>>8), byte(counts)

	f := &Frame{timestamp: time.Now()}
	f.raw[0] = StartByte

	if mode == ModeQueryResponse {
		// FF 86 HI LO 00 00 00 00 CS
		f.raw[1] = CmdReadConcentration
		f.raw[queryHighByte] = hi
		f.raw[queryLowByte] = lo
	} else {
		// FF 04 03 00 HI LO RH RL CS, with the full-scale range in bytes 6-7
		f.raw[1] = gasCO
		f.raw[2] = unitPPM
		f.raw[initiativeHighByte] = hi
		f.raw[initiativeLowByte] = lo
		f.raw[6] = byte(fullScalePPM >> 8)
		f.raw[7] = byte(fullScalePPM & 0xFF)
	}

	f.raw[FrameSize-1] = Checksum(f.raw[:])
	return f
}

// encodeCounts quantizes ppm to 0.1 ppm counts, clamped to uint16 range.
func encodeCounts(ppm float64) uint16 {
	counts := math.Round(ppm / ConcentrationStep)
	if counts < 0 {
		return 0
	}
	if counts > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(counts)
}
