// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import "time"

// Status classifies the outcome of a read.
type Status int

const (
	// StatusOK means a valid frame was decoded.
	StatusOK Status = iota

	// StatusNoData means no complete candidate frame arrived within the
	// retry budget.
	StatusNoData

	// StatusChecksumError means a well-formed frame arrived but its
	// integrity byte did not match.
	StatusChecksumError
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNoData:
		return "NO_DATA"
	case StatusChecksumError:
		return "CHECKSUM_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Reading is one decoded read result. PPM is only meaningful when Status is
// StatusOK; the Sentinel method collapses failures to the protocol's 0.0
// sentinel, which the original wire format cannot distinguish from a
// genuine zero-concentration measurement.
type Reading struct {
	PPM       float64
	Status    Status
	Frame     *Frame // nil unless Status is StatusOK
	Timestamp time.Time
}

// OK reports whether the reading carries valid data.
func (r Reading) OK() bool {
	return r.Status == StatusOK
}

// Sentinel returns the concentration with failure collapsed to 0.0 ppm,
// matching the sensor's documented degraded behavior.
func (r Reading) Sentinel() float64 {
	if r.Status != StatusOK {
		return 0.0
	}
	return r.PPM
}

// Concentration extracts the CO concentration in ppm from a validated
// frame. The byte offsets depend on the operating mode: initiative upload
// carries the value in bytes 4-5, query responses in bytes 2-3. Decoding
// never fails on a frame that passed checksum validation.
func Concentration(f *Frame, mode Mode) float64 {
	var hi, lo byte
	if mode == ModeQueryResponse {
		hi, lo = f.raw[queryHighByte], f.raw[queryLowByte]
	} else {
		hi, lo = f.raw[initiativeHighByte], f.raw[initiativeLowByte]
	}
	return float64(uint16(hi)<<8|uint16(lo)) * ConcentrationStep
}
