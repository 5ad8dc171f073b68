// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"fmt"
	"strings"
)

// FormatFrame formats a frame into a human-readable one-line summary.
func FormatFrame(f *Frame) string {
	timestamp := f.timestamp.Format("15:04:05.000")

	verdict := "valid"
	if !f.WellFormed() {
		verdict = "malformed"
	} else if !f.Valid() {
		verdict = fmt.Sprintf("checksum mismatch (expected 0x%02X)", Checksum(f.raw[:]))
	}

	return fmt.Sprintf("[%s] %s  cks=0x%02X (%s)", timestamp, formatHex(f.raw[:]), f.ChecksumByte(), verdict)
}

// FormatReading formats a reading for console output.
func FormatReading(r Reading) string {
	timestamp := r.Timestamp.Format("15:04:05.000")
	if r.Status != StatusOK {
		return fmt.Sprintf("[%s] -- no reading (%s)", timestamp, r.Status)
	}
	return fmt.Sprintf("[%s] %.1f ppm CO", timestamp, r.PPM)
}

// formatHex renders bytes as uppercase hex pairs separated by spaces.
func formatHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
