// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"fmt"
	"time"
)

// Frame is one 9-byte protocol unit as received from the serial link.
// Byte 0 is the start marker, bytes 1-7 are mode-dependent header and
// payload fields, and byte 8 is the checksum.
type Frame struct {
	raw       [FrameSize]byte
	timestamp time.Time
}

// FrameFromBytes copies raw into a Frame. It fails if raw is not exactly
// 9 bytes; it does not require the frame to be well-formed or valid.
func FrameFromBytes(raw []byte) (*Frame, error) {
	if len(raw) != FrameSize {
		return nil, fmt.Errorf("frame must be %d bytes, got %d", FrameSize, len(raw))
	}
	f := &Frame{timestamp: time.Now()}
	copy(f.raw[:], raw)
	return f, nil
}

// Bytes returns a copy of the frame's raw bytes.
func (f *Frame) Bytes() []byte {
	out := make([]byte, FrameSize)
	copy(out, f.raw[:])
	return out
}

// WellFormed reports whether the frame starts with the start marker.
// Length is guaranteed by construction.
func (f *Frame) WellFormed() bool {
	return f.raw[0] == StartByte
}

// Valid reports whether the frame is well-formed and its checksum over
// bytes 1-7 matches byte 8.
func (f *Frame) Valid() bool {
	return Validate(f.raw[:])
}

// ChecksumByte returns the integrity byte carried in byte 8.
func (f *Frame) ChecksumByte() byte {
	return f.raw[FrameSize-1]
}

// Timestamp returns when the frame was assembled from the stream.
func (f *Frame) Timestamp() time.Time {
	return f.timestamp
}
