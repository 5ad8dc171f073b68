// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

// Checksum computes the frame integrity byte over bytes 1-7.
// Per the datasheet: (0xFF - sum(bytes 1..7) + 1) truncated to 8 bits,
// which is the two's complement of the byte sum.
func Checksum(frame []byte) byte {
	var sum byte
	for _, b := range frame[1:8] {
		sum += b
	}
	return ^sum + 1
}

// Validate reports whether frame is a valid ZE15 frame: exactly 9 bytes,
// leading start marker, and a checksum over bytes 1-7 matching byte 8.
func Validate(frame []byte) bool {
	return len(frame) == FrameSize &&
		frame[0] == StartByte &&
		Checksum(frame) == frame[FrameSize-1]
}
