// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import "testing"

func TestChecksum_RequestFrame(t *testing.T) {
	// The fixed request sequence is itself checksum-valid.
	req := RequestFrame()
	if got := Checksum(req); got != 0x79 {
		t.Errorf("request frame checksum = 0x%02X, want 0x79", got)
	}
	if !Validate(req) {
		t.Error("request frame should validate")
	}
}

func TestChecksum_Law(t *testing.T) {
	// Constructing the checksum and appending it must always pass Validate.
	tests := []struct {
		name string
		body [7]byte
	}{
		{"all zeros", [7]byte{}},
		{"all ones", [7]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"query response", [7]byte{0x86, 0x00, 0x2A, 0x00, 0x00, 0x00, 0x00}},
		{"initiative upload", [7]byte{0x04, 0x03, 0x00, 0x02, 0x58, 0x01, 0xF4}},
		{"sum overflow", [7]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := make([]byte, FrameSize)
			frame[0] = StartByte
			copy(frame[1:8], tt.body[:])
			frame[8] = Checksum(frame)
			if !Validate(frame) {
				t.Errorf("frame % X should validate with computed checksum 0x%02X", frame, frame[8])
			}
		})
	}
}

func TestValidate_Rejections(t *testing.T) {
	good := EncodeFrame(ModeInitiative, 12.3).Bytes()

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"short frame", func(f []byte) []byte { return f[:8] }},
		{"long frame", func(f []byte) []byte { return append(f, 0x00) }},
		{"missing start marker", func(f []byte) []byte { f[0] = 0x7E; return f }},
		{"corrupted payload byte", func(f []byte) []byte { f[4] ^= 0x01; return f }},
		{"corrupted checksum byte", func(f []byte) []byte { f[8] ^= 0xFF; return f }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := make([]byte, len(good))
			copy(frame, good)
			if Validate(tt.mutate(frame)) {
				t.Error("mutated frame should not validate")
			}
		})
	}
}

func TestFrame_WellFormedVsValid(t *testing.T) {
	raw := EncodeFrame(ModeQueryResponse, 1.0).Bytes()
	raw[8] ^= 0x55 // break the checksum, keep the start marker

	f, err := FrameFromBytes(raw)
	if err != nil {
		t.Fatalf("FrameFromBytes: %v", err)
	}
	if !f.WellFormed() {
		t.Error("frame with start marker should be well-formed")
	}
	if f.Valid() {
		t.Error("frame with broken checksum should not be valid")
	}

	if _, err := FrameFromBytes(raw[:5]); err == nil {
		t.Error("FrameFromBytes should reject short input")
	}
}
