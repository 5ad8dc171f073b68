// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"math"
	"testing"
)

func TestConcentration_ModeOffsets(t *testing.T) {
	// Same high/low pair placed at the mode's offsets must decode
	// identically when the mode matches: 0x01 0x90 -> 400 counts -> 40.0.
	hi, lo := byte(0x01), byte(0x90)

	query := make([]byte, FrameSize)
	query[0] = StartByte
	query[1] = CmdReadConcentration
	query[queryHighByte] = hi
	query[queryLowByte] = lo
	query[8] = Checksum(query)

	initiative := make([]byte, FrameSize)
	initiative[0] = StartByte
	initiative[1] = gasCO
	initiative[2] = unitPPM
	initiative[initiativeHighByte] = hi
	initiative[initiativeLowByte] = lo
	initiative[8] = Checksum(initiative)

	qf, err := FrameFromBytes(query)
	if err != nil {
		t.Fatalf("FrameFromBytes: %v", err)
	}
	inf, err := FrameFromBytes(initiative)
	if err != nil {
		t.Fatalf("FrameFromBytes: %v", err)
	}

	want := 40.0
	if got := Concentration(qf, ModeQueryResponse); got != want {
		t.Errorf("query decode = %v, want %v", got, want)
	}
	if got := Concentration(inf, ModeInitiative); got != want {
		t.Errorf("initiative decode = %v, want %v", got, want)
	}
}

func TestConcentration_RoundTrip(t *testing.T) {
	// Encoding a concentration and decoding it back must reproduce the
	// value within the protocol's 0.1 ppm quantization step.
	values := []float64{0.0, 0.1, 0.5, 4.2, 12.3, 60.0, 499.9, 500.0, 6553.5}
	modes := []Mode{ModeInitiative, ModeQueryResponse}

	for _, mode := range modes {
		for _, ppm := range values {
			f := EncodeFrame(mode, ppm)
			if !f.Valid() {
				t.Fatalf("%v: encoded frame for %.1f ppm should be valid: % X", mode, ppm, f.Bytes())
			}
			got := Concentration(f, mode)
			if math.Abs(got-ppm) > ConcentrationStep/2 {
				t.Errorf("%v: round trip %.1f ppm -> %.1f ppm", mode, ppm, got)
			}
		}
	}
}

func TestEncodeFrame_Clamping(t *testing.T) {
	if got := Concentration(EncodeFrame(ModeInitiative, -5.0), ModeInitiative); got != 0 {
		t.Errorf("negative ppm should clamp to 0, got %v", got)
	}
	if got := Concentration(EncodeFrame(ModeInitiative, 1e9), ModeInitiative); got != 6553.5 {
		t.Errorf("overrange ppm should clamp to 6553.5, got %v", got)
	}
}

func TestReading_Sentinel(t *testing.T) {
	ok := Reading{PPM: 3.4, Status: StatusOK}
	if ok.Sentinel() != 3.4 || !ok.OK() {
		t.Error("OK reading should pass its value through")
	}

	for _, status := range []Status{StatusNoData, StatusChecksumError} {
		r := Reading{PPM: 99.9, Status: status}
		if r.Sentinel() != 0.0 {
			t.Errorf("%v reading should collapse to the 0.0 sentinel", status)
		}
		if r.OK() {
			t.Errorf("%v reading should not report OK", status)
		}
	}
}

func TestModeAndStatusNames(t *testing.T) {
	if ModeInitiative.String() != "INITIATIVE" || ModeQueryResponse.String() != "QUERY_RESPONSE" {
		t.Error("unexpected mode names")
	}
	if StatusOK.String() != "OK" || StatusNoData.String() != "NO_DATA" || StatusChecksumError.String() != "CHECKSUM_ERROR" {
		t.Error("unexpected status names")
	}
}
