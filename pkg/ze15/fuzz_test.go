// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import (
	"bytes"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// TestFuzzSynchronizer_RandomBytes feeds random streams to the synchronizer
// and verifies it never panics and never emits anything but a 9-byte
// candidate starting with the marker.
func TestFuzzSynchronizer_RandomBytes(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		tr := &fakeTransport{}
		length := rng.Intn(256) + 1
		data := make([]byte, length)
		rng.Read(data)
		tr.feed(data...)

		s := NewSynchronizer(tr)
		for {
			frame, err := s.Next()
			if err != nil {
				break
			}
			if !frame.WellFormed() {
				t.Fatalf("round %d: synchronizer emitted frame without start marker: % X", i, frame.Bytes())
			}
		}
	}
}

// TestFuzzSynchronizer_FrameInNoise embeds an encoded frame in marker-free
// noise and verifies the synchronizer always recovers it intact.
func TestFuzzSynchronizer_FrameInNoise(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		mode := ModeInitiative
		if rng.Intn(2) == 1 {
			mode = ModeQueryResponse
		}
		ppm := float64(rng.Intn(5001)) * ConcentrationStep
		frame := EncodeFrame(mode, ppm)

		// Leading noise that cannot be mistaken for a start marker.
		noise := make([]byte, rng.Intn(64))
		for j := range noise {
			noise[j] = byte(rng.Intn(0xFF)) // 0x00-0xFE
		}

		tr := &fakeTransport{}
		tr.feed(noise...)
		tr.feed(frame.Bytes()...)

		s := NewSynchronizer(tr)
		got, err := s.Next()
		if err != nil {
			t.Fatalf("round %d: Next: %v", i, err)
		}
		if !bytes.Equal(got.Bytes(), frame.Bytes()) {
			t.Fatalf("round %d: recovered % X, want % X", i, got.Bytes(), frame.Bytes())
		}
		if !got.Valid() {
			t.Fatalf("round %d: recovered frame should validate", i)
		}
	}
}

// TestFuzzRoundTrip encodes random quantized concentrations in both modes
// and verifies decode reproduces them exactly.
func TestFuzzRoundTrip(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		counts := uint16(rng.Intn(1 << 16))
		want := float64(counts) * ConcentrationStep

		for _, mode := range []Mode{ModeInitiative, ModeQueryResponse} {
			f := EncodeFrame(mode, want)
			if !f.Valid() {
				t.Fatalf("round %d: encoded frame invalid: % X", i, f.Bytes())
			}
			if got := Concentration(f, mode); got != want {
				t.Fatalf("round %d: %v round trip %v -> %v", i, mode, want, got)
			}
		}
	}
}
