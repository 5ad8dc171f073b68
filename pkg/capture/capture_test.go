// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package capture

import (
	"bytes"
	"io"
	"testing"

	"github.com/ageagainstthemachine/ze15co-go/pkg/ze15"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	bursts := [][]byte{
		{0x01, 0x02, 0x03},
		{0xFF, 0x86},
		{0x00},
	}
	for _, b := range bursts {
		if err := w.WriteChunk(b); err != nil {
			t.Fatalf("WriteChunk: %v", err)
		}
	}
	if err := w.WriteChunk(nil); err != nil {
		t.Fatalf("WriteChunk(nil): %v", err)
	}

	r := NewReader(&buf)
	for i, want := range bursts {
		chunk, err := r.Next()
		if err != nil {
			t.Fatalf("chunk %d: %v", i, err)
		}
		if !bytes.Equal(chunk.Data, want) {
			t.Errorf("chunk %d = % X, want % X", i, chunk.Data, want)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next after last chunk = %v, want io.EOF", err)
	}
}

func TestTransport_ServesAcrossChunkBoundaries(t *testing.T) {
	// One frame split across two recorded bursts must come back as a
	// contiguous stream.
	frame := ze15.EncodeFrame(ze15.ModeInitiative, 60.0).Bytes()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteChunk(frame[:4]); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteChunk(frame[4:]); err != nil {
		t.Fatal(err)
	}

	tr := NewTransport(&buf)
	if tr.BytesAvailable() == 0 {
		t.Fatal("transport should report recorded bytes")
	}

	s := ze15.NewSynchronizer(tr)
	got, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !bytes.Equal(got.Bytes(), frame) {
		t.Errorf("recovered % X, want % X", got.Bytes(), frame)
	}
	if !tr.Exhausted() {
		t.Error("capture should be exhausted after the frame is consumed")
	}
}

func TestTransport_DriverReplay(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, ppm := range []float64{1.0, 2.0, 3.0} {
		if err := w.WriteChunk(ze15.EncodeFrame(ze15.ModeInitiative, ppm).Bytes()); err != nil {
			t.Fatal(err)
		}
	}

	tr := NewTransport(&buf)
	d := ze15.New(tr, ze15.WithWarmupTime(0))

	// ResetInputBuffer is a no-op, so the post-warmup flush must not eat
	// recorded frames.
	for _, want := range []float64{1.0, 2.0, 3.0} {
		r := d.Read()
		if !r.OK() || r.PPM != want {
			t.Fatalf("replay read = %+v, want %.1f ppm", r, want)
		}
	}

	if r := d.Read(); r.Status != ze15.StatusNoData {
		t.Errorf("read past end of capture = %v, want NO_DATA", r.Status)
	}
}
