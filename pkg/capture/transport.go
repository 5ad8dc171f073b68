// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package capture

import "io"

// Transport replays a capture stream as a ze15.Transport, letting the
// driver decode a recorded session offline. Reads serve the recorded bytes
// in order as fast as the driver asks for them; chunk timing offsets are
// preserved in the file but not re-enacted.
type Transport struct {
	reader  *Reader
	pending []byte
	done    bool
}

// NewTransport creates a replay transport over a capture stream.
func NewTransport(r io.Reader) *Transport {
	return &Transport{reader: NewReader(r)}
}

// fill pulls chunks until bytes are pending or the capture is exhausted.
func (t *Transport) fill() {
	for len(t.pending) == 0 && !t.done {
		chunk, err := t.reader.Next()
		if err != nil {
			t.done = true
			return
		}
		t.pending = append(t.pending, chunk.Data...)
	}
}

// Read serves up to len(p) recorded bytes, returning zero at end of
// capture the way a live transport returns zero on timeout.
func (t *Transport) Read(p []byte) (int, error) {
	t.fill()
	if len(t.pending) == 0 {
		return 0, nil
	}
	n := copy(p, t.pending)
	t.pending = t.pending[n:]
	return n, nil
}

// Write discards request bytes; a recording has nobody to answer them.
func (t *Transport) Write(p []byte) (int, error) {
	return len(p), nil
}

// BytesAvailable reports how many recorded bytes remain unserved.
func (t *Transport) BytesAvailable() int {
	t.fill()
	return len(t.pending)
}

// ResetInputBuffer is a no-op: flushing is meaningless offline, and
// honoring it would drop recorded frames the replay exists to decode.
func (t *Transport) ResetInputBuffer() error {
	return nil
}

// Exhausted reports whether the capture has been fully served.
func (t *Transport) Exhausted() bool {
	t.fill()
	return t.done && len(t.pending) == 0
}
