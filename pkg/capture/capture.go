// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

// Package capture records raw serial streams to a file and plays them back
// through the driver offline.
//
// A capture is a plain concatenation of CBOR-encoded chunks, each holding
// one burst of bytes as it came off the wire together with its offset from
// the start of the recording. The format is append-only and survives
// truncation: a reader simply stops at the first incomplete chunk.
package capture

import (
	"errors"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Chunk is one captured burst of raw serial bytes.
type Chunk struct {
	// OffsetMS is milliseconds since the start of the recording.
	OffsetMS uint64 `cbor:"1,keyasint"`

	// Data is the burst exactly as read from the transport.
	Data []byte `cbor:"2,keyasint"`
}

// Writer appends chunks to a capture stream.
type Writer struct {
	enc   *cbor.Encoder
	start time.Time
}

// NewWriter creates a writer recording to w, with the offset clock
// starting now.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		enc:   cbor.NewEncoder(w),
		start: time.Now(),
	}
}

// WriteChunk appends one burst of bytes. Empty bursts are dropped.
func (w *Writer) WriteChunk(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	chunk := Chunk{
		OffsetMS: uint64(time.Since(w.start) / time.Millisecond),
		Data:     data,
	}
	return w.enc.Encode(chunk)
}

// Reader decodes a capture stream chunk by chunk.
type Reader struct {
	dec *cbor.Decoder
}

// NewReader creates a reader over a capture stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: cbor.NewDecoder(r)}
}

// Next returns the next chunk, or io.EOF at the end of the capture. A
// trailing incomplete chunk is treated as end of capture.
func (r *Reader) Next() (*Chunk, error) {
	var chunk Chunk
	if err := r.dec.Decode(&chunk); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	return &chunk, nil
}
