// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import "time"

// Synchronizer recovers 9-byte frame alignment from a continuous, possibly
// noisy serial stream. It scans buffered bytes one at a time, discarding
// everything up to a start marker, then reads exactly 8 more bytes to
// complete a candidate frame. Any corruption resynchronizes automatically:
// after a rejected candidate the scan simply resumes, and a stray start
// marker inside garbage becomes the next candidate start.
type Synchronizer struct {
	transport Transport

	// counters since construction
	discarded uint64
	truncated uint64
}

// NewSynchronizer creates a synchronizer reading from the given transport.
func NewSynchronizer(t Transport) *Synchronizer {
	return &Synchronizer{transport: t}
}

// Next assembles the next candidate frame from the stream. It returns
// ErrNoData when the buffered stream dries up before a start marker is
// seen, and ErrTruncatedFrame when a start marker is not followed by a full
// body before the transport's read deadline. A frame is only ever returned
// when exactly 9 bytes were read; validity is the caller's concern.
func (s *Synchronizer) Next() (*Frame, error) {
	var hdr [1]byte
	for {
		if s.transport.BytesAvailable() == 0 {
			return nil, ErrNoData
		}
		n, err := s.transport.Read(hdr[:])
		if err != nil || n == 0 {
			return nil, ErrNoData
		}
		if hdr[0] == StartByte {
			break
		}
		s.discarded++
	}

	f := &Frame{timestamp: time.Now()}
	f.raw[0] = StartByte
	for got := 1; got < FrameSize; {
		n, err := s.transport.Read(f.raw[got:])
		got += n
		if got >= FrameSize {
			break
		}
		if err != nil || n == 0 {
			s.truncated++
			return nil, ErrTruncatedFrame
		}
	}
	return f, nil
}

// Discarded returns how many non-marker bytes have been skipped while
// hunting for frame starts.
func (s *Synchronizer) Discarded() uint64 {
	return s.discarded
}

// Truncated returns how many candidate frames died short of 9 bytes.
func (s *Synchronizer) Truncated() uint64 {
	return s.truncated
}
