// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

// Transport is the byte-level serial collaborator the driver reads frames
// from and writes requests to. Implementations must enforce a finite read
// deadline: Read may return fewer bytes than requested (including zero) on
// timeout but must never block indefinitely.
//
// The driver owns the transport's receive buffer exclusively for the
// duration of each read call; callers must serialize access.
type Transport interface {
	// Write sends the buffer to the sensor.
	Write(p []byte) (int, error)

	// Read fills up to len(p) bytes, returning short (possibly zero) when
	// the read deadline expires.
	Read(p []byte) (int, error)

	// BytesAvailable reports how many buffered unread bytes can be served
	// without blocking.
	BytesAvailable() int

	// ResetInputBuffer discards buffered but unread bytes.
	ResetInputBuffer() error
}
