// SPDX-License-Identifier: MIT
// Copyright (c) 2026 the ze15co-go authors

package ze15

import "errors"

// Protocol failure sentinels. All three are transient and non-fatal: the
// read orchestrator retries within its cycle budget and then degrades to the
// zero reading rather than propagating them to callers of ReadCO.
var (
	// ErrNoData reports that the stream dried up before a start marker was
	// found.
	ErrNoData = errors.New("no data available before read deadline")

	// ErrTruncatedFrame reports a start marker that was not followed by a
	// full 8-byte body before the transport's read deadline.
	ErrTruncatedFrame = errors.New("truncated frame after start marker")

	// ErrChecksum reports a well-formed frame whose integrity byte does not
	// match the computed checksum.
	ErrChecksum = errors.New("checksum mismatch")
)
