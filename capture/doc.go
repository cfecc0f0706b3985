// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package capture records encoded wire frames to disk and plays them
// back.
//
// A capture is a directory containing a single stream file: a small
// fixed-width header describing the chipset and compression, followed
// by a (optionally compressed) run of timestamped frame records. The
// writer satisfies sink.FrameSender, so a strip can show directly into
// a capture; the reader replays frames into any other FrameSender or
// hands them out one at a time for inspection.
//
// Captures are byte-exact: what went over the wire is what is stored,
// framing and all. That makes them useful both for offline protocol
// debugging and for regression-testing encoder output against known
// good recordings.
package capture
