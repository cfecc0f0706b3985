// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package encoder converts wire-order pixel component bytes into the
// exact byte stream each LED chipset protocol requires.
//
// Every Encode function is a pure, stateless transform: start frame,
// per-LED frames, end frame, written in order to a dataio.Writer. The
// input is a flat byte slice of component values that are already in
// the protocol's wire channel order and already brightness- and
// gamma-scaled upstream; the encoders write those bytes into protocol
// positions without inspecting their meaning. Input slices whose
// length is not a multiple of the pixel width have their trailing
// partial pixel ignored.
//
// The encoders perform no input validation. Out-of-range brightness
// values are masked to the protocol's bit width, never rejected, and
// the only error an encoder can return is a write error from the
// sink. Per-LED brightness slices must be at least as long as the
// pixel count; this is a caller precondition, not a runtime check.
//
// Framing byte counts are load-bearing: the end-frame formulas differ
// between closely related chipsets (APA102's "+1 dword" versus
// LPD6803's bare n/32) and an off-by-one corrupts trailing pixels on
// real hardware even though the output "works" on short strips.
package encoder
