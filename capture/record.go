// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

// Wire layout of a capture stream. All fields are packed big-endian
// with no padding (see the struc tags); the header is written
// uncompressed, the record headers live inside the compressed region.

const (
	// captureMagic is "LWCF" as a big-endian uint32.
	captureMagic = 0x4C574346

	// captureVersion is the current stream format version.
	captureVersion = 1

	// streamFileName is the stream file inside a capture directory.
	streamFileName = "frames.bin"
)

// fileHeader opens every capture stream. 12 bytes, uncompressed.
type fileHeader struct {
	Magic       uint32 `struc:"uint32"`
	Version     uint8  `struc:"uint8"`
	Compression uint8  `struc:"uint8"`
	Chipset     uint8  `struc:"uint8"`
	White       uint8  `struc:"uint8"`
	NumLEDs     uint32 `struc:"uint32"`
}

// recordHeader precedes each frame's bytes in the record stream.
type recordHeader struct {
	// OffsetMicros is the frame's offset from the start of the
	// capture, in microseconds.
	OffsetMicros uint64 `struc:"uint64"`

	// Size is the length of the frame data that follows, in bytes.
	Size uint32 `struc:"uint32"`
}
