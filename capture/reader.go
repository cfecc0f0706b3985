// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/lumenware/ledwire/chipset"
	"github.com/lumenware/ledwire/sink"
	"github.com/lumenware/ledwire/support/byteslicereader"
)

// Frame is one recorded wire frame.
type Frame struct {
	// Offset is the frame's offset from the start of the capture.
	Offset time.Duration

	// Data is the encoded frame. It aliases the Reader's backing
	// buffer and is valid until the Reader is discarded.
	Data []byte
}

// Reader reads frames back out of a capture directory.
//
// The record stream is decompressed into memory when the Reader is
// opened; NextFrame returns windows into that buffer without copying.
type Reader struct {
	chipset     chipset.Type
	numLEDs     int
	white       bool
	compression Compression

	records byteslicereader.R
	frames  int
}

// OpenReader opens the capture directory at path.
func OpenReader(path string) (*Reader, error) {
	fd, err := os.Open(filepath.Join(path, streamFileName))
	if err != nil {
		return nil, errors.Wrap(err, "opening stream file")
	}
	defer fd.Close()

	var hdr fileHeader
	if err := struc.Unpack(fd, &hdr); err != nil {
		return nil, errors.Wrap(err, "reading stream header")
	}
	switch {
	case hdr.Magic != captureMagic:
		return nil, errors.Errorf("bad magic 0x%08X", hdr.Magic)
	case hdr.Version != captureVersion:
		return nil, errors.Errorf("unsupported stream version %d", hdr.Version)
	}

	comp := Compression(hdr.Compression)
	stream, err := comp.wrapReader(fd)
	if err != nil {
		return nil, err
	}
	records, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrap(err, "reading record stream")
	}

	return &Reader{
		chipset:     chipset.Type(hdr.Chipset),
		numLEDs:     int(hdr.NumLEDs),
		white:       hdr.White != 0,
		compression: comp,
		records:     byteslicereader.R{Buffer: records},
	}, nil
}

// Chipset returns the chipset the capture was recorded for.
func (r *Reader) Chipset() chipset.Type { return r.chipset }

// NumLEDs returns the strip length the capture was recorded for.
func (r *Reader) NumLEDs() int { return r.numLEDs }

// White reports whether the recorded strip carried a white channel.
func (r *Reader) White() bool { return r.white }

// Compression returns the stream compression the capture was recorded
// with.
func (r *Reader) Compression() Compression { return r.compression }

// NextFrame returns the next frame in the capture, or io.EOF when the
// stream is exhausted.
func (r *Reader) NextFrame() (Frame, error) {
	if r.records.Remaining() == 0 {
		return Frame{}, io.EOF
	}

	var rec recordHeader
	if err := struc.Unpack(&r.records, &rec); err != nil {
		return Frame{}, errors.Wrapf(err, "reading record header (frame #%d)", r.frames)
	}
	data, err := r.records.Next(int(rec.Size))
	if err != nil {
		return Frame{}, errors.Wrapf(err, "truncated frame #%d (want %d byte(s), have %d)",
			r.frames, rec.Size, len(data))
	}

	r.frames++
	return Frame{
		Offset: time.Duration(rec.OffsetMicros) * time.Microsecond,
		Data:   data,
	}, nil
}

// Replay sends every remaining frame to s, in order, as fast as s will
// accept them. Recorded offsets are ignored; use NextFrame directly to
// pace playback.
func (r *Reader) Replay(s sink.FrameSender) error {
	for {
		f, err := r.NextFrame()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := s.SendFrame(f.Data); err != nil {
			return errors.Wrapf(err, "replaying frame #%d", r.frames-1)
		}
	}
}
