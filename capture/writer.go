// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/lumenware/ledwire/chipset"
	"github.com/lumenware/ledwire/sink"
	"github.com/lumenware/ledwire/support/logging"
	"github.com/lumenware/ledwire/support/stagingdir"
)

// WriterConfig configures a capture Writer.
type WriterConfig struct {
	// Compression selects the stream compression. Zero value is
	// CompressionNone.
	Compression Compression

	// TempDir is the directory used for staging. If empty, the system
	// temporary directory is used.
	TempDir string

	// Logger, if not nil, logs capture lifecycle events.
	Logger logging.L

	// nowFunc overrides time.Now for tests.
	nowFunc func() time.Time
}

func (cfg *WriterConfig) now() time.Time {
	if cfg.nowFunc != nil {
		return cfg.nowFunc()
	}
	return time.Now()
}

func (cfg *WriterConfig) logger() logging.L {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return logging.Nop
}

// Writer records frames to a capture directory.
//
// The capture is assembled in a staging directory and atomically moved
// to its destination on Close, so an abandoned recording never leaves
// a partial capture behind. Writer satisfies sink.FrameSender; frames
// sent to it are stamped with their offset from the first frame.
//
// Writer is not safe for concurrent use.
type Writer struct {
	cfg  WriterConfig
	dest string

	staging *stagingdir.D
	fd      *os.File
	buf     *bufio.Writer
	stream  io.Writer
	finish  io.Closer

	start  time.Time
	frames int64
	bytes  int64
}

var _ sink.FrameSender = (*Writer)(nil)

// NewWriter begins a capture that will be committed to the directory
// at dest on Close. The chipset and strip geometry are recorded in the
// stream header so a reader can interpret the frames.
func NewWriter(dest string, cfg WriterConfig, ct chipset.Type, numLEDs int, white bool) (*Writer, error) {
	staging, err := stagingdir.New(cfg.TempDir, filepath.Base(dest))
	if err != nil {
		return nil, errors.Wrap(err, "creating staging directory")
	}

	w := &Writer{
		cfg:     cfg,
		dest:    dest,
		staging: staging,
	}
	if err := w.open(ct, numLEDs, white); err != nil {
		_ = staging.Destroy()
		return nil, err
	}
	return w, nil
}

func (w *Writer) open(ct chipset.Type, numLEDs int, white bool) error {
	fd, err := os.Create(w.staging.Path(streamFileName))
	if err != nil {
		return errors.Wrap(err, "creating stream file")
	}
	w.fd = fd
	w.buf = bufio.NewWriter(fd)

	hdr := fileHeader{
		Magic:       captureMagic,
		Version:     captureVersion,
		Compression: uint8(w.cfg.Compression),
		Chipset:     uint8(ct),
		NumLEDs:     uint32(numLEDs),
	}
	if white {
		hdr.White = 1
	}
	if err := struc.Pack(w.buf, &hdr); err != nil {
		return errors.Wrap(err, "writing stream header")
	}

	w.stream, w.finish, err = w.cfg.Compression.wrapWriter(w.buf)
	if err != nil {
		return err
	}

	w.cfg.logger().Debugf("Recording %s capture (%d LEDs) to %q.", ct, numLEDs, w.dest)
	return nil
}

// SendFrame appends one frame to the capture. The first frame is
// recorded at offset zero; subsequent frames carry their offset from
// the first.
func (w *Writer) SendFrame(frame []byte) error {
	if w.staging == nil {
		return errors.New("capture writer is closed")
	}

	now := w.cfg.now()
	if w.frames == 0 {
		w.start = now
	}

	rec := recordHeader{
		OffsetMicros: uint64(now.Sub(w.start) / time.Microsecond),
		Size:         uint32(len(frame)),
	}
	if err := struc.Pack(w.stream, &rec); err != nil {
		return errors.Wrap(err, "writing record header")
	}
	if _, err := w.stream.Write(frame); err != nil {
		return errors.Wrap(err, "writing frame data")
	}

	w.frames++
	w.bytes += int64(len(frame))
	capturedFrames.Inc()
	capturedBytes.Add(float64(len(frame)))
	return nil
}

// Frames returns the number of frames recorded so far.
func (w *Writer) Frames() int64 { return w.frames }

// Close finalizes the stream and commits the capture to its
// destination. If finalization fails, the staged capture is destroyed
// and the destination is left untouched.
func (w *Writer) Close() error {
	if w.staging == nil {
		return nil
	}
	staging := w.staging
	w.staging = nil

	err := func() error {
		if err := w.finish.Close(); err != nil {
			return errors.Wrap(err, "finalizing compression stream")
		}
		if err := w.buf.Flush(); err != nil {
			return errors.Wrap(err, "flushing stream file")
		}
		if err := w.fd.Close(); err != nil {
			return errors.Wrap(err, "closing stream file")
		}
		return nil
	}()
	if err != nil {
		_ = staging.Destroy()
		return err
	}

	if err := staging.Commit(w.dest); err != nil {
		_ = staging.Destroy()
		return err
	}

	w.cfg.logger().Infof("Committed capture of %d frame(s) (%d byte(s)) to %q.",
		w.frames, w.bytes, w.dest)
	return nil
}

// Discard abandons the capture, deleting the staged data. It is a
// no-op after Close.
func (w *Writer) Discard() error {
	if w.staging == nil {
		return nil
	}
	staging := w.staging
	w.staging = nil

	_ = w.fd.Close()
	return staging.Destroy()
}
