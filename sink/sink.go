// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package sink defines where encoded wire frames go.
//
// The chipset encoders write into any byte sink; this package wraps
// the destinations a frame ends up at once encoded: a SPI device node,
// a file, a capture stream, or an in-memory buffer for tests.
package sink

import (
	"bytes"
	"io"
)

// FrameSender accepts complete encoded wire frames, one per refresh.
type FrameSender interface {
	io.Closer

	// SendFrame transmits a single complete wire frame.
	//
	// The frame buffer is owned by the caller and may be reused after
	// SendFrame returns; implementations must not retain it.
	SendFrame(frame []byte) error
}

// MaxFrameSizer is optionally implemented by FrameSenders whose
// transport bounds the size of a single frame (datagram senders).
type MaxFrameSizer interface {
	// MaxFrameSize returns the largest frame the sender can transmit.
	MaxFrameSize() int
}

// MaxFrameSize returns s's advisory frame size bound, or 0 if s is
// unbounded.
func MaxFrameSize(s FrameSender) int {
	if m, ok := s.(MaxFrameSizer); ok {
		return m.MaxFrameSize()
	}
	return 0
}

// Writer returns a FrameSender that writes each frame to w.
//
// If w is an io.Closer (a SPI device node, a file), Close is forwarded
// to it; otherwise Close is a no-op.
func Writer(w io.Writer) FrameSender {
	return &writerSender{w: w}
}

type writerSender struct {
	w io.Writer
}

func (ws *writerSender) SendFrame(frame []byte) error {
	_, err := ws.w.Write(frame)
	return err
}

func (ws *writerSender) Close() error {
	if c, ok := ws.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Buffer is a FrameSender that retains every frame it is sent. It is
// intended for tests and offline rendering.
type Buffer struct {
	frames []*bytes.Buffer
}

var _ FrameSender = (*Buffer)(nil)

// SendFrame implements FrameSender.
func (b *Buffer) SendFrame(frame []byte) error {
	var buf bytes.Buffer
	buf.Write(frame)
	b.frames = append(b.frames, &buf)
	return nil
}

// Close implements FrameSender.
func (b *Buffer) Close() error { return nil }

// Count returns the number of frames sent so far.
func (b *Buffer) Count() int { return len(b.frames) }

// Frame returns the i'th sent frame, or nil if out of range.
func (b *Buffer) Frame(i int) []byte {
	if i < 0 || i >= len(b.frames) {
		return nil
	}
	return b.frames[i].Bytes()
}

// Resilient is a FrameSender that automatically reconnects on failure.
type Resilient struct {
	// Factory generates and connects a new FrameSender. On success, the
	// Resilient takes ownership of the result.
	Factory func() (FrameSender, error)

	// base is the currently-connected sender, or nil.
	base FrameSender
}

var _ FrameSender = (*Resilient)(nil)

// Connect causes r to try and open a new connection.
//
// If Connect fails and r already has an open connection, the open
// connection is left intact. If Connect succeeds, the previous
// connection is closed.
func (r *Resilient) Connect() error {
	base, err := r.Factory()
	if err != nil {
		return err
	}

	if r.base != nil {
		_ = r.Close()
	}
	r.base = base
	return nil
}

// SendFrame implements FrameSender. On send failure the connection is
// torn down; the next SendFrame will reconnect.
func (r *Resilient) SendFrame(frame []byte) error {
	if r.base == nil {
		if err := r.Connect(); err != nil {
			return err
		}
	}

	err := r.base.SendFrame(frame)
	if err != nil {
		_ = r.Close()
	}
	return err
}

// Close closes the current connection, if one is open.
func (r *Resilient) Close() error {
	if r.base == nil {
		return nil
	}

	err := r.base.Close()
	r.base = nil
	return err
}
