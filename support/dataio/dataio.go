// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package dataio defines byte-granular reader and writer interfaces.
//
// Writer is the byte sink that the chipset encoders target: anything
// that can accept both single bytes and byte runs. A bytes.Buffer, a
// bufio.Writer wrapping a SPI device node, and a test capture buffer
// all satisfy it directly.
package dataio

import (
	"io"
)

// Writer can write both individual bytes and sequences of bytes.
type Writer interface {
	io.Writer
	io.ByteWriter
}

// Reader can read both individual bytes and sequences of bytes.
type Reader interface {
	io.Reader
	io.ByteReader
}

// MakeWriter returns a Writer for w.
//
// If w already satisfies Writer it is returned directly; otherwise it
// is wrapped in a shim that simulates WriteByte with 1-byte Write
// calls.
func MakeWriter(w io.Writer) Writer {
	if dw, ok := w.(Writer); ok {
		return dw
	}
	return &simulatedWriter{w}
}

type simulatedWriter struct {
	io.Writer
}

func (w *simulatedWriter) WriteByte(c byte) error {
	d := [1]byte{c}
	switch amt, err := w.Write(d[:]); {
	case err != nil:
		return err
	case amt != 1:
		panic("invalid Writer implementation")
	default:
		return nil
	}
}

// MakeReader returns a Reader for r.
//
// If r already satisfies Reader it is returned directly; otherwise it
// is wrapped in a shim that simulates ReadByte with 1-byte Read calls.
func MakeReader(r io.Reader) Reader {
	if dr, ok := r.(Reader); ok {
		return dr
	}
	return &simulatedReader{r}
}

type simulatedReader struct {
	io.Reader
}

func (r *simulatedReader) ReadByte() (byte, error) {
	var d [1]byte
	if _, err := io.ReadFull(r.Reader, d[:]); err != nil {
		return 0, err
	}
	return d[0], nil
}
