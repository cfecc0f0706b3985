// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package byteslicereader offers R, a slice-backed reader with
// zero-copy accessors.
//
// The capture reader walks a decompressed stream file held in memory;
// Peek and Next let it hand frame payloads to callers as windows into
// the backing slice instead of copying every frame. The returned
// slices alias the backing buffer, so the buffer must outlive them and
// must not be recycled while references remain.
package byteslicereader

import (
	"io"

	"github.com/pkg/errors"
)

// R is an io.Reader over a byte slice that additionally exposes
// operations returning sections of the backing slice directly.
//
// R also satisfies io.ByteReader and io.Seeker, at the cost of copying
// for the standard Read path. R can be copied to snapshot its current
// position.
type R struct {
	// Buffer is the backing buffer for this reader.
	Buffer []byte

	// AlwaysCopy, if true, causes the zero-copy methods to return copies
	// of their backing data instead of direct references. Data returned
	// by any method of R is then owned by the caller.
	AlwaysCopy bool

	// pos is the reader's position within Buffer.
	pos int64
}

var _ interface {
	io.Reader
	io.ByteReader
	io.Seeker
} = (*R)(nil)

func (r *R) remainingSlice() []byte {
	if r.pos >= int64(len(r.Buffer)) {
		return nil
	}
	return r.Buffer[r.pos:]
}

// Remaining returns the number of bytes left from the current position.
func (r *R) Remaining() int { return len(r.remainingSlice()) }

// Read implements io.Reader. Read copies data.
func (r *R) Read(b []byte) (amt int, err error) {
	remaining := r.remainingSlice()
	amt = copy(b, remaining)

	r.pos += int64(amt)
	if r.pos >= int64(len(r.Buffer)) {
		err = io.EOF
	}
	return
}

// ReadByte implements io.ByteReader.
func (r *R) ReadByte() (b byte, err error) {
	if r.pos >= int64(len(r.Buffer)) {
		return 0, io.EOF
	}

	b, r.pos = r.Buffer[r.pos], r.pos+1
	return
}

// Seek implements io.Seeker.
func (r *R) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = r.pos + offset
	case io.SeekEnd:
		newPos = int64(len(r.Buffer)) + offset
	}

	if newPos < 0 || newPos > int64(len(r.Buffer)) {
		return r.pos, errors.New("seek outside of bounds")
	}

	r.pos = newPos
	return r.pos, nil
}

// Peek returns the next n bytes in r without advancing it.
//
// Peek returns a slice of the underlying Buffer unless AlwaysCopy is
// true. If fewer than n bytes remain, Peek returns as many as possible.
func (r *R) Peek(n int) []byte {
	v := r.remainingSlice()
	if n < len(v) {
		v = v[:n]
	}

	if r.AlwaysCopy {
		v = append([]byte(nil), v...)
	}
	return v
}

// Next returns the next n bytes in r, advancing r.
//
// Next is the zero-copy equivalent of Read; it returns a slice of the
// underlying Buffer unless AlwaysCopy is true. If fewer than n bytes
// remain, Next returns what it can along with io.EOF. Next never
// returns an error when all requested bytes are returned.
func (r *R) Next(n int) (v []byte, err error) {
	v = r.remainingSlice()
	if n < len(v) {
		v = v[:n]
	} else if n > len(v) {
		err = io.EOF
	}

	if r.AlwaysCopy {
		v = append([]byte(nil), v...)
	}

	r.pos += int64(len(v))
	return
}
