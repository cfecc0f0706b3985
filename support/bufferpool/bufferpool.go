// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package bufferpool maintains a pool of reusable wire-frame buffers.
//
// Encoding a frame requires a scratch buffer whose size depends on the
// chipset and LED count. Strips encode once per refresh, so recycling
// buffers keeps the per-frame allocation count at zero in the steady
// state.
package bufferpool

import (
	"bytes"
	"sync"
)

// Pool maintains a pool of frame buffers, allocating a new one when
// none is available.
type Pool struct {
	base sync.Pool
}

// Get returns a reset Buffer.
//
// The caller should return the buffer to the pool by calling its
// Release method when done with it.
func (p *Pool) Get() *Buffer {
	b, ok := p.base.Get().(*Buffer)
	if !ok {
		b = &Buffer{}
	}
	b.pool = p
	b.Reset()
	return b
}

// Buffer is a frame buffer that can be released back into its Pool for
// reuse.
//
// Buffer embeds a bytes.Buffer, so it satisfies dataio.Writer and can
// be handed to the chipset encoders directly. Failure to Release a
// Buffer will not leak memory; it only prevents reuse.
type Buffer struct {
	bytes.Buffer

	pool *Pool
}

// Release returns b to its pool. b must not be used after Release.
func (b *Buffer) Release() {
	if b.pool == nil {
		return
	}
	pool := b.pool
	b.pool = nil
	pool.base.Put(b)
}
