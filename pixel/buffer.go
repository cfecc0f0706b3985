// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

// Buffer holds the wire-order component bytes for a series of
// consecutive pixels. It is used for minimal-copy frame encoding: its
// Bytes output can be handed to a chipset encoder directly.
type Buffer struct {
	// Order is the channel order pixels are stored in.
	//
	// Adjusting this value does not reorder already-stored data. The
	// user must call Reset and repopulate afterwards.
	Order Order

	// White, if true, stores a fourth (white) channel byte after the
	// three color channels.
	White bool

	buf []byte
}

// Len returns the number of pixels allocated in pb.
func (pb *Buffer) Len() int { return len(pb.buf) / pb.pixelSize() }

// Reset clears the buffer and allocates room for size pixels.
//
// If the underlying buffer is already large enough, it will be reused;
// otherwise, a new buffer is allocated.
func (pb *Buffer) Reset(size int) {
	pb.resetBuffer(size, true)
}

// UseBytes loads buf directly into this Buffer without copying.
//
// buf may be retained and used by pb indefinitely, and should not be
// reused while pb is active.
func (pb *Buffer) UseBytes(buf []byte) { pb.buf = buf }

func (pb *Buffer) resetBuffer(size int, zero bool) {
	bytesNeeded := size * pb.pixelSize()
	if cap(pb.buf) < bytesNeeded {
		pb.buf = make([]byte, bytesNeeded)
		return
	}

	pb.buf = pb.buf[:bytesNeeded]
	if zero {
		for i := range pb.buf {
			pb.buf[i] = 0
		}
	}
}

// Bytes returns the raw wire-order bytes for this buffer.
func (pb *Buffer) Bytes() []byte { return pb.buf }

// Pixel returns the logical pixel value at index i.
//
// If i is out of bounds, Pixel returns a zero value.
func (pb *Buffer) Pixel(i int) (p P) {
	ps := pb.pixelSize()
	offset := i * ps
	if offset < 0 || offset >= len(pb.buf) {
		return
	}

	p = pb.Order.get(pb.buf[offset:])
	if pb.White {
		p.White = pb.buf[offset+3]
	}
	return
}

// SetPixel sets the pixel value at index i, storing its channels in
// wire order.
//
// If i is out of bounds, SetPixel does nothing.
func (pb *Buffer) SetPixel(i int, p P) {
	ps := pb.pixelSize()
	offset := i * ps
	if offset < 0 || offset >= len(pb.buf) {
		return
	}

	pb.Order.put(pb.buf[offset:], p)
	if pb.White {
		pb.buf[offset+3] = p.White
	}
}

// SetPixels sets the Buffer's content to the set of pixels provided.
func (pb *Buffer) SetPixels(pixels ...P) {
	// No need to zero; every byte is overwritten.
	pb.resetBuffer(len(pixels), false)

	for i, p := range pixels {
		pb.SetPixel(i, p)
	}
}

// CloneFrom clones the state of other efficiently.
func (pb *Buffer) CloneFrom(other *Buffer) {
	pb.Order = other.Order
	pb.White = other.White
	pb.resetBuffer(other.Len(), false)
	copy(pb.buf, other.buf)
}

// Gamma shifts every stored component through the gamma-2.8 table.
// This is more efficient than correcting each pixel individually.
func (pb *Buffer) Gamma() {
	for i, v := range pb.buf {
		pb.buf[i] = gamma2_8[v]
	}
}

// Scale scales every stored component by an 8-bit factor, where 255 is
// identity.
func (pb *Buffer) Scale(s uint8) {
	if s == 255 {
		return
	}
	for i, v := range pb.buf {
		pb.buf[i] = scale8(v, s)
	}
}

func (pb *Buffer) pixelSize() int {
	if pb.White {
		return 4
	}
	return 3
}
