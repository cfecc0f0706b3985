// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	"fmt"
)

// Order is the byte order in which a pixel's color channels appear on
// the physical bus.
//
// Many chipsets do not take R, G, B: APA102-family parts want B, G, R;
// LPD8806 wants G, R, B. The white channel, when present, always
// follows the three color channels.
type Order int

// Channel orders, named by the on-wire byte sequence.
const (
	OrderRGB Order = iota
	OrderRBG
	OrderGRB
	OrderGBR
	OrderBRG
	OrderBGR
)

// orderIndices maps each Order to the wire position of the (R, G, B)
// channels: the R channel lands at offset idx[0], G at idx[1], B at
// idx[2].
var orderIndices = [...][3]int{
	OrderRGB: {0, 1, 2},
	OrderRBG: {0, 2, 1},
	OrderGRB: {1, 0, 2},
	OrderGBR: {2, 0, 1},
	OrderBRG: {1, 2, 0},
	OrderBGR: {2, 1, 0},
}

var orderNames = [...]string{
	OrderRGB: "RGB",
	OrderRBG: "RBG",
	OrderGRB: "GRB",
	OrderGBR: "GBR",
	OrderBRG: "BRG",
	OrderBGR: "BGR",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// put writes p's color channels into dst (len >= 3) in wire order.
func (o Order) put(dst []byte, p P) {
	idx := &orderIndices[o]
	dst[idx[0]] = p.Red
	dst[idx[1]] = p.Green
	dst[idx[2]] = p.Blue
}

// get reads a wire-ordered channel triple from src (len >= 3).
func (o Order) get(src []byte) (p P) {
	idx := &orderIndices[o]
	p.Red = src[idx[0]]
	p.Green = src[idx[1]]
	p.Blue = src[idx[2]]
	return
}
