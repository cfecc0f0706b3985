// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

// EncodeWS2801 encodes pixels (3 bytes per LED, R/G/B wire order) as a
// WS2801 frame. The protocol has no framing at all; latching is
// timing-based at the transport layer.
func EncodeWS2801(pixels []byte, w dataio.Writer) error {
	numLEDs := len(pixels) / 3
	_, err := w.Write(pixels[:numLEDs*3])
	return err
}

// EncodeWS2803 is an alias for EncodeWS2801. The WS2803 shares the
// wire format exactly; only its nominal clock speed differs, and that
// is a transport concern.
func EncodeWS2803(pixels []byte, w dataio.Writer) error {
	return EncodeWS2801(pixels, w)
}
