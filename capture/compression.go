// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Compression is the stream compression applied to the frame records
// in a capture file. The file header is always stored uncompressed so
// a reader can identify the stream before choosing a decompressor.
type Compression uint8

const (
	// CompressionNone stores frame records verbatim.
	CompressionNone Compression = iota

	// CompressionSnappy wraps the record stream in a snappy framing
	// stream. Fast, modest ratio; the default for live recording.
	CompressionSnappy

	// CompressionGzip wraps the record stream in gzip. Slower, better
	// ratio; suited to captures kept around long-term.
	CompressionGzip
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionSnappy:
		return "snappy"
	case CompressionGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

// wrapWriter layers c's compressor over base. The returned closer
// finalizes the compression stream; it does not close base.
func (c Compression) wrapWriter(base io.Writer) (io.Writer, io.Closer, error) {
	switch c {
	case CompressionNone:
		return base, nopCloser{}, nil
	case CompressionSnappy:
		sw := snappy.NewBufferedWriter(base)
		return sw, sw, nil
	case CompressionGzip:
		gw := gzip.NewWriter(base)
		return gw, gw, nil
	default:
		return nil, nil, errors.Errorf("unknown compression %d", c)
	}
}

// wrapReader layers c's decompressor over base.
func (c Compression) wrapReader(base io.Reader) (io.Reader, error) {
	switch c {
	case CompressionNone:
		return base, nil
	case CompressionSnappy:
		return snappy.NewReader(base), nil
	case CompressionGzip:
		gr, err := gzip.NewReader(base)
		if err != nil {
			return nil, errors.Wrap(err, "opening gzip stream")
		}
		return gr, nil
	default:
		return nil, errors.Errorf("unknown compression %d", c)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// CompressionFlag is a pflag.Value that parses a Compression from its
// string name.
type CompressionFlag Compression

var _ pflag.Value = (*CompressionFlag)(nil)

func (f *CompressionFlag) String() string { return Compression(*f).String() }

func (f *CompressionFlag) Type() string { return "capture.Compression" }

func (f *CompressionFlag) Set(v string) error {
	for _, c := range []Compression{CompressionNone, CompressionSnappy, CompressionGzip} {
		if c.String() == v {
			*f = CompressionFlag(c)
			return nil
		}
	}
	return errors.Errorf("unknown compression %q", v)
}

// CompressionFlagValues returns the list of possible values for a
// CompressionFlag.
func CompressionFlagValues() string {
	return strings.Join([]string{
		CompressionNone.String(),
		CompressionSnappy.String(),
		CompressionGzip.String(),
	}, ", ")
}
