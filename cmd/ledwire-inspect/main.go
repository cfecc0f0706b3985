// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// ledwire-inspect dumps the contents of a capture directory.
//
// For each recorded frame it prints the frame's index, timestamp
// offset, and size, optionally followed by a hex dump of the frame's
// wire bytes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/lumenware/ledwire/capture"
	"github.com/lumenware/ledwire/support/fmtutil"
)

var (
	dump  = pflag.Bool("dump", false, "Hex-dump the bytes of each frame.")
	limit = pflag.Int("limit", 0, "Stop after this many frames (0 for all).")
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <capture-dir>...\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	for _, path := range pflag.Args() {
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to inspect %q: %s\n", path, err)
			os.Exit(1)
		}
	}
}

func inspect(path string) error {
	r, err := capture.OpenReader(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: chipset=%s leds=%d white=%t compression=%s\n",
		path, r.Chipset(), r.NumLEDs(), r.White(), r.Compression())

	for i := 0; *limit == 0 || i < *limit; i++ {
		f, err := r.NextFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		fmt.Printf("  frame #%d @%s (%d byte(s))\n", i, f.Offset, len(f.Data))
		if *dump {
			fmt.Print(fmtutil.Hex(f.Data))
		}
	}
	return nil
}
