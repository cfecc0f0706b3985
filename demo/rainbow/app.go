// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package rainbow defines the logic for the "rainbow" demo app.
//
// This app drives a moving rainbow animation on a single LED strip,
// encoding each frame with the selected chipset protocol and sending
// it to a file, to stdout, or into a capture for later replay.
//
// This demonstrates how to configure a strip, generate pixel state
// mutations, and record the resulting wire frames.
package rainbow

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lumenware/ledwire/capture"
	"github.com/lumenware/ledwire/chipset"
	"github.com/lumenware/ledwire/pixel"
	"github.com/lumenware/ledwire/sink"
	"github.com/lumenware/ledwire/strip"
	"github.com/lumenware/ledwire/support/logging"
)

var (
	chipsetFlag = chipset.TypeFlag(chipset.APA102)
	compression = capture.CompressionFlag(capture.CompressionSnappy)

	numLEDs     = pflag.Int("leds", 60, "Number of LEDs on the strip.")
	fps         = pflag.Int("fps", 30, "Frames per second to render.")
	frames      = pflag.Int("frames", 0, "Number of frames to render (0 renders until interrupted).")
	brightness  = pflag.Int("brightness", 255, "Global brightness, 0-255.")
	gamma       = pflag.Bool("gamma", false, "Apply gamma-2.8 correction at show time.")
	auto        = pflag.Bool("auto-brightness", false, "Derive APA102/SK9822 global brightness from the frame content.")
	output      = pflag.String("output", "-", "Write raw frames to this file ('-' for stdout).")
	capturePath = pflag.String("capture", "", "Record frames to a capture directory instead of --output.")
	verbose     = pflag.Bool("verbose", false, "Enable debug logging.")
)

func init() {
	pflag.Var(&chipsetFlag, "chipset", "Chipset protocol to encode. One of: "+
		chipset.TypeFlagValues())
	pflag.Var(&compression, "compression", "Capture compression. One of: "+
		capture.CompressionFlagValues())
}

// Main is the main entry point.
func Main() {
	pflag.Parse()

	logger := buildLogger(*verbose)
	if err := mainImpl(logger); err != nil {
		logger.Errorf("Demo failed: %s", err)
		os.Exit(1)
	}
}

func mainImpl(logger logging.L) error {
	reg := prometheus.NewRegistry()
	sink.RegisterMonitoring(reg)
	strip.RegisterMonitoring(reg)
	capture.RegisterMonitoring(reg)

	ct := chipsetFlag.Value()
	sender, err := buildSender(ct, logger)
	if err != nil {
		return errors.Wrap(err, "creating frame sink")
	}

	s := strip.New(strip.Config{
		Chipset:        ct,
		NumLEDs:        *numLEDs,
		GammaCorrect:   *gamma,
		AutoBrightness: *auto,
		Logger:         logger,
	}, sink.Monitor("demo", sender))
	s.SetBrightness(uint8(*brightness))

	// Close even when the animation fails, so a capture sink always
	// commits the frames recorded up to the failure.
	runErr := run(s, logger)
	if err := sender.Close(); err != nil {
		return errors.Wrap(err, "finalizing frame sink")
	}
	return runErr
}

func buildLogger(verbose bool) logging.L {
	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := zcfg.Build()
	if err != nil {
		// The development config cannot actually fail to build.
		panic(err)
	}
	return l.Sugar()
}

func buildSender(ct chipset.Type, logger logging.L) (sink.FrameSender, error) {
	if *capturePath != "" {
		return capture.NewWriter(*capturePath, capture.WriterConfig{
			Compression: capture.Compression(compression),
			Logger:      logger,
		}, ct, *numLEDs, false)
	}

	if *output == "-" {
		return sink.Writer(os.Stdout), nil
	}
	fd, err := os.Create(*output)
	if err != nil {
		return nil, err
	}
	return sink.Writer(fd), nil
}

func run(s *strip.Strip, logger logging.L) error {
	interval := time.Second / time.Duration(*fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	logger.Infof("Rendering %d LED(s) at %d FPS.", s.Len(), *fps)

	var phase int
	for count := 0; *frames == 0 || count < *frames; count++ {
		for i := 0; i < s.Len(); i++ {
			s.SetPixel(i, wheel(uint8(phase+(i*256)/s.Len())))
		}
		phase = (phase + 1) % 256

		if err := s.Show(); err != nil {
			return err
		}

		select {
		case <-ticker.C:
		case <-sig:
			logger.Infof("Interrupted; stopping after %d frame(s).", count+1)
			return nil
		}
	}
	return nil
}

// wheel maps a position on the color wheel (0-255) to a fully
// saturated color, walking red -> green -> blue -> red.
func wheel(pos uint8) pixel.P {
	switch {
	case pos < 85:
		return pixel.P{Red: 255 - pos*3, Green: pos * 3}
	case pos < 170:
		pos -= 85
		return pixel.P{Green: 255 - pos*3, Blue: pos * 3}
	default:
		pos -= 170
		return pixel.P{Blue: 255 - pos*3, Red: pos * 3}
	}
}
