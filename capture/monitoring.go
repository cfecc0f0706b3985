// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	capturedFrames = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_frames",
		Help: "Number of frames recorded to captures.",
	})

	capturedBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "capture_bytes",
		Help: "Number of frame bytes recorded to captures.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics
// with the supplied registerer.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		capturedFrames,
		capturedBytes,
	)
}
