// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package sink

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sinkWriteFrames = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sink_write_frames",
		Help: "Count of wire frames written to a sink.",
	},
		[]string{"name"})

	sinkWriteBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sink_write_bytes",
		Help: "Count of wire bytes written to a sink.",
	},
		[]string{"name"})

	sinkWriteErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sink_write_errors",
		Help: "Count of errors encountered writing frames to a sink.",
	},
		[]string{"name"})
)

// RegisterMonitoring registers all of this package's monitoring
// metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		sinkWriteFrames,
		sinkWriteBytes,
		sinkWriteErrors,
	)
}

// Monitor wraps s in a shim that records frame, byte, and error counts
// under the supplied sink name.
func Monitor(name string, s FrameSender) FrameSender {
	return &monitoredSender{
		FrameSender: s,
		labels:      prometheus.Labels{"name": name},
	}
}

type monitoredSender struct {
	FrameSender
	labels prometheus.Labels
}

func (ms *monitoredSender) SendFrame(frame []byte) error {
	if err := ms.FrameSender.SendFrame(frame); err != nil {
		sinkWriteErrors.With(ms.labels).Inc()
		return err
	}

	sinkWriteFrames.With(ms.labels).Inc()
	sinkWriteBytes.With(ms.labels).Add(float64(len(frame)))
	return nil
}
