// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package strip

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	stripShows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_shows",
		Help: "Count of frame refreshes attempted by a strip.",
	},
		[]string{"chipset"})

	stripShowErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_show_errors",
		Help: "Count of frame refreshes that failed to encode or send.",
	},
		[]string{"chipset"})
)

// RegisterMonitoring registers all of this package's monitoring
// metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		stripShows,
		stripShowErrors,
	)
}

func (s *Strip) labels() prometheus.Labels {
	return prometheus.Labels{"chipset": s.cfg.Chipset.String()}
}
