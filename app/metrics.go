// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Phases of a frame.
const (
	PhaseLayout = "layout"
	PhaseEvents = "events"
	PhaseDraw   = "draw"
	PhaseReact  = "react"
)

// Metrics collects the timings of frames.
type Metrics struct {
	phases   *prometheus.HistogramVec
	layouts  *prometheus.CounterVec
	messages prometheus.Counter
	frames   prometheus.Counter
}

// NewMetrics returns Metrics registered with reg. A nil reg leaves
// the metrics unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		phases: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "retained",
			Subsystem: "frame",
			Name:      "phase_seconds",
			Help:      "Duration of each phase of a user interface frame.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}, []string{"phase"}),
		layouts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "retained",
			Subsystem: "frame",
			Name:      "layouts_total",
			Help:      "Number of layouts, by whether they were reused from the previous frame.",
		}, []string{"cache"}),
		messages: f.NewCounter(prometheus.CounterOpts{
			Namespace: "retained",
			Subsystem: "frame",
			Name:      "messages_total",
			Help:      "Number of messages produced by widgets.",
		}),
		frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: "retained",
			Subsystem: "frame",
			Name:      "frames_total",
			Help:      "Number of frames drawn.",
		}),
	}
}

func (m *Metrics) observe(phase string, start time.Time) time.Time {
	now := time.Now()
	if m != nil {
		m.phases.WithLabelValues(phase).Observe(now.Sub(start).Seconds())
	}
	return now
}

func (m *Metrics) layout(cached bool) {
	if m == nil {
		return
	}
	label := "miss"
	if cached {
		label = "hit"
	}
	m.layouts.WithLabelValues(label).Inc()
}

func (m *Metrics) frame(messages int) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.messages.Add(float64(messages))
}
