// Package metrics defines the Prometheus metrics of the emotion API. It is
// the single source of truth for metric names, labels, and help strings.
// Everything is registered on the default registry via promauto at package
// load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emotion"

// DetectionsTotal counts inference pipeline runs by terminal outcome.
// Label:
//   - outcome: "ok", "missing_image", "no_filename", "unreadable",
//     "no_face", "unclassifiable", or "error"
var DetectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detections_total",
		Help:      "Total number of emotion detection requests, by outcome.",
	},
	[]string{"outcome"},
)

// DetectionDuration measures how long one pipeline run takes end-to-end,
// including the remote locate and classify calls.
var DetectionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "detection_duration_seconds",
		Help:      "Duration of the inference pipeline from upload to verdict.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuthAttemptsTotal counts signup and login attempts.
// Labels:
//   - operation: "signup" or "login"
//   - outcome: "ok" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of signup and login attempts, by outcome.",
	},
	[]string{"operation", "outcome"},
)
