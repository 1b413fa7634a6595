package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/skunkedgame/skunkd/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)

// Request pipeline metrics
var (
	InventoryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryRequestsTotal,
			Help: HelpTextInventoryRequestsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)
)

// World and harvest metrics
var (
	PickupsSpawned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePickupsSpawned,
			Help: HelpTextPickupsSpawned,
		},
	)

	PickupsCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePickupsCollected,
			Help: HelpTextPickupsCollected,
		},
	)

	HoneyHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHoneyHarvested,
			Help: HelpTextHoneyHarvested,
		},
	)

	HoneyStock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameHoneyStock,
			Help: HelpTextHoneyStock,
		},
		[]string{LabelHive},
	)
)

// ObserveRequest records the outcome of one pipeline request. Accepted
// requests count under the "accepted" outcome; rejections count under
// their reason.
func ObserveRequest(operation string, res domain.Result) {
	outcome := OutcomeAccepted
	if !res.Accepted {
		outcome = string(res.Reason)
	}
	InventoryRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
