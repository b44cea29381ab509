package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	trainsTotal      *prometheus.CounterVec
	predictionsTotal *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	trainingPoints   *prometheus.GaugeVec
	latency          *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		trainsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_trains_total",
				Help: "Total number of completed model training runs",
			},
			[]string{"ticker"},
		),
		predictionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_predictions_total",
				Help: "Total number of forecast requests by outcome",
			},
			[]string{"ticker", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		trainingPoints: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockcast_training_points",
				Help: "Number of price points used by the latest training run",
			},
			[]string{"ticker"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockcast_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordTrain records a completed training run and its point count.
func (r *Recorder) RecordTrain(ticker string, points int, seconds float64) {
	r.trainsTotal.WithLabelValues(ticker).Inc()
	r.trainingPoints.WithLabelValues(ticker).Set(float64(points))
	r.latency.WithLabelValues("train").Observe(seconds)
}

// RecordPredict records a forecast request outcome.
func (r *Recorder) RecordPredict(ticker, outcome string, seconds float64) {
	r.predictionsTotal.WithLabelValues(ticker, outcome).Inc()
	r.latency.WithLabelValues("predict").Observe(seconds)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
