package metrics

import (
	"strconv"

	coremetrics "github.com/kilianp07/billpay/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records bill evaluations in Prometheus metrics.
type PromSink struct {
	evaluations *prometheus.CounterVec
	shortfall   *prometheus.HistogramVec
}

// NewPromSink registers bill metrics on the default Prometheus registerer.
// The Prometheus server should be started separately with StartPromServer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	s, err := NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bill_evaluations_total",
		Help: "Total number of evaluated bills",
	}, []string{"category", "paid"})
	shortfall := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bill_shortfall_amount",
		Help:    "Missing amount on bills that could not be paid",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"category"})

	if err := reg.Register(evaluations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			evaluations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(shortfall); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			shortfall = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{evaluations: evaluations, shortfall: shortfall}, nil
}

// RecordEvaluation increments the counter for each evaluation and observes
// the shortfall of unpaid bills.
func (s *PromSink) RecordEvaluation(evs []coremetrics.Evaluation) error {
	for _, e := range evs {
		s.evaluations.WithLabelValues(e.Category, strconv.FormatBool(e.Paid)).Inc()
		if !e.Paid {
			s.shortfall.WithLabelValues(e.Category).Observe(float64(e.Record.Shortfall()))
		}
	}
	return nil
}
