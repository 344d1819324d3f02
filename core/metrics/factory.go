package metrics

import (
	"fmt"

	"github.com/kilianp07/billpay/core/factory"
)

// sinks holds the sink constructors; infra/metrics fills it from init.
var sinks = factory.NewRegistry[MetricsSink]()

// RegisterMetricsSink makes a sink available under name in the metrics.sinks
// section of the configuration.
func RegisterMetricsSink(name string, f factory.Factory[MetricsSink]) error {
	return sinks.Register(name, f)
}

// SinkTypes lists the sink names accepted in configuration.
func SinkTypes() []string { return sinks.Names() }

// NewMetricsSink builds the sink that records bill evaluations. No entry
// yields a NopSink, one entry its sink, several a MultiSink in config order.
func NewMetricsSink(cfgs []factory.ModuleConfig) (MetricsSink, error) {
	built := make([]MetricsSink, 0, len(cfgs))
	for i, c := range cfgs {
		s, err := sinks.Create(c)
		if err != nil {
			return nil, fmt.Errorf("metrics sink %d: %w", i, err)
		}
		built = append(built, s)
	}
	switch len(built) {
	case 0:
		return NopSink{}, nil
	case 1:
		return built[0], nil
	default:
		return NewMultiSink(built...), nil
	}
}
