package metrics

import (
	"time"

	"github.com/kilianp07/billpay/core/model"
)

// Evaluation is one evaluated bill to be recorded.
type Evaluation struct {
	ReceiptID string
	Category  string
	Record    model.BillRecord
	Paid      bool
	Time      time.Time
}

// MetricsSink records bill evaluations for observability purposes.
type MetricsSink interface {
	RecordEvaluation(evs []Evaluation) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordEvaluation([]Evaluation) error { return nil }

// MultiSink fans evaluations out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordEvaluation forwards the evaluations to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordEvaluation(evs []Evaluation) error {
	for _, s := range m.Sinks {
		if err := s.RecordEvaluation(evs); err != nil {
			return err
		}
	}
	return nil
}
