// Package metrics defines the sinks that record bill evaluations. Sinks like
// PromSink and InfluxSink live in infra/metrics and register themselves by
// name; NewMetricsSink builds them from configuration and returns a MultiSink
// when several are configured.
package metrics
