// Package factory provides the generic registry behind every pluggable part of
// billpay: bill variants, metrics sinks. A module is identified by a type
// string; its factory decodes raw settings into a typed struct and returns the
// concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.Sink]()
//	_ = reg.Register("nop", func(map[string]any) (metrics.Sink, error) {
//	    return metrics.NopSink{}, nil
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "nop"})
//	if errors.Is(err, factory.ErrUnknownType) {
//	    // no factory for that name
//	}
package factory
