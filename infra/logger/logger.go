// Package logger provides the zerolog-backed Logger used by the billpay
// service, CLI and metrics sinks. Each logger is tagged with the component
// that owns it ("service", "influx-sink", ...).
package logger

import corelogger "github.com/kilianp07/billpay/core/logger"

// Logger is the core logging contract, re-exported so callers only import
// this package.
type Logger = corelogger.Logger

// NopLogger discards everything. Service uses it when no logger is given.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Infow(string, map[string]any)  {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns the logger for component. Output is human-readable when
// APP_ENV=dev and JSON lines on stderr otherwise.
func New(component string) Logger {
	return NewZerologLogger(component)
}
