// Package metrics collects operational metrics for the service.
package metrics

import "time"

// Collector records service-level metrics.
type Collector interface {
	RecordOperationDuration(op string, d time.Duration)
	RecordOperationResult(op, result string)
	RecordError(op, kind string)
}

// NoopCollector is a no-op implementation of Collector.
type NoopCollector struct{}

func (NoopCollector) RecordOperationDuration(string, time.Duration) {}
func (NoopCollector) RecordOperationResult(string, string)          {}
func (NoopCollector) RecordError(string, string)                    {}
