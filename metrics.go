package crcgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting construction metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Update and Finalize are never instrumented; they stay allocation- and
// atomic-free.
type MetricsCollector interface {
	// RecordBuild is called after each engine construction.
	// tables is the number of 256-entry tables built, duration is the time
	// taken, err is nil if successful.
	RecordBuild(strategy Strategy, tables int, duration time.Duration, err error)

	// RecordSelfTest is called after each construction self-test.
	RecordSelfTest(strategy Strategy, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(Strategy, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelfTest(Strategy, error)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	TablesBuilt     atomic.Int64
	SelfTestCount   atomic.Int64
	SelfTestErrors  atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(_ Strategy, tables int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.TablesBuilt.Add(int64(tables))
}

// RecordSelfTest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelfTest(_ Strategy, err error) {
	b.SelfTestCount.Add(1)
	if err != nil {
		b.SelfTestErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildAvgNanos:  b.getAvgBuildNanos(),
		TablesBuilt:    b.TablesBuilt.Load(),
		SelfTestCount:  b.SelfTestCount.Load(),
		SelfTestErrors: b.SelfTestErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildAvgNanos  int64
	TablesBuilt    int64
	SelfTestCount  int64
	SelfTestErrors int64
}
