package batchtree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after tree construction.
	RecordBuild(duration time.Duration, err error)

	// RecordAddBatch is called after each ingestion call. committed is
	// the number of batch blocks that joined the registry.
	RecordAddBatch(committed int, duration time.Duration, err error)

	// RecordQuery is called after each projection query.
	RecordQuery(duration time.Duration, err error)

	// RecordDelete is called after each batch retirement.
	RecordDelete(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(time.Duration, error)         {}
func (NoopMetricsCollector) RecordAddBatch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(time.Duration, error)         {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount     atomic.Int64
	BuildErrors    atomic.Int64
	AddBatchCount  atomic.Int64
	AddBatchErrors atomic.Int64
	BatchesAdded   atomic.Int64
	QueryCount     atomic.Int64
	QueryErrors    atomic.Int64
	DeleteCount    atomic.Int64
	DeleteErrors   atomic.Int64
	TotalOpsNanos  atomic.Int64
}

func (m *BasicMetricsCollector) RecordBuild(d time.Duration, err error) {
	m.BuildCount.Add(1)
	if err != nil {
		m.BuildErrors.Add(1)
	}
	m.TotalOpsNanos.Add(int64(d))
}

func (m *BasicMetricsCollector) RecordAddBatch(committed int, d time.Duration, err error) {
	m.AddBatchCount.Add(1)
	m.BatchesAdded.Add(int64(committed))
	if err != nil {
		m.AddBatchErrors.Add(1)
	}
	m.TotalOpsNanos.Add(int64(d))
}

func (m *BasicMetricsCollector) RecordQuery(d time.Duration, err error) {
	m.QueryCount.Add(1)
	if err != nil {
		m.QueryErrors.Add(1)
	}
	m.TotalOpsNanos.Add(int64(d))
}

func (m *BasicMetricsCollector) RecordDelete(d time.Duration, err error) {
	m.DeleteCount.Add(1)
	if err != nil {
		m.DeleteErrors.Add(1)
	}
	m.TotalOpsNanos.Add(int64(d))
}
