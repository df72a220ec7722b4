package lenskit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    trainCounter   prometheus.Counter
//	    scoreHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordTrain(scorer string, duration time.Duration, err error) {
//	    p.trainCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordTrain is called after a scorer has been trained.
	RecordTrain(scorer string, duration time.Duration, err error)

	// RecordScore is called after scoring items for one user.
	// scored is the number of items that received a score.
	RecordScore(scored int, duration time.Duration)

	// RecordEvaluation is called after an evaluation run.
	// users is the number of test users, skipped the number without any
	// scorable test item.
	RecordEvaluation(users, skipped int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTrain(string, time.Duration, error)        {}
func (NoopMetricsCollector) RecordScore(int, time.Duration)                  {}
func (NoopMetricsCollector) RecordEvaluation(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	TrainCount       atomic.Int64
	TrainErrors      atomic.Int64
	TrainTotalNanos  atomic.Int64
	ScoreCount       atomic.Int64
	ScoredItems      atomic.Int64
	ScoreTotalNanos  atomic.Int64
	EvalCount        atomic.Int64
	EvalErrors       atomic.Int64
	EvalUsers        atomic.Int64
	EvalSkippedUsers atomic.Int64
}

// RecordTrain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrain(_ string, duration time.Duration, err error) {
	b.TrainCount.Add(1)
	b.TrainTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TrainErrors.Add(1)
	}
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(scored int, duration time.Duration) {
	b.ScoreCount.Add(1)
	b.ScoredItems.Add(int64(scored))
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
}

// RecordEvaluation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluation(users, skipped int, _ time.Duration, err error) {
	b.EvalCount.Add(1)
	b.EvalUsers.Add(int64(users))
	b.EvalSkippedUsers.Add(int64(skipped))
	if err != nil {
		b.EvalErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TrainCount:       b.TrainCount.Load(),
		TrainErrors:      b.TrainErrors.Load(),
		TrainAvgNanos:    avg(b.TrainTotalNanos.Load(), b.TrainCount.Load()),
		ScoreCount:       b.ScoreCount.Load(),
		ScoredItems:      b.ScoredItems.Load(),
		ScoreAvgNanos:    avg(b.ScoreTotalNanos.Load(), b.ScoreCount.Load()),
		EvalCount:        b.EvalCount.Load(),
		EvalErrors:       b.EvalErrors.Load(),
		EvalUsers:        b.EvalUsers.Load(),
		EvalSkippedUsers: b.EvalSkippedUsers.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TrainCount       int64
	TrainErrors      int64
	TrainAvgNanos    int64
	ScoreCount       int64
	ScoredItems      int64
	ScoreAvgNanos    int64
	EvalCount        int64
	EvalErrors       int64
	EvalUsers        int64
	EvalSkippedUsers int64
}
