package processor

import (
	"sync"
	"time"
)

// StatsCollector defines the interface for collecting metrics about item processing.
// Implementations can store metrics in memory or send them to monitoring systems.
type StatsCollector interface {
	// RecordItemProcessed is called for each item that produced a result.
	RecordItemProcessed(duration time.Duration)

	// RecordItemFiltered is called for each item that produced an empty result.
	RecordItemFiltered(duration time.Duration)

	// RecordItemError is called for each item that failed.
	RecordItemError(duration time.Duration)

	// GetStats returns a snapshot of the current statistics.
	GetStats() Stats
}

// Stats holds aggregated statistics about item processing.
type Stats struct {
	// ItemsProcessed is the number of items that produced a result.
	ItemsProcessed uint64

	// ItemsFiltered is the number of items that produced an empty result.
	ItemsFiltered uint64

	// ItemErrors is the number of items that failed.
	ItemErrors uint64

	// TotalProcessingTime is the cumulative time spent on all items.
	TotalProcessingTime time.Duration

	// MinItemTime is the shortest time spent on a single item.
	MinItemTime time.Duration

	// MaxItemTime is the longest time spent on a single item.
	MaxItemTime time.Duration

	// StartTime is when statistics collection began.
	StartTime time.Time

	// LastUpdateTime is when statistics were last updated.
	LastUpdateTime time.Time
}

// Items returns the total number of items seen.
func (s Stats) Items() uint64 {
	return s.ItemsProcessed + s.ItemsFiltered + s.ItemErrors
}

// AverageItemTime returns the average time spent on an item.
// Returns 0 if no items have been seen.
func (s Stats) AverageItemTime() time.Duration {
	n := s.Items()
	if n == 0 {
		return 0
	}
	return s.TotalProcessingTime / time.Duration(n)
}

// ErrorRate returns the percentage of items that failed.
// Returns 0 if no items have been seen.
func (s Stats) ErrorRate() float64 {
	n := s.Items()
	if n == 0 {
		return 0
	}
	return float64(s.ItemErrors) / float64(n) * 100
}

// NoOpStatsCollector is a stats collector that discards all metrics.
type NoOpStatsCollector struct{}

// RecordItemProcessed implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordItemProcessed(time.Duration) {}

// RecordItemFiltered implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordItemFiltered(time.Duration) {}

// RecordItemError implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordItemError(time.Duration) {}

// GetStats implements the StatsCollector interface.
func (n *NoOpStatsCollector) GetStats() Stats {
	return Stats{}
}

// BasicStatsCollector is a simple in-memory implementation of StatsCollector.
// All operations are thread-safe, and a snapshot from GetStats always has
// counts and durations that agree with each other.
type BasicStatsCollector struct {
	mu    sync.RWMutex
	stats Stats
}

// NewBasicStatsCollector creates a new BasicStatsCollector.
func NewBasicStatsCollector() *BasicStatsCollector {
	now := time.Now()
	return &BasicStatsCollector{
		stats: Stats{
			StartTime:      now,
			LastUpdateTime: now,
		},
	}
}

// RecordItemProcessed implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordItemProcessed(duration time.Duration) {
	b.record(&b.stats.ItemsProcessed, duration)
}

// RecordItemFiltered implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordItemFiltered(duration time.Duration) {
	b.record(&b.stats.ItemsFiltered, duration)
}

// RecordItemError implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordItemError(duration time.Duration) {
	b.record(&b.stats.ItemErrors, duration)
}

// record bumps counter and folds duration into the timing fields under a
// single lock.
func (b *BasicStatsCollector) record(counter *uint64, duration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	first := b.stats.Items() == 0
	*counter++

	b.stats.LastUpdateTime = time.Now()
	b.stats.TotalProcessingTime += duration

	if first || duration < b.stats.MinItemTime {
		b.stats.MinItemTime = duration
	}
	if duration > b.stats.MaxItemTime {
		b.stats.MaxItemTime = duration
	}
}

// GetStats implements the StatsCollector interface.
// It returns a snapshot of the current statistics.
func (b *BasicStatsCollector) GetStats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stats
}
