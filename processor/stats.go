package processor

import (
	"context"
	"time"
)

// StatsProcessor wraps another processor and records the outcome and
// duration of every call.
type StatsProcessor struct {
	// Processor is the wrapped processor that does the actual work.
	Processor Processor

	// Stats is used to collect processing metrics.
	// If nil, no statistics are collected.
	Stats StatsCollector
}

// Process implements the Processor interface by delegating to the wrapped processor
// and collecting statistics about the operation.
func (p *StatsProcessor) Process(ctx context.Context, item interface{}) (interface{}, error) {
	if p.Processor == nil {
		return item, nil
	}

	if p.Stats == nil {
		return p.Processor.Process(ctx, item)
	}

	startTime := time.Now()
	result, err := p.Processor.Process(ctx, item)
	duration := time.Since(startTime)

	switch {
	case err != nil:
		p.Stats.RecordItemError(duration)
	case IsEmpty(result):
		p.Stats.RecordItemFiltered(duration)
	default:
		p.Stats.RecordItemProcessed(duration)
	}

	return result, err
}

// WrapWithStats wraps a processor with statistics collection.
// This is a convenience function for creating a StatsProcessor.
//
// Example:
//
//	stats := processor.NewBasicStatsCollector()
//	wrapped := processor.WrapWithStats(myProcessor, stats)
//
//	// Later, get statistics
//	currentStats := stats.GetStats()
func WrapWithStats(proc Processor, stats StatsCollector) *StatsProcessor {
	return &StatsProcessor{
		Processor: proc,
		Stats:     stats,
	}
}
