package processor

import (
	"context"
	"fmt"
	"time"
)

// LoggingProcessor wraps another processor and logs each call.
// It logs when processing starts and completes, whether the item was
// dropped, and any error returned.
type LoggingProcessor struct {
	// Processor is the wrapped processor that does the actual work.
	Processor Processor

	// Logger is used to log processing events.
	// If nil, no logging occurs.
	Logger Logger

	// Name is an optional name for this processor used in log messages.
	// If empty, the processor's type is used.
	Name string
}

// Process implements the Processor interface by delegating to the wrapped processor
// and logging the operation. Errors are returned unchanged.
func (p *LoggingProcessor) Process(ctx context.Context, item interface{}) (interface{}, error) {
	if p.Processor == nil {
		return item, nil
	}

	if p.Logger == nil {
		return p.Processor.Process(ctx, item)
	}

	name := p.Name
	if name == "" {
		name = fmt.Sprintf("%T", p.Processor)
	}

	startTime := time.Now()
	p.Logger.Debug("Processor '%s' starting with item of type %T", name, item)

	result, err := p.Processor.Process(ctx, item)

	duration := time.Since(startTime)
	switch {
	case err != nil:
		p.Logger.Error("Processor '%s' failed after %v: %v", name, duration, err)
	case IsEmpty(result):
		p.Logger.Debug("Processor '%s' completed in %v: item dropped", name, duration)
	default:
		p.Logger.Debug("Processor '%s' completed in %v: produced %T", name, duration, result)
	}

	return result, err
}

// WrapWithLogging wraps a processor with logging capabilities.
// This is a convenience function for creating a LoggingProcessor.
//
// Example:
//
//	logger := processor.NewSimpleLogger(processor.LogLevelDebug)
//	wrapped := processor.WrapWithLogging(myProcessor, logger, "MyProcessor")
func WrapWithLogging(proc Processor, logger Logger, name string) *LoggingProcessor {
	return &LoggingProcessor{
		Processor: proc,
		Logger:    logger,
		Name:      name,
	}
}
