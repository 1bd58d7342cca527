// Package chain builds a validated processor.Composite from a chain
// definition.
//
//	c, err := chain.LoadFile("normalize.yaml", chain.WithStats(stats))
//	if err != nil {
//		// invalid definition or unknown step type
//	}
//	out, err := c.Process(ctx, item)
package chain

import (
	"errors"
	"fmt"

	"github.com/MasterOfBinary/itemchain/config"
	"github.com/MasterOfBinary/itemchain/processor"
	"github.com/MasterOfBinary/itemchain/step"
)

type options struct {
	registry *step.Registry
	logger   processor.Logger
	stats    processor.StatsCollector
}

// Option configures Build.
type Option func(*options)

// WithRegistry sets the registry used to create steps.
// If not set, step.Default is used.
func WithRegistry(r *step.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLogger wraps every step in a processor.LoggingProcessor named after
// the step. It takes precedence over the definition's log_level.
func WithLogger(logger processor.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStats wraps the whole chain in a processor.StatsProcessor, so each
// item is recorded once as processed, filtered or failed.
//
// With this option the Composite returned by Build holds a single
// processor, the StatsProcessor, whose Processor is the Composite of
// configured steps. Callers that inspect Processors must unwrap it.
func WithStats(stats processor.StatsCollector) Option {
	return func(o *options) {
		o.stats = stats
	}
}

// ErrNilConfig is returned by Build when it is given a nil definition.
var ErrNilConfig = errors.New("chain config cannot be nil")

// Build validates cfg, creates every step through the registry and returns
// the validated Composite. Its Processors are the configured steps in
// order, unless WithStats is given (see WithStats).
func Build(cfg *config.ChainConfig, opts ...Option) (*processor.Composite, error) {
	o := options{registry: step.Default}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chain '%s': %w", cfg.Name, err)
	}

	logger := o.logger
	if logger == nil && cfg.LogLevel != "" {
		level, _ := processor.ParseLogLevel(cfg.LogLevel)
		logger = processor.NewSimpleLogger(level)
	}

	processors := make([]processor.Processor, 0, len(cfg.Steps))
	for i, sc := range cfg.Steps {
		name := sc.DisplayName(i)

		p, err := o.registry.Create(sc.Type, name, sc.Config)
		if err != nil {
			return nil, fmt.Errorf("chain '%s': step %d (%s): %w", cfg.Name, i, name, err)
		}

		if logger != nil {
			p = processor.WrapWithLogging(p, logger, cfg.Name+"/"+name)
		}
		processors = append(processors, p)
	}

	c := &processor.Composite{}
	c.SetProcessors(processors)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("chain '%s': %w", cfg.Name, err)
	}

	if o.stats != nil {
		// The stats wrapper goes outside so every item is counted once.
		outer := &processor.Composite{}
		outer.SetProcessors([]processor.Processor{processor.WrapWithStats(c, o.stats)})
		return outer, nil
	}

	return c, nil
}

// Parse parses a YAML chain definition and builds it.
func Parse(data []byte, opts ...Option) (*processor.Composite, error) {
	cfg, err := config.Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(cfg, opts...)
}

// LoadFile loads a YAML chain definition from path and builds it.
func LoadFile(path string, opts ...Option) (*processor.Composite, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(cfg, opts...)
}
