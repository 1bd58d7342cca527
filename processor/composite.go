package processor

import "context"

// Composite passes an item through a sequence of processors, where the
// result of each processor is the input of the next.
//
// If a processor returns an empty result, the chain stops and Process
// returns nil without calling the remaining processors. An empty input
// item is still handed to the first processor.
//
// Composite does no type checking between processors. Whoever sets
// Processors is responsible for making each processor accept what the
// previous one produces; a mismatch shows up inside the processor that
// receives the wrong type. Use Then and Erase to have the compiler check
// the chain instead.
//
// Validate must be called once before the first call to Process, or the
// Composite can be created with NewComposite, which does both. Composite
// adds no synchronization: it is safe for concurrent use only if every
// processor in the chain is.
type Composite struct {
	// Processors are applied in order.
	Processors []Processor
}

// NewComposite creates a Composite with the given processors and validates
// it. The returned error is a *ConfigurationError.
//
// Example:
//
//	c, err := processor.NewComposite(parse, enrich, format)
//	if err != nil {
//		// handle error
//	}
//	out, err := c.Process(ctx, in)
func NewComposite(processors ...Processor) (*Composite, error) {
	c := &Composite{}
	c.SetProcessors(processors)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetProcessors replaces the processor sequence. The slice is used as is.
func (c *Composite) SetProcessors(processors []Processor) {
	c.Processors = processors
}

// Validate checks that at least one processor is configured and that none
// of them is nil. It returns a *ConfigurationError otherwise.
func (c *Composite) Validate() error {
	if len(c.Processors) == 0 {
		return &ConfigurationError{Field: "Processors", Index: -1, Err: ErrNoProcessors}
	}

	for i, p := range c.Processors {
		if p == nil {
			return &ConfigurationError{Field: "Processors", Index: i, Err: ErrNilProcessor}
		}
	}

	return nil
}

// Process implements the Processor interface.
//
// Errors from the processors are returned unchanged, and no further
// processors are called after one fails.
func (c *Composite) Process(ctx context.Context, item interface{}) (interface{}, error) {
	result := item

	for i, p := range c.Processors {
		if i > 0 && IsEmpty(result) {
			return nil, nil
		}

		var err error
		result, err = p.Process(ctx, result)
		if err != nil {
			return nil, err
		}
	}

	if IsEmpty(result) {
		return nil, nil
	}

	return result, nil
}
