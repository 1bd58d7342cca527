package processor

import "context"

// Processor transforms a single item. Returning a nil item means the item
// produced no result; see Composite for how that ends a chain.
type Processor interface {
	Process(ctx context.Context, item interface{}) (interface{}, error)
}

// Func adapts an ordinary function to the Processor interface.
type Func func(ctx context.Context, item interface{}) (interface{}, error)

// Process calls f(ctx, item).
func (f Func) Process(ctx context.Context, item interface{}) (interface{}, error) {
	return f(ctx, item)
}
