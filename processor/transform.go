package processor

import "context"

// TransformFunc is a function that transforms an item.
// It takes the current item and returns the new one.
type TransformFunc func(data interface{}) (interface{}, error)

// Transform is a processor that applies a transformation function to an item.
// It can be used to convert, modify, or restructure data in a chain.
type Transform struct {
	// Func is the transformation function to apply to the item.
	// If nil, items pass through unchanged.
	Func TransformFunc
}

// Process implements the Processor interface by applying the transformation
// function to the item.
func (p *Transform) Process(_ context.Context, item interface{}) (interface{}, error) {
	if p.Func == nil {
		return item, nil
	}

	return p.Func(item)
}
