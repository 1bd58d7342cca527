package processor

import "context"

// Nil is a Processor that discards every item, producing an empty result.
// It can be used as a mock Processor.
type Nil struct{}

// Process discards the item.
func (*Nil) Process(_ context.Context, _ interface{}) (interface{}, error) {
	return nil, nil
}
