package processor

import "context"

// Channel is a Processor that sends each item to an output channel and
// passes it through unchanged.
//
// Empty items are not sent.
//
// Ownership of the output channel remains with the caller. Because the
// processor is unaware of when the overall pipeline has finished, it does not
// close the channel. The caller who created the channel should close it once
// processing is complete.
type Channel struct {
	// Output is the channel that receives each item.
	// If nil, the processor does nothing.
	Output chan<- interface{}
}

// Process implements the Processor interface by forwarding the item to the
// Output channel, unless the context is canceled first.
func (p *Channel) Process(ctx context.Context, item interface{}) (interface{}, error) {
	if p.Output == nil || IsEmpty(item) {
		return item, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case p.Output <- item:
	}

	return item, nil
}
