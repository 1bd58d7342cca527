package processor

import "context"

// Error is a Processor that fails every item with the given error.
// It can be used as a mock Processor.
type Error struct {
	// Err is returned from Process. If nil, ErrProcessorFailed is used.
	Err error
}

// Process always returns p.Err.
func (p *Error) Process(_ context.Context, _ interface{}) (interface{}, error) {
	if p.Err == nil {
		return nil, ErrProcessorFailed
	}
	return nil, p.Err
}
