package processor

import (
	"context"
	"errors"
	"testing"
)

func TestError_Process(t *testing.T) {
	t.Run("returns configured error", func(t *testing.T) {
		testErr := errors.New("test error")
		p := &Error{Err: testErr}

		result, err := p.Process(context.Background(), "item")
		if err != testErr {
			t.Errorf("expected %v, got %v", testErr, err)
		}
		if result != nil {
			t.Errorf("expected nil result, got %v", result)
		}
	})

	t.Run("uses default error", func(t *testing.T) {
		p := &Error{}

		_, err := p.Process(context.Background(), "item")
		if !errors.Is(err, ErrProcessorFailed) {
			t.Errorf("expected ErrProcessorFailed, got %v", err)
		}
	})
}
