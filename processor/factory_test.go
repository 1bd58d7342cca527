package processor

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewTransform(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		proc, err := NewTransform(TransformConfig{
			Func: func(data interface{}) (interface{}, error) {
				return data.(int) + 1, nil
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, _ := proc.Process(context.Background(), 1)
		if result != 2 {
			t.Errorf("expected 2, got %v", result)
		}
	})

	t.Run("nil function", func(t *testing.T) {
		proc, err := NewTransform(TransformConfig{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if proc != nil {
			t.Errorf("expected nil processor, got %v", proc)
		}
		if !strings.Contains(err.Error(), "invalid transform config") {
			t.Errorf("unexpected error message: %v", err)
		}
	})
}

func TestNewFilter(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		proc, err := NewFilter(FilterConfig{
			Predicate:   func(item interface{}) bool { return item == "keep" },
			InvertMatch: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !proc.InvertMatch {
			t.Error("expected InvertMatch to be set")
		}

		result, _ := proc.Process(context.Background(), "keep")
		if result != nil {
			t.Errorf("expected inverted filter to drop 'keep', got %v", result)
		}
	})

	t.Run("nil predicate", func(t *testing.T) {
		_, err := NewFilter(FilterConfig{})
		if err == nil || !strings.Contains(err.Error(), "invalid filter config") {
			t.Errorf("expected invalid filter config error, got %v", err)
		}
	})
}

func TestNewError(t *testing.T) {
	testErr := errors.New("processing failed")
	proc := NewError(ErrorConfig{Err: testErr})

	if _, err := proc.Process(context.Background(), 1); err != testErr {
		t.Errorf("expected %v, got %v", testErr, err)
	}
}
