package processor

import (
	"context"
	"fmt"
)

// Step is a statically typed processor. ok is false when the step produced
// no result.
type Step[I, O any] func(ctx context.Context, in I) (out O, ok bool, err error)

// Then chains first and next so that the compiler checks that next accepts
// what first produces. next is not called if first fails or produces no
// result.
//
// Example:
//
//	parse := processor.Step[string, int](func(_ context.Context, s string) (int, bool, error) {
//		n, err := strconv.Atoi(s)
//		return n, err == nil, err
//	})
//	double := processor.Step[int, int](func(_ context.Context, n int) (int, bool, error) {
//		return n * 2, true, nil
//	})
//	p := processor.Erase(processor.Then(parse, double))
func Then[I, M, O any](first Step[I, M], next Step[M, O]) Step[I, O] {
	return func(ctx context.Context, in I) (O, bool, error) {
		var zero O

		mid, ok, err := first(ctx, in)
		if err != nil || !ok {
			return zero, false, err
		}

		return next(ctx, mid)
	}
}

// Erase turns a typed step into a Processor so it can be placed in a
// Composite next to untyped processors.
//
// A nil item is passed to the step as the zero value of I. Any other item
// that is not an I fails with a *TypeMismatchError.
func Erase[I, O any](s Step[I, O]) Processor {
	return Func(func(ctx context.Context, item interface{}) (interface{}, error) {
		var in I
		if item != nil {
			v, ok := item.(I)
			if !ok {
				return nil, &TypeMismatchError{Want: typeName[I](), Got: fmt.Sprintf("%T", item)}
			}
			in = v
		}

		out, ok, err := s(ctx, in)
		if err != nil || !ok {
			return nil, err
		}
		return out, nil
	})
}

// Typed views a Processor as a Step. An empty result becomes ok == false;
// a result that is not an O fails with a *TypeMismatchError.
func Typed[I, O any](p Processor) Step[I, O] {
	return func(ctx context.Context, in I) (O, bool, error) {
		var zero O

		res, err := p.Process(ctx, in)
		if err != nil {
			return zero, false, err
		}
		if IsEmpty(res) {
			return zero, false, nil
		}

		out, ok := res.(O)
		if !ok {
			return zero, false, &TypeMismatchError{Want: typeName[O](), Got: fmt.Sprintf("%T", res)}
		}
		return out, true, nil
	}
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
